package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
	"github.com/sirupsen/logrus"
)

// Creature scripts define on_enter(engine, state) and update(engine, state).
// Both run after the tick's transitions are applied; requests they make are
// queued like any other system's and take effect next tick.
const creatureScriptDispatch = `
if __phase == "enter" {
	on_enter(__engine, __state)
} else if __phase == "update" {
	update(__engine, __state)
}
`

type creatureScript struct {
	path     string
	compiled *tengo.Compiled
}

type scriptEnter struct {
	entity ecs.Entity
	state  component.CreatureState
}

// CreatureScriptSystem runs the tengo hooks attached through
// component.Script.
type CreatureScriptSystem struct {
	transitions *Transitions
	cache       map[ecs.Entity]*creatureScript
	entered     []scriptEnter
	failed      map[string]bool
}

func NewCreatureScriptSystem(t *Transitions) *CreatureScriptSystem {
	s := &CreatureScriptSystem{
		transitions: t,
		cache:       map[ecs.Entity]*creatureScript{},
		failed:      map[string]bool{},
	}
	if t == nil {
		return s
	}
	t.Creature.OnEnter(func(n CreatureNotice) {
		if ecs.Has(t.World(), n.Actor, component.ScriptComponent.Kind()) {
			s.entered = append(s.entered, scriptEnter{entity: n.Actor, state: n.State})
		}
	})
	return s
}

// Invalidate drops every compiled script so the next tick reloads them.
func (s *CreatureScriptSystem) Invalidate() {
	if s == nil {
		return
	}
	s.cache = map[ecs.Entity]*creatureScript{}
	s.failed = map[string]bool{}
}

func (s *CreatureScriptSystem) Update(w *ecs.World) {
	if s == nil || s.transitions == nil || w == nil {
		return
	}

	for e := range s.cache {
		if !ecs.IsAlive(w, e) {
			delete(s.cache, e)
		}
	}

	entered := s.entered
	s.entered = nil
	for _, ev := range entered {
		s.run(w, ev.entity, "enter", ev.state)
	}

	ecs.ForEach2(w, component.ScriptComponent.Kind(), component.CreatureFSMComponent.Kind(), func(e ecs.Entity, _ *component.Script, m *component.CreatureFSM) {
		if creatureDown(m.Current) {
			return
		}
		s.run(w, e, "update", m.Current)
	})
}

func (s *CreatureScriptSystem) run(w *ecs.World, e ecs.Entity, phase string, state component.CreatureState) {
	sc, ok := ecs.Get(w, e, component.ScriptComponent.Kind())
	if !ok {
		return
	}
	rt, err := s.runtime(e, sc.Path)
	if err != nil {
		if !s.failed[sc.Path] {
			logrus.WithError(err).WithField("script", sc.Path).Warn("creature script unavailable")
			s.failed[sc.Path] = true
		}
		return
	}
	if err := rt.runPhase(phase, state, s.engineFor(w, e)); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"entity": e, "phase": phase}).Warn("creature script failed")
	}
}

func (s *CreatureScriptSystem) runtime(e ecs.Entity, path string) (*creatureScript, error) {
	if rt, ok := s.cache[e]; ok && rt.path == path {
		return rt, nil
	}
	if s.failed[path] {
		return nil, fmt.Errorf("script: %s failed to load", path)
	}
	rt, err := compileCreatureScript(path)
	if err != nil {
		return nil, err
	}
	s.cache[e] = rt
	return rt, nil
}

func compileCreatureScript(path string) (*creatureScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + creatureScriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", path, err)
	}
	return &creatureScript{path: path, compiled: compiled}, nil
}

func (rt *creatureScript) runPhase(phase string, state component.CreatureState, engine *tengo.ImmutableMap) error {
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", state.String()); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// engineFor exposes the narrow surface a script may touch.
func (s *CreatureScriptSystem) engineFor(w *ecs.World, e ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["request"] = &tengo.UserFunction{Name: "request", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		target, err := component.ParseCreatureState(strings.TrimSpace(objectAsString(args[0])))
		if err != nil {
			return tengo.FalseValue, nil
		}
		s.transitions.Creature.Request(e, target)
		return tengo.TrueValue, nil
	}}

	values["state"] = &tengo.UserFunction{Name: "state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		st, _ := creatureState(w, e)
		return &tengo.String{Value: st.String()}, nil
	}}

	values["health_ratio"] = &tengo.UserFunction{Name: "health_ratio", Value: func(args ...tengo.Object) (tengo.Object, error) {
		h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok || h.Max <= 0 {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: float64(h.Current) / float64(h.Max)}, nil
	}}

	values["distance_to_player"] = &tengo.UserFunction{Name: "distance_to_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p := findPlayer(w)
		tf, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !p.ok || !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Float{Value: p.position.Distance(tf.Position)}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		logrus.WithField("entity", e).Info(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
