package fsm

// Request is a transition intent. It is consumed by the next Process call.
type Request[K comparable, S any] struct {
	Actor  K
	Target S
	Force  bool
}

// Notice is delivered to listeners once per accepted transition.
type Notice[K comparable, S any] struct {
	Actor K
	State S
}

type Listener[K comparable, S any] func(Notice[K, S])

// Lookup resolves an actor to its machine. Returning false drops the
// request, which is how despawned actors are handled.
type Lookup[K comparable, S comparable] func(actor K) (*Machine[S], bool)

type Engine[K comparable, S State[S]] struct {
	lookup  Lookup[K, S]
	queue   []Request[K, S]
	onEnter []Listener[K, S]
	onExit  []Listener[K, S]
}

func NewEngine[K comparable, S State[S]](lookup Lookup[K, S]) *Engine[K, S] {
	return &Engine[K, S]{lookup: lookup}
}

// Request queues a transition that must pass the legality check.
func (e *Engine[K, S]) Request(actor K, target S) {
	e.enqueue(Request[K, S]{Actor: actor, Target: target})
}

// RequestForced queues a transition that skips the legality check.
func (e *Engine[K, S]) RequestForced(actor K, target S) {
	e.enqueue(Request[K, S]{Actor: actor, Target: target, Force: true})
}

func (e *Engine[K, S]) enqueue(req Request[K, S]) {
	if e == nil {
		return
	}
	e.queue = append(e.queue, req)
}

func (e *Engine[K, S]) OnEnter(fn Listener[K, S]) {
	if e == nil || fn == nil {
		return
	}
	e.onEnter = append(e.onEnter, fn)
}

func (e *Engine[K, S]) OnExit(fn Listener[K, S]) {
	if e == nil || fn == nil {
		return
	}
	e.onExit = append(e.onExit, fn)
}

// Pending reports the number of queued requests.
func (e *Engine[K, S]) Pending() int {
	if e == nil {
		return 0
	}
	return len(e.queue)
}

// Process drains the requests queued before the call in arrival order and
// returns how many changed a machine. Requests queued by listeners while
// processing are kept for the next call.
func (e *Engine[K, S]) Process() int {
	if e == nil || len(e.queue) == 0 {
		return 0
	}
	batch := e.queue
	e.queue = nil

	applied := 0
	for _, req := range batch {
		if e.apply(req) {
			applied++
		}
	}
	return applied
}

func (e *Engine[K, S]) apply(req Request[K, S]) bool {
	if e.lookup == nil {
		return false
	}
	m, ok := e.lookup(req.Actor)
	if !ok || m == nil {
		return false
	}
	if !req.Force && !m.Current.CanTransitionTo(req.Target) {
		return false
	}
	if m.Current == req.Target {
		return false
	}

	old := m.Current
	for _, fn := range e.onExit {
		fn(Notice[K, S]{Actor: req.Actor, State: old})
	}
	m.enter(req.Target)
	for _, fn := range e.onEnter {
		fn(Notice[K, S]{Actor: req.Actor, State: req.Target})
	}
	return true
}
