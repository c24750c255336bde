package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/geom"
	"github.com/milk9111/arena/steering"
	"golang.org/x/image/colornames"
)

const (
	ellipseSegments = 32
	rayLength       = 40.0
)

var (
	backgroundColor = color.RGBA{R: 0x1c, G: 0x1f, B: 0x24, A: 0xff}
	obstacleColor   = colornames.Slategray
	guardColor      = colornames.Skyblue
	coneColor       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}
	interestColor   = colornames.Limegreen
	dangerColor     = colornames.Orangered
)

// view translates world coordinates into screen space for one frame.
type view struct {
	offset cp.Vector
}

func (v view) point(p cp.Vector) (float32, float32) {
	return float32(p.X + v.offset.X), float32(p.Y + v.offset.Y)
}

func (g *Game) shakeOffset() cp.Vector {
	s := g.arena.Shake()
	if s.Remaining <= 0 || s.Duration <= 0 {
		return cp.Vector{}
	}
	amp := common.Lerp(0, s.Intensity, s.Remaining/s.Duration)
	return cp.Vector{X: (g.jitter.Float64()*2 - 1) * amp, Y: (g.jitter.Float64()*2 - 1) * amp}
}

func (g *Game) drawArena(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w := g.arena.World
	v := view{offset: g.shakeOffset()}

	if _, bounds, ok := ecs.First(w, component.ArenaBoundsComponent.Kind()); ok {
		x, y := v.point(cp.Vector{X: bounds.Box.L, Y: bounds.Box.B})
		vector.StrokeRect(screen, x, y, float32(bounds.Box.R-bounds.Box.L), float32(bounds.Box.T-bounds.Box.B), 2, colornames.Dimgray, false)
	}

	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		drawEllipse(screen, v, o.Shape, obstacleColor)
	})

	for _, e := range w.Query(component.HurtboxComponent.Kind(), component.TransformComponent.Kind()) {
		g.drawActor(screen, v, e)
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, tf *component.Transform) {
		x, y := v.point(tf.Position)
		vector.FillCircle(screen, x, y, float32(p.Radius), colornames.Wheat, true)
	})

	if g.showSteering {
		ecs.ForEach2(w, component.SteeringDebugComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, d *component.SteeringDebug, tf *component.Transform) {
			drawContextMap(screen, v, tf.Position, d)
		})
	}
}

func (g *Game) drawActor(screen *ebiten.Image, v view, e ecs.Entity) {
	w := g.arena.World
	tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	hb, _ := ecs.Get(w, e, component.HurtboxComponent.Kind())

	var fill color.Color = colornames.White
	label := ""
	if app, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok {
		if app.Color != nil {
			fill = app.Color
		}
		label = app.Label
	}

	state := ""
	if m, ok := ecs.Get(w, e, component.PlayerFSMComponent.Kind()); ok {
		state = m.Current.String()
	} else if m, ok := ecs.Get(w, e, component.CreatureFSMComponent.Kind()); ok {
		state = m.Current.String()
		if m.Current.Kind == component.CreatureDying || m.Current.Kind == component.CreatureDead {
			fill = colornames.Dimgray
		}
	}

	for _, c := range hb.Collider.Circles {
		x, y := v.point(tf.Position.Add(c.Offset))
		vector.FillCircle(screen, x, y, float32(c.Radius), fill, true)
	}

	// Facing tick.
	x0, y0 := v.point(tf.Position)
	x1, y1 := v.point(tf.Position.Add(cp.ForAngle(tf.Rotation).Mult(hb.Collider.BoundingRadius() + 6)))
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.White, true)

	if ecs.Has(w, e, component.GuardComponent.Kind()) {
		vector.StrokeCircle(screen, x0, y0, float32(hb.Collider.BoundingRadius()+4), 2, guardColor, true)
	}

	g.drawSwing(screen, v, e, tf)

	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Max > 0 {
		r := hb.Collider.BoundingRadius()
		bx, by := v.point(tf.Position.Add(cp.Vector{X: -r, Y: -r - 8}))
		frac := math.Max(0, float64(h.Current)/float64(h.Max))
		vector.FillRect(screen, bx, by, float32(2*r), 3, colornames.Darkred, false)
		vector.FillRect(screen, bx, by, float32(2*r*frac), 3, colornames.Lime, false)
	}

	if label != "" || state != "" {
		lx, ly := v.point(tf.Position.Add(cp.Vector{X: -20, Y: hb.Collider.BoundingRadius() + 2}))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %s", label, state), int(lx), int(ly))
	}
}

// drawSwing outlines the hit cone of an armed swing.
func (g *Game) drawSwing(screen *ebiten.Image, v view, e ecs.Entity, tf *component.Transform) {
	w := g.arena.World
	swing, ok := ecs.Get(w, e, component.SwingComponent.Kind())
	if !ok || !swing.Armed {
		return
	}
	weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind())
	if !ok {
		return
	}
	half := weapon.ConeAngle() / 2
	rng := weapon.Range()
	ox, oy := v.point(tf.Position)
	for _, a := range []float64{swing.BaseAngle - half, swing.BaseAngle + half} {
		x, y := v.point(tf.Position.Add(cp.ForAngle(a).Mult(rng)))
		vector.StrokeLine(screen, ox, oy, x, y, 1, coneColor, true)
	}
	prev := tf.Position.Add(cp.ForAngle(swing.BaseAngle - half).Mult(rng))
	for i := 1; i <= 8; i++ {
		a := swing.BaseAngle - half + 2*half*float64(i)/8
		next := tf.Position.Add(cp.ForAngle(a).Mult(rng))
		x0, y0 := v.point(prev)
		x1, y1 := v.point(next)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, coneColor, true)
		prev = next
	}
}

func drawEllipse(screen *ebiten.Image, v view, e geom.Ellipse, clr color.Color) {
	point := func(i int) cp.Vector {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		return e.Center.Add(cp.Vector{X: math.Cos(a) * e.RX, Y: math.Sin(a) * e.RY})
	}
	for i := 0; i < ellipseSegments; i++ {
		x0, y0 := v.point(point(i))
		x1, y1 := v.point(point(i + 1))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	}
}

// drawContextMap draws one ray per slot: interest outward, danger inward.
func drawContextMap(screen *ebiten.Image, v view, at cp.Vector, d *component.SteeringDebug) {
	ox, oy := v.point(at)
	for i := 0; i < steering.Directions; i++ {
		dir := steering.SlotDirection(i)
		if in := d.Map.Interest[i]; in > 0 {
			x, y := v.point(at.Add(dir.Mult(math.Min(in, 1) * rayLength)))
			vector.StrokeLine(screen, ox, oy, x, y, 1, interestColor, true)
		}
		if dg := d.Map.Danger[i]; dg > 0 {
			x, y := v.point(at.Add(dir.Mult(math.Min(dg, 1) * rayLength * 0.5)))
			vector.StrokeLine(screen, ox, oy, x, y, 2, dangerColor, true)
		}
	}
	x, y := v.point(at.Add(d.Direction.Mult(d.Strength * rayLength)))
	vector.StrokeLine(screen, ox, oy, x, y, 2, colornames.Yellow, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	snap := g.arena.Snapshot()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("tick %d  fps %.1f  player %s hp %d",
		snap.Tick, ebiten.ActualFPS(), snap.Player.State, snap.Player.Health))
	ebitenutil.DebugPrintAt(screen, "WASD move  LMB attack  RMB block  SPACE dash  E throw  F1 rays  C copy  R restart  ESC pause", 4, common.BaseHeight-16)
	if g.statusTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 4, 16)
	}
}
