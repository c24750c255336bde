package geom

import "github.com/jakecoffman/cp"

// Circle is one piece of a compound body, relative to the actor anchor.
type Circle struct {
	Offset cp.Vector
	Radius float64
}

// HitCollider represents non-circular bodies as overlapping circles.
type HitCollider struct {
	Circles []Circle
}

func NewHitCollider(circles ...Circle) HitCollider {
	return HitCollider{Circles: append([]Circle(nil), circles...)}
}

// MaxRadius is the largest circle radius. Attack ranges are extended by it.
func (c *HitCollider) MaxRadius() float64 {
	if c == nil {
		return 0
	}
	r := 0.0
	for _, circle := range c.Circles {
		if circle.Radius > r {
			r = circle.Radius
		}
	}
	return r
}

// MaxOffset is the distance of the farthest circle centre from the anchor.
func (c *HitCollider) MaxOffset() float64 {
	if c == nil {
		return 0
	}
	d := 0.0
	for _, circle := range c.Circles {
		if l := circle.Offset.Length(); l > d {
			d = l
		}
	}
	return d
}

// BoundingRadius encloses every circle.
func (c *HitCollider) BoundingRadius() float64 {
	if c == nil {
		return 0
	}
	r := 0.0
	for _, circle := range c.Circles {
		if l := circle.Offset.Length() + circle.Radius; l > r {
			r = l
		}
	}
	return r
}

// Bounds returns the axis-aligned box of the collider placed at pos.
func (c *HitCollider) Bounds(pos cp.Vector) cp.BB {
	if c == nil || len(c.Circles) == 0 {
		return cp.NewBBForCircle(pos, 0)
	}
	first := c.Circles[0]
	bb := cp.NewBBForCircle(pos.Add(first.Offset), first.Radius)
	for _, circle := range c.Circles[1:] {
		bb = bb.Merge(cp.NewBBForCircle(pos.Add(circle.Offset), circle.Radius))
	}
	return bb
}
