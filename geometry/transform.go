// Package geometry provides the coordinate math for slide shape trees:
// group transforms that map child-space coordinates into slide space, and
// the affine matrices used to cross-check them.
//
// A group on a slide declares its own frame (offset and extent) plus a
// child frame (chOff and chExt) that its children are laid out in. Mapping
// a child point into the parent space subtracts the child offset, scales by
// extent over child extent, and adds the group offset. Nested groups chain
// by composition, so a whole branch of groups collapses into a single
// [GroupTransform] that is applied once per leaf element.
package geometry

// GroupTransform maps points from a group's child coordinate space into the
// enclosing space. The zero value is not useful; use [Identity] or
// [NewGroupTransform].
type GroupTransform struct {
	ScaleX, ScaleY             float64
	OffsetX, OffsetY           float64
	ChildOffsetX, ChildOffsetY float64
	Rotation                   float64 // degrees, accumulated through composition
	FlipH, FlipV               bool
}

// Identity returns the transform that maps every point to itself.
func Identity() GroupTransform {
	return GroupTransform{ScaleX: 1, ScaleY: 1}
}

// NewGroupTransform builds a transform from a group's frame: its offset and
// extent, and the child frame's offset and extent, all in points. A zero
// child extent would divide out to infinity, so that axis falls back to
// scale 1.
func NewGroupTransform(offX, offY, extX, extY, chOffX, chOffY, chExtX, chExtY float64) GroupTransform {
	sx, sy := 1.0, 1.0
	if chExtX != 0 {
		sx = extX / chExtX
	}
	if chExtY != 0 {
		sy = extY / chExtY
	}
	return GroupTransform{
		ScaleX:       sx,
		ScaleY:       sy,
		OffsetX:      offX,
		OffsetY:      offY,
		ChildOffsetX: chOffX,
		ChildOffsetY: chOffY,
	}
}

// Apply maps a point from child space to the enclosing space: shift by the
// child offset, scale, then shift by the group offset.
func (t GroupTransform) Apply(x, y float64) (float64, float64) {
	rx := x - t.ChildOffsetX
	ry := y - t.ChildOffsetY
	return rx*t.ScaleX + t.OffsetX, ry*t.ScaleY + t.OffsetY
}

// Compose collapses a nested child transform into this one. The result maps
// the child's child space directly into this transform's enclosing space:
//
//	t.Compose(c).Apply(p) == t.Apply(c.Apply(p))
//
// Scales multiply, the child's offset passes through the parent mapping,
// rotations accumulate, and flips cancel pairwise.
func (t GroupTransform) Compose(child GroupTransform) GroupTransform {
	ox, oy := t.Apply(child.OffsetX, child.OffsetY)
	return GroupTransform{
		ScaleX:       t.ScaleX * child.ScaleX,
		ScaleY:       t.ScaleY * child.ScaleY,
		OffsetX:      ox,
		OffsetY:      oy,
		ChildOffsetX: child.ChildOffsetX,
		ChildOffsetY: child.ChildOffsetY,
		Rotation:     t.Rotation + child.Rotation,
		FlipH:        t.FlipH != child.FlipH,
		FlipV:        t.FlipV != child.FlipV,
	}
}

// Matrix expresses the positional part of the transform (rotation and flips
// are carried separately and applied per element) as an affine matrix.
func (t GroupTransform) Matrix() Matrix {
	return Translate(-t.ChildOffsetX, -t.ChildOffsetY).
		Multiply(Scale(t.ScaleX, t.ScaleY)).
		Multiply(Translate(t.OffsetX, t.OffsetY))
}
