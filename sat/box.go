package sat

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// AlignedBox is an axis-aligned box described by its two extreme corners.
// Its local axes are implicitly the world basis vectors. Min must not exceed
// Max on any axis.
type AlignedBox struct {
	Min, Max r3.Vector
}

// OrientedBox is a box described by its center point and three extent
// vectors. Each extent vector points along one local axis of the box and has
// magnitude equal to the box's half-width along that axis.
//
// The three axes must be mutually orthogonal and each extent vector must be
// nonzero. The intersection tests assume this and never re-validate it: a
// violating box yields an unspecified verdict, not an error. NewOrientedBox
// constructs boxes that satisfy the precondition.
type OrientedBox struct {
	Center                    r3.Vector
	Extent1, Extent2, Extent3 r3.Vector
}

// NewAlignedBox returns the axis-aligned box spanning the given corners.
// The corners may describe a zero-volume box but min may not exceed max.
func NewAlignedBox(min, max r3.Vector) (AlignedBox, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return AlignedBox{}, errors.Errorf("aligned box min %v exceeds max %v", min, max)
	}
	return AlignedBox{Min: min, Max: max}, nil
}

// Center returns the center point of the box.
func (b AlignedBox) Center() r3.Vector {
	return b.Max.Add(b.Min).Mul(0.5)
}

// HalfSize returns the box's half-extent along each world axis.
func (b AlignedBox) HalfSize() r3.Vector {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// String returns a human readable string that represents the box.
func (b AlignedBox) String() string {
	c := b.Center()
	h := b.HalfSize()
	return fmt.Sprintf("Type: AlignedBox | Position: X:%.1f, Y:%.1f, Z:%.1f | Dims: X:%.1f, Y:%.1f, Z:%.1f",
		c.X, c.Y, c.Z, 2*h.X, 2*h.Y, 2*h.Z)
}

// HalfSize returns the box's half-width along each of its local axes.
func (o OrientedBox) HalfSize() [3]float64 {
	return [3]float64{o.Extent1.Norm(), o.Extent2.Norm(), o.Extent3.Norm()}
}

// Axes returns the box's local unit axes. A zero extent vector normalizes to
// the zero vector; callers must guarantee well formed input.
func (o OrientedBox) Axes() [3]r3.Vector {
	return [3]r3.Vector{o.Extent1.Normalize(), o.Extent2.Normalize(), o.Extent3.Normalize()}
}

// String returns a human readable string that represents the box.
func (o OrientedBox) String() string {
	h := o.HalfSize()
	return fmt.Sprintf("Type: OrientedBox | Position: X:%.1f, Y:%.1f, Z:%.1f | Dims: X:%.1f, Y:%.1f, Z:%.1f",
		o.Center.X, o.Center.Y, o.Center.Z, 2*h[0], 2*h[1], 2*h[2])
}

// boxForm is the canonical center + half-extent + unit-axis representation
// that both intersection tests operate on.
type boxForm struct {
	center   r3.Vector
	halfSize [3]float64
	axes     [3]r3.Vector
}

func (b AlignedBox) form() boxForm {
	h := b.HalfSize()
	return boxForm{
		center:   b.Center(),
		halfSize: [3]float64{h.X, h.Y, h.Z},
		axes:     [3]r3.Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
}

func (o OrientedBox) form() boxForm {
	return boxForm{
		center:   o.Center,
		halfSize: o.HalfSize(),
		axes:     o.Axes(),
	}
}
