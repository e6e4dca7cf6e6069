package sat

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNewAlignedBox(t *testing.T) {
	b, err := NewAlignedBox(r3.Vector{X: -1, Y: -2, Z: -3}, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b.Center(), test.ShouldResemble, r3.Vector{})
	test.That(t, b.HalfSize(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	// Zero volume boxes are allowed, for bounding boxes of flat geometry.
	_, err = NewAlignedBox(r3.Vector{X: 1, Y: 1, Z: 1}, r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, err, test.ShouldBeNil)

	_, err = NewAlignedBox(r3.Vector{X: 1}, r3.Vector{X: -1})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewAlignedBox(r3.Vector{Y: 2}, r3.Vector{Y: 1, X: 5, Z: 5})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestOrientedBoxDerivedForm(t *testing.T) {
	o := OrientedBox{
		Center:  r3.Vector{X: 1, Y: 2, Z: 3},
		Extent1: r3.Vector{X: 2},
		Extent2: r3.Vector{Y: 3},
		Extent3: r3.Vector{Z: 4},
	}
	test.That(t, o.HalfSize(), test.ShouldResemble, [3]float64{2, 3, 4})
	axes := o.Axes()
	test.That(t, axes[0], test.ShouldResemble, r3.Vector{X: 1})
	test.That(t, axes[1], test.ShouldResemble, r3.Vector{Y: 1})
	test.That(t, axes[2], test.ShouldResemble, r3.Vector{Z: 1})
}

func TestCanonicalFormConsistency(t *testing.T) {
	// An aligned box and its world-aligned oriented re-expression normalize
	// to the same canonical form.
	b := AlignedBox{Min: r3.Vector{X: -2, Y: 0, Z: 1}, Max: r3.Vector{X: 2, Y: 8, Z: 5}}
	f0 := b.form()
	f1 := asOriented(b).form()

	test.That(t, f1.center, test.ShouldResemble, f0.center)
	test.That(t, f1.halfSize, test.ShouldResemble, f0.halfSize)
	test.That(t, f1.axes, test.ShouldResemble, f0.axes)
}

func TestBoxString(t *testing.T) {
	b := AlignedBox{Min: r3.Vector{X: -1, Y: -1, Z: -1}, Max: r3.Vector{X: 1, Y: 1, Z: 1}}
	test.That(t, strings.Contains(b.String(), "AlignedBox"), test.ShouldBeTrue)

	o := makeBox(r3.Vector{}, 0, 0, 0, r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, strings.Contains(o.String(), "OrientedBox"), test.ShouldBeTrue)
}

func TestMat3(t *testing.T) {
	var m mat3
	v := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.set(i, j, v)
			v++
		}
	}
	// Row major layout.
	test.That(t, m, test.ShouldResemble, mat3{0, 1, 2, 3, 4, 5, 6, 7, 8})
	test.That(t, m.at(1, 2), test.ShouldEqual, 5.0)
	test.That(t, m.at(2, 0), test.ShouldEqual, 6.0)
}
