package sat

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// NewOrientedBox returns the box centered at center whose local axes are the
// world basis rotated by q, scaled to the given half-widths. The quaternion
// need not be unit length; it is normalized before use. Boxes built this way
// always satisfy the orthogonality precondition of the intersection tests.
func NewOrientedBox(center r3.Vector, q quat.Number, halfWidths r3.Vector) (OrientedBox, error) {
	if halfWidths.X <= 0 || halfWidths.Y <= 0 || halfWidths.Z <= 0 {
		return OrientedBox{}, errors.Errorf("oriented box half-widths must be positive, got %v", halfWidths)
	}
	n := quat.Abs(q)
	if n < unitizeTol {
		return OrientedBox{}, errors.New("zero quaternion cannot orient a box")
	}
	ax := quatAxes(quat.Scale(1/n, q))
	return OrientedBox{
		Center:  center,
		Extent1: ax[0].Mul(halfWidths.X),
		Extent2: ax[1].Mul(halfWidths.Y),
		Extent3: ax[2].Mul(halfWidths.Z),
	}, nil
}

// quatAxes returns the images of the three world basis vectors under
// rotation by the unit quaternion q, i.e. the columns of its rotation
// matrix.
func quatAxes(q quat.Number) [3]r3.Vector {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return [3]r3.Vector{
		{1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w)},
		{2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w)},
		{2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y)},
	}
}
