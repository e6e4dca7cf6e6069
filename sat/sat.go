// Package sat implements separating axis theorem (SAT) interference tests
// between 3D bounding volumes: an axis-aligned box against an oriented box,
// and an oriented box against another oriented box.
//
// The set of potential separating directions for a box pair includes the 3
// face normals of the first box, the 3 face normals of the second box, and 9
// directions, each of which is the cross product of an edge of the first box
// and an edge of the second box.
//
// references:	OBBTree: A Hierarchical Structure for Rapid Interference Detection
//
//	http://www.cs.unc.edu/techreports/96-013.pdf
//	Dynamic Collision Detection using Oriented Bounding Boxes
//	https://www.geometrictools.com/Documentation/DynamicCollisionDetection.pdf
package sat

import "math"

// unitizeTol is the standard unit-vector tolerance: the amount by which the
// magnitude of a vector may differ from 1 and still be treated as unit
// length. It is fixed at build time and shared by every test in this package.
const unitizeTol = 1e-15

// parallelCutoff bounds the absolute dot product of two unit axes; at or
// above it the axes are treated as parallel and the edge cross product axes
// are skipped (see axisTables.finish).
const parallelCutoff = 1 - unitizeTol

// axisTables caches the pairwise axis dot products for one box pair.
// dot.at(i, j) holds A0[i]·A1[j], abs its absolute value. parallel records
// whether any axis pair came within parallelCutoff of coincident.
type axisTables struct {
	dot      mat3
	abs      mat3
	parallel bool
}

// finish fills the absolute value table and the parallel flag from the dot
// table.
func (t *axisTables) finish() {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a := math.Abs(t.dot.at(i, j))
			t.abs.set(i, j, a)
			if a >= parallelCutoff {
				t.parallel = true
			}
		}
	}
}

// edgeAxisIndex names the index permutation behind one edge cross product
// axis A0[i] x A1[j]. i1 and i2 are the other two axes of box 0, j1 and j2
// the other two axes of box 1: the projected radius of each box onto the
// cross product axis sums the complementary half-extents weighted by the dot
// table entries these indices select.
type edgeAxisIndex struct {
	i, j   int
	i1, i2 int
	j1, j2 int
}

// The 9 edge axis combinations, i-major. The complementary indices of axis k
// are (k+1)%3 and (k+2)%3; the formulas in disjoint depend on this exact
// ordering.
var edgeAxes = [9]edgeAxisIndex{
	{0, 0, 1, 2, 1, 2},
	{0, 1, 1, 2, 2, 0},
	{0, 2, 1, 2, 0, 1},
	{1, 0, 2, 0, 1, 2},
	{1, 1, 2, 0, 2, 0},
	{1, 2, 2, 0, 0, 1},
	{2, 0, 0, 1, 1, 2},
	{2, 1, 0, 1, 2, 0},
	{2, 2, 0, 1, 0, 1},
}

// disjoint searches the up-to-15 candidate axes for a separating axis and
// reports whether one exists. dA0 and dA1 hold the center offset D = C1-C0
// projected onto each box's unit axes; e0 and e1 hold the half-extents.
// Comparisons are strict, so boxes that exactly touch are not separated.
func disjoint(dA0, dA1, e0, e1 [3]float64, t *axisTables) bool {
	// Test for separation on the face normal axes of box 0.
	for k := 0; k < 3; k++ {
		r01 := e0[k] + e1[0]*t.abs.at(k, 0) + e1[1]*t.abs.at(k, 1) + e1[2]*t.abs.at(k, 2)
		if math.Abs(dA0[k]) > r01 {
			return true
		}
	}

	// Test for separation on the face normal axes of box 1.
	for k := 0; k < 3; k++ {
		r01 := e0[0]*t.abs.at(0, k) + e0[1]*t.abs.at(1, k) + e0[2]*t.abs.at(2, k) + e1[k]
		if math.Abs(dA1[k]) > r01 {
			return true
		}
	}

	// At least one pair of box axes was parallel, so the separation is
	// effectively in 2D and the face normal tests above are conclusive. The
	// cross product axes are near zero length in this configuration and
	// testing them would manufacture spurious separations.
	if t.parallel {
		return false
	}

	// Test for separation on the edge cross product axes A0[i] x A1[j],
	// expressed through the cofactor identities encoded in edgeAxes rather
	// than materialized cross products.
	for _, ax := range edgeAxes {
		r := math.Abs(dA0[ax.i2]*t.dot.at(ax.i1, ax.j) - dA0[ax.i1]*t.dot.at(ax.i2, ax.j))
		r0 := e0[ax.i1]*t.abs.at(ax.i2, ax.j) + e0[ax.i2]*t.abs.at(ax.i1, ax.j)
		r1 := e1[ax.j1]*t.abs.at(ax.i, ax.j2) + e1[ax.j2]*t.abs.at(ax.i, ax.j1)
		if r > r0+r1 {
			return true
		}
	}

	return false
}

// AlignedVsOriented reports whether an axis-aligned box and an oriented box
// overlap. It returns false only when a separating axis proves the boxes
// disjoint; boxes that merely touch are reported as overlapping. It never
// reports which axis separated the boxes, nor any overlap measure.
//
// Both boxes must be well formed (see AlignedBox and OrientedBox); malformed
// input yields an unspecified result, not an error.
func AlignedVsOriented(b AlignedBox, o OrientedBox) bool {
	f0 := b.form()
	f1 := o.form()

	d := f1.center.Sub(f0.center)

	// The aligned box's axes are the world basis, so A0[i]·A1[j] is simply
	// component i of A1[j] and no dot products are needed.
	var t axisTables
	for j, a := range f1.axes {
		t.dot.set(0, j, a.X)
		t.dot.set(1, j, a.Y)
		t.dot.set(2, j, a.Z)
	}
	t.finish()

	dA0 := [3]float64{d.X, d.Y, d.Z}
	dA1 := [3]float64{d.Dot(f1.axes[0]), d.Dot(f1.axes[1]), d.Dot(f1.axes[2])}
	return !disjoint(dA0, dA1, f0.halfSize, f1.halfSize, &t)
}

// OrientedVsOriented reports whether two oriented boxes overlap, under the
// same contract as AlignedVsOriented. Expressing an axis-aligned box as a
// world-aligned OrientedBox and calling this function produces the same
// verdict as AlignedVsOriented.
func OrientedVsOriented(o0, o1 OrientedBox) bool {
	f0 := o0.form()
	f1 := o1.form()

	d := f1.center.Sub(f0.center)

	var t axisTables
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.dot.set(i, j, f0.axes[i].Dot(f1.axes[j]))
		}
	}
	t.finish()

	var dA0, dA1 [3]float64
	for k := 0; k < 3; k++ {
		dA0[k] = d.Dot(f0.axes[k])
		dA1[k] = d.Dot(f1.axes[k])
	}
	return !disjoint(dA0, dA1, f0.halfSize, f1.halfSize, &t)
}
