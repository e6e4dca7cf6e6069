package sat

// mat3 is a 3x3 matrix of float64 stored row major as a flat scalar array.
// It is stack allocated and copied by value, keeping the dot product tables
// of the separation tests off the heap.
type mat3 [9]float64

// at returns the entry at row i, column j.
func (m *mat3) at(i, j int) float64 { return m[3*i+j] }

// set assigns the entry at row i, column j.
func (m *mat3) set(i, j int, v float64) { m[3*i+j] = v }
