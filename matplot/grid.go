// Package matplot renders mat matrices with gonum.org/v1/plot.
package matplot

import (
	"math"

	"github.com/matview-go/matview/mat"
)

// Grid adapts any mat.Matrix to plotter.GridXYZ. Values are the real
// part of the element; row 0 is drawn at the top, matching matrix
// convention rather than plot's bottom-up y axis.
type Grid struct {
	m mat.Matrix
}

// NewGrid wraps m. The grid aliases the matrix: it reflects later
// writes through any view of the same storage.
func NewGrid(m mat.Matrix) Grid {
	return Grid{m: m}
}

// Dims returns the number of columns and rows.
func (g Grid) Dims() (c, r int) {
	return g.m.Cols(), g.m.Rows()
}

// Z returns the real part of the element in plot coordinates: plot row
// r counts up from the bottom, so it maps to matrix row Rows()-1-r.
func (g Grid) Z(c, r int) float64 {
	v, err := mat.ValueAt(g.m, g.m.Rows()-1-r, c)
	if err != nil {
		return math.NaN()
	}
	return real(v)
}

// X returns the coordinate of column c.
func (g Grid) X(c int) float64 { return float64(c) }

// Y returns the coordinate of plot row r.
func (g Grid) Y(r int) float64 { return float64(r) }
