package mat

import "fmt"

// Window is a zero-copy sub-block view: the parent's elements shifted
// by a row/column offset and restricted to a smaller extent. It
// preserves the parent's orientation.
type Window struct {
	parent         Matrix
	rows, cols     int
	rowOff, colOff int
	l              layout
	flat           bool
	unit           bool
}

// NewWindow returns a view of m covering rows x cols elements starting
// at (rowOff, colOff). The window must lie entirely inside m. Windowing
// a Window or a Strided view collapses onto the grandparent, so chains
// stay flat regardless of how views are composed.
func NewWindow(m Matrix, rowOff, colOff, rows, cols int) (Matrix, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	if rowOff < 0 || colOff < 0 || rowOff+rows > m.Rows() || colOff+cols > m.Cols() {
		return nil, fmt.Errorf("mat: window %dx%d at (%d,%d) exceeds %dx%d parent: %w",
			rows, cols, rowOff, colOff, m.Rows(), m.Cols(), ErrOutOfRange)
	}

	unit := m.unitStrides()
	l, flat := windowLayout(m, rowOff, colOff)

	switch p := m.(type) {
	case *Window:
		m, rowOff, colOff = p.parent, rowOff+p.rowOff, colOff+p.colOff
	case *Strided:
		return &Strided{
			parent:    p.parent,
			rows:      rows,
			cols:      cols,
			rowOff:    p.rowOff + rowOff*p.rowStride,
			colOff:    p.colOff + colOff*p.colStride,
			rowStride: p.rowStride,
			colStride: p.colStride,
			l:         l,
			flat:      flat,
			unit:      unit,
		}, nil
	}

	return &Window{
		parent: m,
		rows:   rows,
		cols:   cols,
		rowOff: rowOff,
		colOff: colOff,
		l:      l,
		flat:   flat,
		unit:   unit,
	}, nil
}

func windowLayout(m Matrix, rowOff, colOff int) (layout, bool) {
	l, ok := m.lay()
	if !ok {
		return layout{}, false
	}
	return layout{
		base:      l.index(rowOff, colOff),
		rowStride: l.rowStride,
		colStride: l.colStride,
	}, true
}

// Parent returns the matrix the window was built over (after collapse).
func (w *Window) Parent() Matrix { return w.parent }

// Rows returns the number of rows.
func (w *Window) Rows() int { return w.rows }

// Cols returns the number of columns.
func (w *Window) Cols() int { return w.cols }

// Kind returns the element kind of the root storage.
func (w *Window) Kind() Kind { return w.parent.Kind() }

// Orientation matches the parent's orientation.
func (w *Window) Orientation() Orientation { return w.parent.Orientation() }

// NumElements returns the total number of elements.
func (w *Window) NumElements() int { return w.rows * w.cols }

func (w *Window) root() *Dense { return w.parent.root() }

func (w *Window) index(i, j int) int {
	if w.flat {
		return w.l.index(i, j)
	}
	return w.parent.index(i+w.rowOff, j+w.colOff)
}

func (w *Window) lay() (layout, bool) { return w.l, w.flat }
func (w *Window) unitStrides() bool   { return w.unit }

// Transpose is a zero-copy view with rows and columns swapped and the
// orientation flipped. It never nests: transposing a Transpose returns
// the original matrix itself rather than a double-flip wrapper.
type Transpose struct {
	parent Matrix
	l      layout
	flat   bool
	orient Orientation
}

// T returns the transpose view of m. T(T(m)) is m.
func T(m Matrix) Matrix {
	if t, ok := m.(*Transpose); ok {
		return t.parent
	}
	l, flat := m.lay()
	return &Transpose{
		parent: m,
		l:      layout{base: l.base, rowStride: l.colStride, colStride: l.rowStride},
		flat:   flat,
		orient: m.Orientation().flip(),
	}
}

// Parent returns the transposed matrix.
func (t *Transpose) Parent() Matrix { return t.parent }

// Rows returns the number of rows (the parent's columns).
func (t *Transpose) Rows() int { return t.parent.Cols() }

// Cols returns the number of columns (the parent's rows).
func (t *Transpose) Cols() int { return t.parent.Rows() }

// Kind returns the element kind of the root storage.
func (t *Transpose) Kind() Kind { return t.parent.Kind() }

// Orientation is the opposite of the parent's.
func (t *Transpose) Orientation() Orientation { return t.orient }

// NumElements returns the total number of elements.
func (t *Transpose) NumElements() int { return t.parent.NumElements() }

func (t *Transpose) root() *Dense { return t.parent.root() }

func (t *Transpose) index(i, j int) int {
	if t.flat {
		return t.l.index(i, j)
	}
	return t.parent.index(j, i)
}

func (t *Transpose) lay() (layout, bool) { return t.l, t.flat }
func (t *Transpose) unitStrides() bool   { return t.parent.unitStrides() }

// Strided generalizes Window with nonzero row and column strides: the
// view's element (i, j) is the parent's (rowOff+i*rowStride,
// colOff+j*colStride). Strides may be negative; they must not be zero.
type Strided struct {
	parent               Matrix
	rows, cols           int
	rowOff, colOff       int
	rowStride, colStride int
	l                    layout
	flat                 bool
	unit                 bool
}

// NewStrided returns a strided view of m. Every index the view can
// reach must lie inside m; both walk endpoints are range-checked per
// dimension, so negative strides are accepted. Striding a Window or a
// Strided view collapses onto the grandparent.
func NewStrided(m Matrix, rowOff, colOff, rows, cols, rowStride, colStride int) (*Strided, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	if rowStride == 0 || colStride == 0 {
		return nil, fmt.Errorf("mat: strides (%d,%d): %w", rowStride, colStride, ErrZeroStride)
	}
	if err := checkWalk(rowOff, rowStride, rows, m.Rows(), "row"); err != nil {
		return nil, err
	}
	if err := checkWalk(colOff, colStride, cols, m.Cols(), "column"); err != nil {
		return nil, err
	}

	unit := m.unitStrides() && rowStride == 1 && colStride == 1
	l, flat := stridedLayout(m, rowOff, colOff, rowStride, colStride)

	switch p := m.(type) {
	case *Window:
		m, rowOff, colOff = p.parent, rowOff+p.rowOff, colOff+p.colOff
	case *Strided:
		rowOff = p.rowOff + rowOff*p.rowStride
		colOff = p.colOff + colOff*p.colStride
		rowStride *= p.rowStride
		colStride *= p.colStride
		m = p.parent
	}

	return &Strided{
		parent:    m,
		rows:      rows,
		cols:      cols,
		rowOff:    rowOff,
		colOff:    colOff,
		rowStride: rowStride,
		colStride: colStride,
		l:         l,
		flat:      flat,
		unit:      unit,
	}, nil
}

func stridedLayout(m Matrix, rowOff, colOff, rowStride, colStride int) (layout, bool) {
	l, ok := m.lay()
	if !ok {
		return layout{}, false
	}
	return layout{
		base:      l.index(rowOff, colOff),
		rowStride: rowStride * l.rowStride,
		colStride: colStride * l.colStride,
	}, true
}

// checkWalk verifies that a strided walk of n steps starting at off
// stays within [0, extent).
func checkWalk(off, stride, n, extent int, dim string) error {
	if n == 0 {
		if off < 0 || off > extent {
			return fmt.Errorf("mat: %s offset %d outside [0,%d]: %w", dim, off, extent, ErrOutOfRange)
		}
		return nil
	}
	last := off + (n-1)*stride
	if off < 0 || off >= extent || last < 0 || last >= extent {
		return fmt.Errorf("mat: %s walk %d..%d outside [0,%d): %w", dim, off, last, extent, ErrOutOfRange)
	}
	return nil
}

// Parent returns the matrix the view was built over (after collapse).
func (s *Strided) Parent() Matrix { return s.parent }

// Rows returns the number of rows.
func (s *Strided) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Strided) Cols() int { return s.cols }

// Kind returns the element kind of the root storage.
func (s *Strided) Kind() Kind { return s.parent.Kind() }

// Orientation matches the parent's orientation.
func (s *Strided) Orientation() Orientation { return s.parent.Orientation() }

// NumElements returns the total number of elements.
func (s *Strided) NumElements() int { return s.rows * s.cols }

func (s *Strided) root() *Dense { return s.parent.root() }

func (s *Strided) index(i, j int) int {
	if s.flat {
		return s.l.index(i, j)
	}
	return s.parent.index(s.rowOff+i*s.rowStride, s.colOff+j*s.colStride)
}

func (s *Strided) lay() (layout, bool) { return s.l, s.flat }
func (s *Strided) unitStrides() bool   { return s.unit }
