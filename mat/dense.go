package mat

import "fmt"

// Dense is a matrix that owns its storage: a contiguous column-major
// buffer of one element kind. Every view chain terminates at exactly
// one Dense. Shape is immutable after construction.
type Dense struct {
	rows, cols int
	stor       *Storage
	l          layout
}

// NewDense creates a rows x cols Dense matrix of the given kind,
// zero-initialized. Zero-size shapes (0x0, 0x1, 1x0) are valid and have
// no in-range accesses.
func NewDense(rows, cols int, k Kind) (*Dense, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	if !k.Valid() {
		return nil, fmt.Errorf("mat: kind %d: %w", int(k), ErrBadKind)
	}
	return newDense(rows, cols, newStorage(rows*cols, k)), nil
}

// NewDenseBytes creates a Dense matrix over an externally owned buffer
// without copying, e.g. a memory-mapped file region. len(buf) must be
// exactly rows*cols*k.Size().
func NewDenseBytes(rows, cols int, k Kind, buf []byte) (*Dense, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	if !k.Valid() {
		return nil, fmt.Errorf("mat: kind %d: %w", int(k), ErrBadKind)
	}
	if want := rows * cols * k.Size(); len(buf) != want {
		return nil, fmt.Errorf("mat: buffer is %d bytes, %dx%d %s needs %d: %w",
			len(buf), rows, cols, k, want, ErrShapeMismatch)
	}
	return newDense(rows, cols, storageFromBytes(rows*cols, k, buf)), nil
}

func newDense(rows, cols int, stor *Storage) *Dense {
	// colStride is clamped to 1 for zero-row matrices so strides stay
	// nonzero (same convention as BLAS lda >= max(1,m)).
	cs := rows
	if cs == 0 {
		cs = 1
	}
	return &Dense{
		rows: rows,
		cols: cols,
		stor: stor,
		l:    layout{base: 0, rowStride: 1, colStride: cs},
	}
}

func checkShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("mat: shape %dx%d: %w", rows, cols, ErrBadShape)
	}
	return nil
}

// FromSlice creates a Dense matrix from data laid out in column-major
// (storage) order. The data is copied.
func FromSlice[T Elem](rows, cols int, data []T) (*Dense, error) {
	d, err := NewDense(rows, cols, KindOf[T]())
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("mat: shape %dx%d needs %d elements, got %d: %w",
			rows, cols, rows*cols, len(data), ErrShapeMismatch)
	}
	copy(typed[T](d.stor), data)
	return d, nil
}

// FromRows creates a Dense matrix from a slice of rows. All rows must
// have the same length. The data is copied into column-major storage.
func FromRows[T Elem](rows [][]T) (*Dense, error) {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != nc {
			return nil, fmt.Errorf("mat: row %d has %d elements, want %d: %w",
				i, len(r), nc, ErrShapeMismatch)
		}
	}
	d, err := NewDense(nr, nc, KindOf[T]())
	if err != nil {
		return nil, err
	}
	data := typed[T](d.stor)
	for i, r := range rows {
		for j, v := range r {
			data[i+nr*j] = v
		}
	}
	return d, nil
}

// FromValues creates a Dense matrix of the declared kind from row-major
// untyped values. Every value must be exactly the Go type of the kind
// (float64 for Float64 and so on); a mismatched value fails here, at
// construction, never at first access.
func FromValues(rows, cols int, k Kind, values []any) (*Dense, error) {
	d, err := NewDense(rows, cols, k)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("mat: shape %dx%d needs %d values, got %d: %w",
			rows, cols, rows*cols, len(values), ErrShapeMismatch)
	}
	for n, raw := range values {
		v, err := valueAs(raw, k)
		if err != nil {
			return nil, fmt.Errorf("mat: value %d (%v): %w", n, raw, err)
		}
		i, j := n/cols, n%cols
		d.stor.setValue(d.l.index(i, j), v)
	}
	return d, nil
}

func valueAs(raw any, k Kind) (complex128, error) {
	switch v := raw.(type) {
	case float32:
		if k == Float32 {
			return complex(float64(v), 0), nil
		}
	case float64:
		if k == Float64 {
			return complex(v, 0), nil
		}
	case complex64:
		if k == Complex64 {
			return complex128(v), nil
		}
	case complex128:
		if k == Complex128 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%T is not %s: %w", raw, k, ErrKindMismatch)
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// Kind returns the element kind of the storage.
func (d *Dense) Kind() Kind { return d.stor.kind }

// Orientation of a root Dense matrix is always column-major.
func (d *Dense) Orientation() Orientation { return ColMajor }

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int { return d.rows * d.cols }

// Storage returns the underlying buffer.
// WARNING: writes through it are visible through every view.
func (d *Dense) Storage() *Storage { return d.stor }

func (d *Dense) root() *Dense        { return d }
func (d *Dense) index(i, j int) int  { return d.l.index(i, j) }
func (d *Dense) lay() (layout, bool) { return d.l, true }
func (d *Dense) unitStrides() bool   { return true }
