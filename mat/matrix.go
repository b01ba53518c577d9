package mat

import "fmt"

// Orientation says whether a matrix's elements are conceptually
// column-major or row-major for stride-derivation purposes. Storage is
// always column-major at the root; orientation is a property of the
// view chain (Transpose flips it, Window and Strided preserve it).
type Orientation int

// Matrix orientations.
const (
	ColMajor Orientation = iota
	RowMajor
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case ColMajor:
		return "column"
	case RowMajor:
		return "row"
	default:
		return "unknown"
	}
}

func (o Orientation) flip() Orientation {
	if o == ColMajor {
		return RowMajor
	}
	return ColMajor
}

// layout is the fully collapsed index mapping of a view relative to its
// root storage: flat = base + i*rowStride + j*colStride. It is memoized
// at view construction so element access never recurses through the
// parent chain.
type layout struct {
	base      int
	rowStride int
	colStride int
}

func (l layout) index(i, j int) int {
	return l.base + i*l.rowStride + j*l.colStride
}

// Matrix is the read/write contract shared by dense matrices and every
// view kind (Window, Transpose, Strided, vector Slice). The unexported
// methods close the variant set: only types in this package can satisfy
// it, so index mapping stays a total function over known kinds.
type Matrix interface {
	// Rows returns the number of rows. Always >= 0.
	Rows() int
	// Cols returns the number of columns. Always >= 0.
	Cols() int
	// Kind returns the element kind of the root storage.
	Kind() Kind
	// Orientation reports the view's orientation.
	Orientation() Orientation
	// NumElements returns Rows()*Cols().
	NumElements() int

	// root returns the Dense matrix terminating the view chain.
	root() *Dense
	// index maps pre-checked logical indices to a flat storage offset.
	index(i, j int) int
	// lay returns the collapsed affine layout; ok is false when the
	// view has no single affine description (composed generic slices).
	lay() (layout, bool)
	// unitStrides reports whether every stride along the chain is 1,
	// i.e. the view is indexable as plain column-major storage.
	unitStrides() bool
}

// Dim returns the extent of dimension d: rows for 0, columns for 1.
// Any other d is an out-of-range error.
func Dim(m Matrix, d int) (int, error) {
	switch d {
	case 0:
		return m.Rows(), nil
	case 1:
		return m.Cols(), nil
	default:
		return 0, fmt.Errorf("mat: dimension index %d not in {0,1}: %w", d, ErrOutOfRange)
	}
}
