package mat

import "fmt"

// VectorType tags a vector as a logical row or column.
type VectorType int

// Vector tags.
const (
	ColumnVector VectorType = iota
	RowVector
)

// String returns a human-readable tag name.
func (t VectorType) String() string {
	switch t {
	case ColumnVector:
		return "column"
	case RowVector:
		return "row"
	default:
		return "unknown"
	}
}

func (t VectorType) valid() bool {
	return t == ColumnVector || t == RowVector
}

// Vector specializes Matrix to the one-row-or-one-column invariant. A
// vector is a degenerate rank-2 object: a column vector is n x 1, a row
// vector 1 x n, and either satisfies the full Matrix contract.
type Vector interface {
	Matrix

	// Len returns the number of elements.
	Len() int
	// VType reports whether the vector is a row or a column.
	VType() VectorType

	// rootOffset maps a pre-checked vector index to a flat offset in
	// the root storage.
	rootOffset(k int) int
}

// Slice is a vector view walking one logical dimension of a parent
// matrix: element k lives at position offset + k*stride of the
// parent's column-major linearization. Composed slices collapse at
// construction, so access is O(1) regardless of how deep the original
// chain was.
type Slice struct {
	parent  Matrix
	offset  int
	stride  int
	length  int
	vtype   VectorType
	rtBase  int
	rtStrid int
	flat    bool
}

// NewSlice returns a vector view of length elements of m, starting at
// offset into m's column-major linearization and advancing by stride
// (nonzero, possibly negative). Slicing a Slice composes onto the
// grandparent; slicing a Transpose drops the transpose, since it does
// not change the underlying storage layout.
func NewSlice(m Matrix, offset, stride, length int, vt VectorType) (*Slice, error) {
	if !vt.valid() {
		return nil, fmt.Errorf("mat: vector type %d: %w", int(vt), ErrBadOrientation)
	}
	if stride == 0 {
		return nil, fmt.Errorf("mat: slice stride: %w", ErrZeroStride)
	}
	if length < 0 {
		return nil, fmt.Errorf("mat: slice length %d: %w", length, ErrBadShape)
	}
	if err := checkWalk(offset, stride, length, m.NumElements(), "slice"); err != nil {
		return nil, err
	}

	parent, offset, stride := collapseSlice(m, offset, stride)
	s := &Slice{
		parent: parent,
		offset: offset,
		stride: stride,
		length: length,
		vtype:  vt,
	}
	s.rtBase, s.rtStrid, s.flat = flatten(parent, offset, stride, length)
	return s, nil
}

// AsVector views all of m's elements, in storage order, as one vector.
func AsVector(m Matrix, vt VectorType) (*Slice, error) {
	return NewSlice(m, 0, 1, m.NumElements(), vt)
}

// NewVector creates a fresh column vector of n elements backed by its
// own n x 1 Dense matrix.
func NewVector(n int, k Kind) (*Slice, error) {
	d, err := NewDense(n, 1, k)
	if err != nil {
		return nil, err
	}
	return AsVector(d, ColumnVector)
}

// collapseSlice rewrites (parent, offset, stride) until the parent is
// neither a Slice nor a Transpose.
func collapseSlice(m Matrix, offset, stride int) (Matrix, int, int) {
	for {
		switch p := m.(type) {
		case *Slice:
			offset = p.offset + p.stride*offset
			stride = p.stride * stride
			m = p.parent
		case *Transpose:
			m = p.parent
		default:
			return m, offset, stride
		}
	}
}

// flatten derives the slice's (base, stride) relative to the root
// storage. It succeeds when the parent's linearization is affine: the
// parent is the root itself, has at most one row, has a column stride
// equal to rows*rowStride, or the whole walk stays inside one column.
// Otherwise there is no single stride and access goes through the
// parent mapping.
func flatten(parent Matrix, offset, stride, length int) (base, rstride int, ok bool) {
	if length == 0 {
		return 0, stride, true
	}
	if d, isRoot := parent.(*Dense); isRoot {
		return d.l.base + offset, stride, true
	}
	l, affine := parent.lay()
	if !affine {
		return 0, 0, false
	}
	r := parent.Rows()
	switch {
	case r <= 1:
		return l.base + offset*l.colStride, stride * l.colStride, true
	case l.colStride == r*l.rowStride:
		return l.base + offset*l.rowStride, stride * l.rowStride, true
	}
	lo, hi := offset, offset+(length-1)*stride
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo/r == hi/r {
		// The walk never leaves one parent column.
		j := lo / r
		return l.index(offset%r, j), stride * l.rowStride, true
	}
	return 0, 0, false
}

// RealStride returns v's stride expressed relative to the root Dense
// storage. ok is false when the view chain makes the stride
// non-constant; that is a legitimate answer a BLAS-call layer reacts
// to by copying, not an error.
func RealStride(v Vector) (stride int, ok bool) {
	s, isSlice := v.(*Slice)
	if !isSlice {
		return 0, false
	}
	return s.rtStrid, s.flat
}

// VAt returns vector element k. This is the slow path; bulk operations
// use RealStride and the typed storage slices.
func VAt[T Elem](v Vector, k int) (T, error) {
	var zero T
	if err := checkVIndex(v, k); err != nil {
		return zero, err
	}
	if err := checkKind[T](v); err != nil {
		return zero, err
	}
	return typed[T](v.root().stor)[v.rootOffset(k)], nil
}

// VSet writes vector element k. The write is immediately visible
// through every other alias of the same storage.
func VSet[T Elem](v Vector, k int, x T) error {
	if err := checkVIndex(v, k); err != nil {
		return err
	}
	if err := checkKind[T](v); err != nil {
		return err
	}
	typed[T](v.root().stor)[v.rootOffset(k)] = x
	return nil
}

func checkVIndex(v Vector, k int) error {
	if k < 0 || k >= v.Len() {
		return fmt.Errorf("mat: vector index %d outside [0,%d): %w", k, v.Len(), ErrOutOfRange)
	}
	return nil
}

// Row returns row i of m as a vector slice computed directly against
// the root Dense matrix, using m's collapsed layout: the densest
// available ancestor, whatever views sit in between.
func Row(m Matrix, i int) (*Slice, error) {
	if i < 0 || i >= m.Rows() {
		return nil, fmt.Errorf("mat: row %d outside [0,%d): %w", i, m.Rows(), ErrOutOfRange)
	}
	if s, isSlice := m.(*Slice); isSlice {
		return s.line(i, RowVector)
	}
	l, ok := m.lay()
	if !ok {
		if t, isT := m.(*Transpose); isT {
			// Row i of a transpose is column i of its parent.
			s, err := Col(t.parent, i)
			if err != nil {
				return nil, err
			}
			s.vtype = RowVector
			return s, nil
		}
		return NewSlice(m, i, m.Rows(), m.Cols(), RowVector)
	}
	return rootSlice(m.root(), l.base+i*l.rowStride, l.colStride, m.Cols(), RowVector), nil
}

// Col returns column j of m as a vector slice computed directly
// against the root Dense matrix.
func Col(m Matrix, j int) (*Slice, error) {
	if j < 0 || j >= m.Cols() {
		return nil, fmt.Errorf("mat: column %d outside [0,%d): %w", j, m.Cols(), ErrOutOfRange)
	}
	if s, isSlice := m.(*Slice); isSlice {
		return s.line(j, ColumnVector)
	}
	l, ok := m.lay()
	if !ok {
		if t, isT := m.(*Transpose); isT {
			// Column j of a transpose is row j of its parent.
			s, err := Row(t.parent, j)
			if err != nil {
				return nil, err
			}
			s.vtype = ColumnVector
			return s, nil
		}
		return NewSlice(m, j*m.Rows(), 1, m.Rows(), ColumnVector)
	}
	return rootSlice(m.root(), l.base+j*l.colStride, l.rowStride, m.Rows(), ColumnVector), nil
}

// line extracts logical row/column k of a slice viewed as a matrix: a
// single element across the short dimension, or a retagged copy along
// the long one.
func (s *Slice) line(k int, vt VectorType) (*Slice, error) {
	along := (vt == RowVector && s.vtype == RowVector) ||
		(vt == ColumnVector && s.vtype == ColumnVector)
	if along {
		dup := *s
		dup.vtype = vt
		return &dup, nil
	}
	return NewSlice(s, k, 1, 1, vt)
}

// rootSlice builds a slice over the root Dense with pre-validated
// metadata. The root's linearization is the identity, so offset and
// stride are already flat.
func rootSlice(d *Dense, offset, stride, length int, vt VectorType) *Slice {
	if stride == 0 {
		// Strides stay nonzero even for degenerate empty walks.
		stride = 1
	}
	return &Slice{
		parent:  d,
		offset:  offset,
		stride:  stride,
		length:  length,
		vtype:   vt,
		rtBase:  offset,
		rtStrid: stride,
		flat:    true,
	}
}

// Parent returns the matrix the slice walks (after collapse).
func (s *Slice) Parent() Matrix { return s.parent }

// Len returns the number of elements.
func (s *Slice) Len() int { return s.length }

// VType reports whether the slice is a row or a column vector.
func (s *Slice) VType() VectorType { return s.vtype }

// Offset returns the slice's offset into its parent's linearization.
func (s *Slice) Offset() int { return s.offset }

// Stride returns the slice's stride over its parent's linearization.
func (s *Slice) Stride() int { return s.stride }

// Rows returns the number of rows: Len() for a column vector, 1 for a
// row vector.
func (s *Slice) Rows() int {
	if s.vtype == ColumnVector {
		return s.length
	}
	return 1
}

// Cols returns the number of columns: Len() for a row vector, 1 for a
// column vector.
func (s *Slice) Cols() int {
	if s.vtype == RowVector {
		return s.length
	}
	return 1
}

// Kind returns the element kind of the root storage.
func (s *Slice) Kind() Kind { return s.parent.Kind() }

// Orientation follows the vector tag: column vectors are column-major,
// row vectors row-major.
func (s *Slice) Orientation() Orientation {
	if s.vtype == ColumnVector {
		return ColMajor
	}
	return RowMajor
}

// NumElements returns the total number of elements.
func (s *Slice) NumElements() int { return s.length }

func (s *Slice) root() *Dense { return s.parent.root() }

func (s *Slice) rootOffset(k int) int {
	if s.flat {
		return s.rtBase + k*s.rtStrid
	}
	linear := s.offset + k*s.stride
	r := s.parent.Rows()
	return s.parent.index(linear%r, linear/r)
}

func (s *Slice) index(i, j int) int {
	if s.vtype == ColumnVector {
		return s.rootOffset(i)
	}
	return s.rootOffset(j)
}

func (s *Slice) lay() (layout, bool) {
	if !s.flat {
		return layout{}, false
	}
	l := layout{base: s.rtBase, rowStride: s.rtStrid, colStride: s.rtStrid}
	if s.vtype == ColumnVector {
		// Single column; its stride only has to be nonzero.
		l.colStride = nonzero(s.length * abs(s.rtStrid))
	} else {
		l.rowStride = nonzero(s.length * abs(s.rtStrid))
	}
	return l, true
}

func (s *Slice) unitStrides() bool {
	return s.flat && s.rtStrid == 1
}

func nonzero(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
