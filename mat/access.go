package mat

import "fmt"

// At returns the element at (i, j). Both indices are bounds-checked and
// T must match the matrix kind. This is the documented slow path: bulk
// operations should work on the collapsed layout (BaseOffset,
// LeadingDimension, typed storage slices) instead of calling At in a
// loop.
func At[T Elem](m Matrix, i, j int) (T, error) {
	var zero T
	if err := checkIndex(m, i, j); err != nil {
		return zero, err
	}
	if err := checkKind[T](m); err != nil {
		return zero, err
	}
	return typed[T](m.root().stor)[m.index(i, j)], nil
}

// Set writes the element at (i, j). The write is immediately visible
// through every other view aliasing the same storage.
func Set[T Elem](m Matrix, i, j int, v T) error {
	if err := checkIndex(m, i, j); err != nil {
		return err
	}
	if err := checkKind[T](m); err != nil {
		return err
	}
	typed[T](m.root().stor)[m.index(i, j)] = v
	return nil
}

// ValueAt returns the element at (i, j) widened to complex128,
// whatever the matrix kind. Real kinds have a zero imaginary part.
func ValueAt(m Matrix, i, j int) (complex128, error) {
	if err := checkIndex(m, i, j); err != nil {
		return 0, err
	}
	return m.root().stor.value(m.index(i, j)), nil
}

// SetValueAt writes the element at (i, j), narrowing v to the matrix
// kind. For real kinds the imaginary part is discarded.
func SetValueAt(m Matrix, i, j int, v complex128) error {
	if err := checkIndex(m, i, j); err != nil {
		return err
	}
	m.root().stor.setValue(m.index(i, j), v)
	return nil
}

func checkIndex(m Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return fmt.Errorf("mat: index (%d,%d) outside %dx%d: %w",
			i, j, m.Rows(), m.Cols(), ErrOutOfRange)
	}
	return nil
}

func checkKind[T Elem](m Matrix) error {
	if k := KindOf[T](); k != m.Kind() {
		return fmt.Errorf("mat: element type %s, matrix kind %s: %w",
			k, m.Kind(), ErrKindMismatch)
	}
	return nil
}
