package mat

import "unsafe"

// This file is the contract a BLAS/LAPACK-style binding consumes: the
// five O(1) layout queries (base pointer, leading dimension,
// orientation, zero offset, unit strides) plus the materializing copy
// it falls back to when a view cannot be passed to a native routine
// directly. Orientation itself is a Matrix method.

// BaseOffset returns the element offset of the view's (0,0) element in
// the root storage; 0 for empty views with no collapsed layout.
func BaseOffset(m Matrix) int {
	if l, ok := m.lay(); ok {
		return l.base
	}
	if m.NumElements() == 0 {
		return 0
	}
	return m.index(0, 0)
}

// ZeroOffset reports whether the fully collapsed base offset is 0: the
// view starts exactly at the beginning of the root storage.
func ZeroOffset(m Matrix) bool {
	return BaseOffset(m) == 0
}

// UnitStrides reports whether every stride along the view chain is 1,
// i.e. the view is indexable as plain contiguous column-major storage.
// A BLAS layer uses this to decide between passing the buffer straight
// through, calling an explicit-stride variant, or copying.
func UnitStrides(m Matrix) bool {
	return m.unitStrides()
}

// LeadingDimension returns the stride, in elements, between successive
// columns of a column-oriented view (rows of a row-oriented one), the
// quantity a BLAS call needs alongside the base pointer. ok is false
// when the view has no collapsed affine layout.
func LeadingDimension(m Matrix) (ld int, ok bool) {
	l, ok := m.lay()
	if !ok {
		return 0, false
	}
	if m.Orientation() == ColMajor {
		return l.colStride, true
	}
	return l.rowStride, true
}

// BasePointer returns a pointer to the view's (0,0) element in the
// root storage, or nil for empty storage.
// WARNING: the pointer aliases mutable shared memory.
func BasePointer(m Matrix) unsafe.Pointer {
	stor := m.root().stor
	if len(stor.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&stor.data[BaseOffset(m)*stor.kind.Size()])
}

// Materialize copies m into a fresh contiguous column-major Dense
// matrix of the same shape and kind. It is the explicit-copy fallback
// for views that fail UnitStrides.
func Materialize(m Matrix) *Dense {
	d := newDense(m.Rows(), m.Cols(), newStorage(m.NumElements(), m.Kind()))
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			d.stor.setValue(d.l.index(i, j), m.root().stor.value(m.index(i, j)))
		}
	}
	return d
}
