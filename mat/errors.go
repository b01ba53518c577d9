// Package mat: sentinel error set.
// All constructors and accessors return these sentinels, possibly wrapped
// with fmt.Errorf("ctx: %w", ...); callers match them via errors.Is.
// Panics are reserved for programmer errors (typed reinterpretation of
// storage whose kind was not checked first).

package mat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or columns, or contents that do not fit it).
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrBadKind is returned when an unrecognized element kind is supplied.
	ErrBadKind = errors.New("mat: unknown element kind")

	// ErrOutOfRange indicates that a row, column, vector, or dimension
	// index is outside its valid bounds. Accessors return this rather
	// than silently aliasing out-of-view memory.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrZeroStride is returned when a zero stride is supplied to a
	// strided view or vector slice constructor.
	ErrZeroStride = errors.New("mat: stride must be nonzero")

	// ErrBadOrientation indicates an unrecognized orientation or
	// vector-type tag.
	ErrBadOrientation = errors.New("mat: invalid orientation")

	// ErrShapeMismatch indicates incompatible dimensions between
	// operands of an operation that requires agreement (e.g. Bind).
	// Equality checks return false instead of this error.
	ErrShapeMismatch = errors.New("mat: dimension mismatch")

	// ErrKindMismatch indicates that an element type or value does not
	// match the declared kind of the matrix it is used with.
	ErrKindMismatch = errors.New("mat: element kind mismatch")
)
