package mat

import (
	"fmt"
	"unsafe"
)

// Storage owns one contiguous column-major buffer of a fixed element
// kind. Exactly one Storage backs one Dense matrix; views never own
// storage, they hold a reference to an ancestor matrix, and the chain
// terminates at exactly one Dense. Go's garbage collector keeps the
// root alive as long as any view references it.
type Storage struct {
	data []byte
	n    int
	kind Kind
}

func newStorage(n int, k Kind) *Storage {
	return &Storage{
		data: make([]byte, n*k.Size()),
		n:    n,
		kind: k,
	}
}

// storageFromBytes wraps an externally owned buffer (e.g. a memory
// mapping) without copying. len(buf) must equal n*k.Size().
func storageFromBytes(n int, k Kind, buf []byte) *Storage {
	return &Storage{data: buf, n: n, kind: k}
}

// Len returns the element count of the buffer.
func (s *Storage) Len() int {
	return s.n
}

// Kind returns the element kind of the buffer.
func (s *Storage) Kind() Kind {
	return s.kind
}

// Bytes returns the raw byte buffer.
// WARNING: direct access to underlying memory. Use with caution.
func (s *Storage) Bytes() []byte {
	return s.data
}

// typed reinterprets the buffer as []T without copying. The caller must
// have verified KindOf[T]() == s.Kind() first.
func typed[T Elem](s *Storage) []T {
	if s.n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by element count
	return unsafe.Slice((*T)(unsafe.Pointer(&s.data[0])), s.n)
}

// Float32s interprets the buffer as []float32.
// Panics if the storage kind is not Float32.
func (s *Storage) Float32s() []float32 {
	s.mustBe(Float32)
	return typed[float32](s)
}

// Float64s interprets the buffer as []float64.
// Panics if the storage kind is not Float64.
func (s *Storage) Float64s() []float64 {
	s.mustBe(Float64)
	return typed[float64](s)
}

// Complex64s interprets the buffer as []complex64.
// Panics if the storage kind is not Complex64.
func (s *Storage) Complex64s() []complex64 {
	s.mustBe(Complex64)
	return typed[complex64](s)
}

// Complex128s interprets the buffer as []complex128.
// Panics if the storage kind is not Complex128.
func (s *Storage) Complex128s() []complex128 {
	s.mustBe(Complex128)
	return typed[complex128](s)
}

func (s *Storage) mustBe(k Kind) {
	if s.kind != k {
		panic(fmt.Sprintf("mat: storage kind is %s, not %s", s.kind, k))
	}
}

// value reads the element at a flat offset as complex128, whatever the
// kind. This is the slow path shared by equality, printing, binding and
// materialization; bulk operations go through the typed slices instead.
func (s *Storage) value(off int) complex128 {
	switch s.kind {
	case Float32:
		return complex(float64(typed[float32](s)[off]), 0)
	case Float64:
		return complex(typed[float64](s)[off], 0)
	case Complex64:
		return complex128(typed[complex64](s)[off])
	case Complex128:
		return typed[complex128](s)[off]
	default:
		panic("mat: unknown element kind")
	}
}

// setValue writes the element at a flat offset, narrowing v to the
// storage kind. For real kinds the imaginary part is discarded.
func (s *Storage) setValue(off int, v complex128) {
	switch s.kind {
	case Float32:
		typed[float32](s)[off] = float32(real(v))
	case Float64:
		typed[float64](s)[off] = real(v)
	case Complex64:
		typed[complex64](s)[off] = complex64(v)
	case Complex128:
		typed[complex128](s)[off] = v
	default:
		panic("mat: unknown element kind")
	}
}
