package mat

// Elem is a constraint for supported matrix element types.
// It uses Go generics to ensure compile-time type safety.
type Elem interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Kind represents runtime element-kind information for matrices.
type Kind int

// Supported element kinds. Storage at the root is always one of these;
// every view reports the kind of the Dense matrix it ultimately aliases.
const (
	Float32 Kind = iota
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of one element of the kind.
func (k Kind) Size() int {
	switch k {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("mat: unknown element kind")
	}
}

// String returns a human-readable name for the element kind.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the supported element kinds.
func (k Kind) Valid() bool {
	return k >= Float32 && k <= Complex128
}

// KindOf returns the runtime Kind corresponding to the element type T.
func KindOf[T Elem]() Kind {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("mat: unsupported element type")
	}
}
