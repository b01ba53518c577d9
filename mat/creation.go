package mat

import (
	"math"
	"math/rand"
)

// Zeros creates a matrix filled with zeros.
//
// Example:
//
//	m, err := mat.Zeros[float64](3, 4)
func Zeros[T Elem](rows, cols int) (*Dense, error) {
	return NewDense(rows, cols, KindOf[T]())
}

// Ones creates a matrix filled with ones.
func Ones[T Elem](rows, cols int) (*Dense, error) {
	return Full(rows, cols, T(1))
}

// Full creates a matrix filled with a specific value.
func Full[T Elem](rows, cols int, v T) (*Dense, error) {
	d, err := Zeros[T](rows, cols)
	if err != nil {
		return nil, err
	}
	data := typed[T](d.stor)
	for i := range data {
		data[i] = v
	}
	return d, nil
}

// Eye creates an n x n identity matrix.
func Eye[T Elem](n int) (*Dense, error) {
	d, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	data := typed[T](d.stor)
	for i := 0; i < n; i++ {
		data[i+n*i] = T(1)
	}
	return d, nil
}

// Rand creates a matrix with values uniformly distributed in [0, 1).
// Complex kinds get independent real and imaginary parts.
// Note: uses math/rand, appropriate for numerical work, not secrets.
func Rand[T Elem](rows, cols int) (*Dense, error) {
	d, err := Zeros[T](rows, cols)
	if err != nil {
		return nil, err
	}
	fill(d, rand.Float64) //nolint:gosec // G404: reproducible numeric data, not crypto
	return d, nil
}

// Randn creates a matrix with values from a standard normal
// distribution, via the Box-Muller transform. Complex kinds get
// independent real and imaginary parts.
func Randn[T Elem](rows, cols int) (*Dense, error) {
	d, err := Zeros[T](rows, cols)
	if err != nil {
		return nil, err
	}
	var spare float64
	var haveSpare bool
	fill(d, func() float64 {
		if haveSpare {
			haveSpare = false
			return spare
		}
		u1 := rand.Float64() //nolint:gosec // G404: reproducible numeric data, not crypto
		u2 := rand.Float64() //nolint:gosec // G404: reproducible numeric data, not crypto
		r := math.Sqrt(-2.0 * math.Log(1-u1))
		spare = r * math.Sin(2.0*math.Pi*u2)
		haveSpare = true
		return r * math.Cos(2.0*math.Pi*u2)
	})
	return d, nil
}

// fill populates every element of d from a float64 source, kind by
// kind so the typed fast path is used.
func fill(d *Dense, next func() float64) {
	switch d.stor.kind {
	case Float32:
		data := typed[float32](d.stor)
		for i := range data {
			data[i] = float32(next())
		}
	case Float64:
		data := typed[float64](d.stor)
		for i := range data {
			data[i] = next()
		}
	case Complex64:
		data := typed[complex64](d.stor)
		for i := range data {
			data[i] = complex(float32(next()), float32(next()))
		}
	case Complex128:
		data := typed[complex128](d.stor)
		for i := range data {
			data[i] = complex(next(), next())
		}
	}
}
