package mat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenAt(t *testing.T) {
	d, err := NewDense(3, 4, Float64)
	require.NoError(t, err)

	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			v := float64(10*i + j)
			require.NoError(t, Set(d, i, j, v))
			got, err := At[float64](d, i, j)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	d, err := NewDense(2, 5, Float64)
	require.NoError(t, err)

	_, err = At[float64](d, 2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = At[float64](d, 0, 5)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = At[float64](d, -1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = At[float64](d, 1, 4)
	assert.NoError(t, err)

	assert.ErrorIs(t, Set(d, 2, 0, 1.0), ErrOutOfRange)
}

func TestAtKindMismatch(t *testing.T) {
	d, err := NewDense(2, 2, Float64)
	require.NoError(t, err)

	_, err = At[float32](d, 0, 0)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.ErrorIs(t, Set(d, 0, 0, complex64(1)), ErrKindMismatch)
}

func TestValueAt(t *testing.T) {
	d, err := NewDense(2, 2, Complex128)
	require.NoError(t, err)

	require.NoError(t, SetValueAt(d, 0, 1, complex(3, 4)))
	v, err := ValueAt(d, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(3.0, 4.0), v)

	_, err = ValueAt(d, 2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSetValueAtNarrowsRealKinds(t *testing.T) {
	d, err := NewDense(1, 1, Float32)
	require.NoError(t, err)
	require.NoError(t, SetValueAt(d, 0, 0, complex(2.5, 9)))

	got, err := At[float32](d, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), got)
}

func TestDim(t *testing.T) {
	d, err := NewDense(2, 5, Float64)
	require.NoError(t, err)

	r, err := Dim(d, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	c, err := Dim(d, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, c)

	_, err = Dim(d, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Dim(d, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestKindOf(t *testing.T) {
	if KindOf[float32]() != Float32 || KindOf[float64]() != Float64 ||
		KindOf[complex64]() != Complex64 || KindOf[complex128]() != Complex128 {
		t.Error("KindOf mapping is wrong")
	}
	if !errors.Is(Set(&Dense{}, 0, 0, 1.0), ErrOutOfRange) {
		t.Error("Set on zero Dense should be out of range")
	}
}
