package mat

import (
	"errors"
	"testing"
)

func TestNewDenseAllKinds(t *testing.T) {
	kinds := []struct {
		kind        Kind
		elementSize int
	}{
		{Float32, 4},
		{Float64, 8},
		{Complex64, 8},
		{Complex128, 16},
	}

	for _, tt := range kinds {
		d, err := NewDense(2, 3, tt.kind)
		if err != nil {
			t.Fatalf("NewDense(2, 3, %v) failed: %v", tt.kind, err)
		}
		if d.Kind() != tt.kind {
			t.Errorf("Kind = %v, want %v", d.Kind(), tt.kind)
		}
		if got, want := len(d.Storage().Bytes()), 6*tt.elementSize; got != want {
			t.Errorf("byte size = %d, want %d for kind %v", got, want, tt.kind)
		}
		if d.NumElements() != 6 {
			t.Errorf("NumElements = %d, want 6", d.NumElements())
		}
	}
}

func TestNewDenseInvalid(t *testing.T) {
	if _, err := NewDense(-1, 2, Float64); !errors.Is(err, ErrBadShape) {
		t.Errorf("NewDense(-1, 2) error = %v, want ErrBadShape", err)
	}
	if _, err := NewDense(2, -1, Float64); !errors.Is(err, ErrBadShape) {
		t.Errorf("NewDense(2, -1) error = %v, want ErrBadShape", err)
	}
	if _, err := NewDense(2, 2, Kind(99)); !errors.Is(err, ErrBadKind) {
		t.Errorf("NewDense with kind 99 error = %v, want ErrBadKind", err)
	}
}

func TestNewDenseZeroSize(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 1}, {1, 0}} {
		d, err := NewDense(shape[0], shape[1], Float64)
		if err != nil {
			t.Fatalf("NewDense(%d, %d) failed: %v", shape[0], shape[1], err)
		}
		if d.NumElements() != 0 {
			t.Errorf("NumElements = %d, want 0", d.NumElements())
		}
		if _, err := At[float64](d, 0, 0); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At on %dx%d error = %v, want ErrOutOfRange", shape[0], shape[1], err)
		}
	}
}

func TestFromSliceColumnMajor(t *testing.T) {
	// Column-major data for [[1 3] [2 4]].
	d, err := FromSlice(2, 2, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	want := [2][2]float64{{1, 3}, {2, 4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := At[float64](d, i, j)
			if err != nil {
				t.Fatal(err)
			}
			if v != want[i][j] {
				t.Errorf("At(%d,%d) = %g, want %g", i, j, v, want[i][j])
			}
		}
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice(2, 2, []float64{1, 2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("FromSlice error = %v, want ErrShapeMismatch", err)
	}
}

func TestFromRows(t *testing.T) {
	d, err := FromRows([][]float64{
		{1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Rows() != 2 || d.Cols() != 5 {
		t.Fatalf("shape = %dx%d, want 2x5", d.Rows(), d.Cols())
	}
	if v, _ := At[float64](d, 1, 3); v != 9 {
		t.Errorf("At(1,3) = %g, want 9", v)
	}
	// Storage must be column-major.
	if got := d.Storage().Float64s()[1]; got != 6 {
		t.Errorf("storage[1] = %g, want 6", got)
	}
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("FromRows ragged error = %v, want ErrShapeMismatch", err)
	}
}

func TestFromValues(t *testing.T) {
	d, err := FromValues(2, 2, Float64, []any{1.0, 2.0, 3.0, 4.0})
	if err != nil {
		t.Fatal(err)
	}
	// Values are row-major.
	if v, _ := At[float64](d, 0, 1); v != 2 {
		t.Errorf("At(0,1) = %g, want 2", v)
	}
	if v, _ := At[float64](d, 1, 0); v != 3 {
		t.Errorf("At(1,0) = %g, want 3", v)
	}
}

func TestFromValuesKindRejection(t *testing.T) {
	// A non-float64 value in a declared-float64 matrix fails at
	// construction, not at first access.
	cases := []any{float32(3), 3, complex(1.0, 2.0), "3"}
	for _, bad := range cases {
		_, err := FromValues(2, 2, Float64, []any{1.0, 2.0, 3.0, bad})
		if !errors.Is(err, ErrKindMismatch) {
			t.Errorf("FromValues with %T error = %v, want ErrKindMismatch", bad, err)
		}
	}
}

func TestNewDenseBytes(t *testing.T) {
	buf := make([]byte, 4*8)
	d, err := NewDenseBytes(2, 2, Float64, buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Set(d, 1, 1, 7.0); err != nil {
		t.Fatal(err)
	}
	// The matrix aliases the caller's buffer, no copy.
	if buf[3*8] == 0 && buf[3*8+7] == 0 {
		t.Error("write did not reach the backing buffer")
	}

	if _, err := NewDenseBytes(2, 2, Float64, make([]byte, 7)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("NewDenseBytes short buffer error = %v, want ErrShapeMismatch", err)
	}
}

func TestStorageTypedAccessors(t *testing.T) {
	d, _ := NewDense(3, 2, Complex64)
	data := d.Storage().Complex64s()
	if len(data) != 6 {
		t.Fatalf("Complex64s length = %d, want 6", len(data))
	}
	data[0] = complex(1, -1)
	if got := d.Storage().Complex64s()[0]; got != complex(1, -1) {
		t.Error("Complex64s should return a zero-copy slice")
	}
}

func TestStorageWrongKindPanics(t *testing.T) {
	d, _ := NewDense(2, 2, Float32)
	defer func() {
		if recover() == nil {
			t.Error("Float64s on Float32 storage should panic")
		}
	}()
	_ = d.Storage().Float64s()
}
