package mat

import "fmt"

// Axes for Bind.
const (
	AlongRows = 0 // stack vertically: column counts must agree
	AlongCols = 1 // stack horizontally: row counts must agree
)

// Bind concatenates a and b along the given axis into a fresh Dense
// matrix. Both operands must share the element kind; the dimension
// orthogonal to the axis must agree.
func Bind(a, b Matrix, along int) (*Dense, error) {
	if a.Kind() != b.Kind() {
		return nil, fmt.Errorf("mat: bind %s with %s: %w", a.Kind(), b.Kind(), ErrKindMismatch)
	}
	var rows, cols int
	switch along {
	case AlongRows:
		if a.Cols() != b.Cols() {
			return nil, fmt.Errorf("mat: bind %d and %d columns: %w", a.Cols(), b.Cols(), ErrShapeMismatch)
		}
		rows, cols = a.Rows()+b.Rows(), a.Cols()
	case AlongCols:
		if a.Rows() != b.Rows() {
			return nil, fmt.Errorf("mat: bind %d and %d rows: %w", a.Rows(), b.Rows(), ErrShapeMismatch)
		}
		rows, cols = a.Rows(), a.Cols()+b.Cols()
	default:
		return nil, fmt.Errorf("mat: bind axis %d not in {0,1}: %w", along, ErrOutOfRange)
	}

	d, err := NewDense(rows, cols, a.Kind())
	if err != nil {
		return nil, err
	}
	blit(d, a, 0, 0)
	if along == AlongRows {
		blit(d, b, a.Rows(), 0)
	} else {
		blit(d, b, 0, a.Cols())
	}
	return d, nil
}

func blit(dst *Dense, src Matrix, rowOff, colOff int) {
	ss := src.root().stor
	for j := 0; j < src.Cols(); j++ {
		for i := 0; i < src.Rows(); i++ {
			dst.stor.setValue(dst.l.index(i+rowOff, j+colOff), ss.value(src.index(i, j)))
		}
	}
}
