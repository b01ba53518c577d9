package mat

// Equal reports whether a and b have the same shape and equal elements.
// Shape mismatch is an answer (false), not an error. Elements are
// compared as values, so views of different kinds holding the same
// numbers compare equal.
func Equal(a, b Matrix) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	as, bs := a.root().stor, b.root().stor
	for j := 0; j < a.Cols(); j++ {
		for i := 0; i < a.Rows(); i++ {
			if as.value(a.index(i, j)) != bs.value(b.index(i, j)) {
				return false
			}
		}
	}
	return true
}

// VectorEqual reports whether a and b have the same length and equal
// elements. The row/column tag is ignored: a row vector and a column
// vector holding the same values are vector-equal. Callers that care
// about orientation use Equal instead.
func VectorEqual(a, b Vector) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, bs := a.root().stor, b.root().stor
	for k := 0; k < a.Len(); k++ {
		if as.value(a.rootOffset(k)) != bs.value(b.rootOffset(k)) {
			return false
		}
	}
	return true
}
