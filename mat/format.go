package mat

import (
	"fmt"
	"strings"
)

// Sprint renders m row by row for debugging. Real kinds print as %g;
// complex kinds as Go complex literals.
func Sprint(m Matrix) string {
	var sb strings.Builder
	isReal := m.Kind() == Float32 || m.Kind() == Float64
	stor := m.root().stor
	for i := 0; i < m.Rows(); i++ {
		sb.WriteByte('[')
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v := stor.value(m.index(i, j))
			if isReal {
				fmt.Fprintf(&sb, "%g", real(v))
			} else {
				fmt.Fprintf(&sb, "%g", v)
			}
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense[%s] %dx%d\n%s", d.Kind(), d.rows, d.cols, Sprint(d))
}

// String implements fmt.Stringer.
func (s *Slice) String() string {
	return fmt.Sprintf("Slice[%s] %s len=%d stride=%d\n%s",
		s.Kind(), s.vtype, s.length, s.stride, Sprint(s))
}
