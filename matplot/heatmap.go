package matplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matview-go/matview/mat"
)

// Heatmap renders m as a heat map and saves it to path; the format
// follows the file extension (.png, .svg, .pdf, ...).
func Heatmap(m mat.Matrix, title, path string) error {
	if m.NumElements() == 0 {
		return fmt.Errorf("matplot: empty %dx%d matrix: %w", m.Rows(), m.Cols(), mat.ErrBadShape)
	}

	h := plotter.NewHeatMap(NewGrid(m), palette.Heat(12, 1))

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.Add(h)

	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("matplot: save %s: %w", path, err)
	}
	return nil
}
