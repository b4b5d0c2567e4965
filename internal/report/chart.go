package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/crimson-sun/logwarden/internal/model"
)

// Renderer writes summary charts as PNG files into a directory.
type Renderer struct {
	dir string
}

// NewRenderer creates a Renderer targeting dir, creating it if needed.
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("report: create chart dir %s: %w", dir, err)
	}
	return &Renderer{dir: dir}, nil
}

// Render writes the category-distribution bar chart and the critical-event
// timeline, returning the paths written. Empty summaries render empty
// charts rather than failing.
func (r *Renderer) Render(s Summary) ([]string, error) {
	var paths []string

	p, err := r.renderDistribution(s)
	if err != nil {
		return paths, err
	}
	paths = append(paths, p)

	p, err = r.renderTimeline(s)
	if err != nil {
		return paths, err
	}
	paths = append(paths, p)
	return paths, nil
}

// renderDistribution draws event counts per category.
func (r *Renderer) renderDistribution(s Summary) (string, error) {
	p := plot.New()
	p.Title.Text = "Event Distribution by Category"
	p.Y.Label.Text = "Events"
	p.Y.Min = 0

	categories := model.Categories()
	values := make(plotter.Values, len(categories))
	names := make([]string, len(categories))
	for i, c := range categories {
		values[i] = float64(s.ByCategory[c])
		names[i] = string(c)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return "", fmt.Errorf("report: distribution chart: %w", err)
	}
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(names...)

	path := filepath.Join(r.dir, "category_distribution.png")
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("report: save %s: %w", path, err)
	}
	return path, nil
}

// renderTimeline draws critical-event counts per hour bucket. With no
// critical events the chart is an empty frame.
func (r *Renderer) renderTimeline(s Summary) (string, error) {
	p := plot.New()
	p.Title.Text = "Critical Events Over Time"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Critical events"
	p.Y.Min = 0
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04"}

	pts := make(plotter.XYs, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		if n := b.Counts[model.CategoryCritical]; n > 0 {
			pts = append(pts, plotter.XY{X: float64(b.Start.Unix()), Y: float64(n)})
		}
	}
	if len(pts) > 0 {
		if err := plotutil.AddLinePoints(p, "Critical", pts); err != nil {
			return "", fmt.Errorf("report: timeline chart: %w", err)
		}
	}

	path := filepath.Join(r.dir, "critical_timeline.png")
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("report: save %s: %w", path, err)
	}
	return path, nil
}
