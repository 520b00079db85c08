package dashboard

import (
	"fmt"
	"math"
	"strings"

	"movie-dashboard/models"
)

const (
	chartWidth   = 640
	chartHeight  = 260
	chartPadding = 40
	pieRadius    = 110
)

var pieColors = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// LineChart is an SVG polyline of y over x, with y scaled to the 0–10 rating range.
type LineChart struct {
	Width, Height int
	Points        string
	MinX, MaxX    string
	Empty         bool
}

// NewLineChart plots the xCol/yCol pairs of t in row order. Rows with a
// non-numeric cell are skipped.
func NewLineChart(t *models.Table, xCol, yCol string) LineChart {
	c := LineChart{Width: chartWidth, Height: chartHeight}

	var xs, ys []float64
	for i := 0; i < t.Len(); i++ {
		x, okX := t.Float(i, xCol)
		y, okY := t.Float(i, yCol)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	if len(xs) == 0 {
		c.Empty = true
		return c
	}

	minX, maxX := xs[0], xs[0]
	for _, x := range xs {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	c.MinX = fmt.Sprintf("%.0f", minX)
	c.MaxX = fmt.Sprintf("%.0f", maxX)

	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	pts := make([]string, len(xs))
	for i := range xs {
		px := float64(chartPadding) + plotW/2
		if maxX > minX {
			px = float64(chartPadding) + (xs[i]-minX)/(maxX-minX)*plotW
		}
		y := math.Max(0, math.Min(10, ys[i]))
		py := float64(chartHeight-chartPadding) - y/10*plotH
		pts[i] = fmt.Sprintf("%.1f,%.1f", px, py)
	}
	c.Points = strings.Join(pts, " ")
	return c
}

// PieSlice is one wedge of a PieChart.
type PieSlice struct {
	Label   string
	Count   float64
	Percent float64
	Path    string
	Color   string
}

// PieChart is an SVG pie of counts per label.
type PieChart struct {
	Size   int
	CX, CY int
	Radius int
	Slices []PieSlice
	// Full is set when a single slice covers the whole pie and is drawn as a circle.
	Full  bool
	Empty bool
}

// NewPieChart builds wedges for the labelCol/countCol pairs of t.
func NewPieChart(t *models.Table, labelCol, countCol string) PieChart {
	size := 2*pieRadius + 20
	c := PieChart{Size: size, CX: size / 2, CY: size / 2, Radius: pieRadius}

	var total float64
	for i := 0; i < t.Len(); i++ {
		n, ok := t.Float(i, countCol)
		if !ok || n <= 0 {
			continue
		}
		total += n
		c.Slices = append(c.Slices, PieSlice{
			Label: models.FormatValue(t.Value(i, labelCol)),
			Count: n,
			Color: pieColors[len(c.Slices)%len(pieColors)],
		})
	}
	if total == 0 {
		c.Empty = true
		return c
	}
	if len(c.Slices) == 1 {
		c.Full = true
		c.Slices[0].Percent = 100
		return c
	}

	angle := -math.Pi / 2
	for i := range c.Slices {
		frac := c.Slices[i].Count / total
		c.Slices[i].Percent = math.Round(frac*1000) / 10
		end := angle + frac*2*math.Pi
		c.Slices[i].Path = wedgePath(float64(c.CX), float64(c.CY), float64(c.Radius), angle, end)
		angle = end
	}
	return c
}

func wedgePath(cx, cy, r, from, to float64) string {
	x1, y1 := cx+r*math.Cos(from), cy+r*math.Sin(from)
	x2, y2 := cx+r*math.Cos(to), cy+r*math.Sin(to)
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.1f %.1f L %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f Z",
		cx, cy, x1, y1, r, r, large, x2, y2)
}
