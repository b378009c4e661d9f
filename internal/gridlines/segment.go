package gridlines

import (
	"strconv"
	"strings"
)

// Fixed visual attributes of every gridline.
const (
	StrokeColor = "#BFEFF2"
	StrokeWidth = 1
	Opacity     = 1
	ZIndex      = 1
)

// Point is a position in chart space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is one straight gridline from From to To.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// HorizontalSegment spans the x range at height y.
func HorizontalSegment(x AxisRange, y float64) Segment {
	return Segment{
		From: Point{X: x.Start, Y: y},
		To:   Point{X: x.End, Y: y},
	}
}

// VerticalSegment spans the y range at position x.
func VerticalSegment(y AxisRange, x float64) Segment {
	return Segment{
		From: Point{X: x, Y: y.Start},
		To:   Point{X: x, Y: y.End},
	}
}

// segmentAt builds the segment for one coordinate of the varying axis.
func segmentAt(o Orientation, fixed AxisRange, at float64) Segment {
	if o == Vertical {
		return VerticalSegment(fixed, at)
	}
	return HorizontalSegment(fixed, at)
}

// PathData renders the SVG path data, e.g. "M120,10 L1500,10".
func (s Segment) PathData() string {
	var b strings.Builder
	b.WriteByte('M')
	b.WriteString(formatFloat(s.From.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(s.From.Y))
	b.WriteString(" L")
	b.WriteString(formatFloat(s.To.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(s.To.Y))
	return b.String()
}

// attributes lists the fixed presentation attributes in document order.
func attributes() []string {
	return []string{
		`opacity="` + strconv.Itoa(Opacity) + `"`,
		`stroke="` + StrokeColor + `"`,
		`stroke-width="` + strconv.Itoa(StrokeWidth) + `"`,
		`zIndex="` + strconv.Itoa(ZIndex) + `"`,
	}
}

// String renders the segment as a single SVG path element.
func (s Segment) String() string {
	return `<path d="` + s.PathData() + `" ` + strings.Join(attributes(), " ") + `/>`
}

// formatFloat uses the shortest representation that round-trips: 120, 97.5.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
