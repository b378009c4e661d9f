package gridlines

import (
	"io"
	"math"
	"strings"
)

// SVGNamespace is the namespace declared on the document root.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Document is an ordered collection of gridline segments.
//
// The zero value is an empty document ready to use.
type Document struct {
	segments []Segment
}

// NewDocument returns a document holding segs in order.
func NewDocument(segs ...Segment) *Document {
	d := &Document{}
	for _, s := range segs {
		d.Add(s)
	}
	return d
}

// Add appends a segment.
func (d *Document) Add(s Segment) {
	d.segments = append(d.segments, s)
}

// Append appends every segment of other, in order.
func (d *Document) Append(other *Document) {
	if other == nil {
		return
	}
	d.segments = append(d.segments, other.segments...)
}

// Len returns the number of segments.
func (d *Document) Len() int {
	return len(d.segments)
}

// Segments returns a copy of the segments in generation order.
func (d *Document) Segments() []Segment {
	out := make([]Segment, len(d.segments))
	copy(out, d.segments)
	return out
}

// String renders the document: the svg root on its own line, one path
// element per line, then the closing tag. An empty document renders as a
// self-closing root.
func (d *Document) String() string {
	open := `<svg xmlns="` + SVGNamespace + `"`
	if len(d.segments) == 0 {
		return open + "/>"
	}

	var b strings.Builder
	b.WriteString(open)
	b.WriteString(">\n")
	for _, s := range d.segments {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}

// WriteTo writes the rendering of d to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// Bounds returns the smallest and largest corners covering every segment.
// ok is false for an empty document.
func (d *Document) Bounds() (min, max Point, ok bool) {
	if len(d.segments) == 0 {
		return Point{}, Point{}, false
	}
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range d.segments {
		for _, p := range [2]Point{s.From, s.To} {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max, true
}

// Canvas returns the pixel size needed to show every segment when the
// origin is the top-left corner. Segments with negative coordinates are
// clipped.
func (d *Document) Canvas() (width, height int) {
	_, max, ok := d.Bounds()
	if !ok {
		return 0, 0
	}
	// +1 so a line sitting exactly on the far edge still lands on a pixel.
	return int(math.Max(0, math.Ceil(max.X))) + 1, int(math.Max(0, math.Ceil(max.Y))) + 1
}
