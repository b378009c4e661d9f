package gridlines_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/chart-gridlines/internal/gridlines"
)

// wantSVG builds the expected rendering for path endpoints given as
// x0, y0, x1, y1 quadruples.
func wantSVG(points ...float64) string {
	var b strings.Builder
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\">\n")
	for i := 0; i+3 < len(points); i += 4 {
		fmt.Fprintf(&b, "<path d=\"M%v,%v L%v,%v\" opacity=\"1\" stroke=\"#BFEFF2\" stroke-width=\"1\" zIndex=\"1\"/>\n",
			points[i], points[i+1], points[i+2], points[i+3])
	}
	b.WriteString("</svg>")
	return b.String()
}

var (
	horizontal5 = wantSVG(
		120, 10, 1500, 10,
		120, 97.5, 1500, 97.5,
		120, 185, 1500, 185,
		120, 272.5, 1500, 272.5,
		120, 360, 1500, 360,
	)
	vertical5 = wantSVG(
		120, 10, 120, 360,
		465, 10, 465, 360,
		810, 10, 810, 360,
		1155, 10, 1155, 360,
		1500, 10, 1500, 360,
	)
)

func TestSegment_String(t *testing.T) {
	s := gridlines.HorizontalSegment(gridlines.Range(120, 1500), 97.5)
	assert.Equal(t, "M120,97.5 L1500,97.5", s.PathData())
	assert.Equal(t,
		`<path d="M120,97.5 L1500,97.5" opacity="1" stroke="#BFEFF2" stroke-width="1" zIndex="1"/>`,
		s.String())

	v := gridlines.VerticalSegment(gridlines.Range(10, 360), 465)
	assert.Equal(t, gridlines.Point{X: 465, Y: 10}, v.From)
	assert.Equal(t, gridlines.Point{X: 465, Y: 360}, v.To)
	assert.Equal(t, "M465,10 L465,360", v.PathData())
}

func TestGenerate_Horizontal(t *testing.T) {
	cfg := gridlines.Config{X: gridlines.Range(120, 1500), Y: gridlines.Range(10, 360), Lines: 5}
	doc, err := gridlines.Generate(gridlines.Horizontal, cfg)
	require.NoError(t, err)
	require.Equal(t, 5, doc.Len())

	wantY := []float64{10, 97.5, 185, 272.5, 360}
	for i, s := range doc.Segments() {
		assert.Equal(t, gridlines.Point{X: 120, Y: wantY[i]}, s.From)
		assert.Equal(t, gridlines.Point{X: 1500, Y: wantY[i]}, s.To)
	}
	assert.Equal(t, horizontal5, doc.String())
}

func TestGenerate_Vertical(t *testing.T) {
	cfg := gridlines.Config{X: gridlines.Range(120, 1500), Y: gridlines.Range(10, 360), Lines: 5}
	doc, err := gridlines.Generate(gridlines.Vertical, cfg)
	require.NoError(t, err)

	wantX := []float64{120, 465, 810, 1155, 1500}
	for i, s := range doc.Segments() {
		assert.Equal(t, gridlines.Point{X: wantX[i], Y: 10}, s.From)
		assert.Equal(t, gridlines.Point{X: wantX[i], Y: 360}, s.To)
	}
	assert.Equal(t, vertical5, doc.String())
}

func TestGenerator_Builder(t *testing.T) {
	g := gridlines.NewHorizontal().XRange(120, 1500).YRange(10, 360).Lines(3)
	assert.Equal(t, gridlines.Horizontal, g.Orientation())
	assert.Equal(t, 3, g.Config().Lines)

	doc, err := g.Generate()
	require.NoError(t, err)
	assert.Same(t, doc, g.Document())
	assert.Equal(t, wantSVG(
		120, 10, 1500, 10,
		120, 185, 1500, 185,
		120, 360, 1500, 360,
	), g.String())
}

func TestGenerator_Idempotent(t *testing.T) {
	g := gridlines.NewVertical().XRange(120, 1500).YRange(10, 360).Lines(5)
	first, err := g.Generate()
	require.NoError(t, err)
	second, err := g.Generate()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, vertical5, second.String())
}

func TestGenerator_InvalidLineCountKeepsDocument(t *testing.T) {
	g := gridlines.NewHorizontal().XRange(120, 1500).YRange(10, 360).Lines(5)
	prev, err := g.Generate()
	require.NoError(t, err)

	for _, n := range []int{0, 1, 2} {
		doc, err := g.Lines(n).Generate()
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, gridlines.ErrLineCountInvalid)
		assert.Same(t, prev, g.Document())
	}
}

func TestGenerator_Unconfigured(t *testing.T) {
	g := gridlines.NewVertical()
	assert.Equal(t, 0, g.Document().Len())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"/>`, g.String())

	_, err := g.Generate()
	assert.ErrorIs(t, err, gridlines.ErrLineCountInvalid)
}

func TestDocument_Bounds(t *testing.T) {
	_, _, ok := (&gridlines.Document{}).Bounds()
	assert.False(t, ok)

	doc, err := gridlines.Generate(gridlines.Horizontal,
		gridlines.Config{X: gridlines.Range(1500, 120), Y: gridlines.Range(10, 360), Lines: 3})
	require.NoError(t, err)

	min, max, ok := doc.Bounds()
	require.True(t, ok)
	assert.Equal(t, gridlines.Point{X: 120, Y: 10}, min)
	assert.Equal(t, gridlines.Point{X: 1500, Y: 360}, max)

	w, h := doc.Canvas()
	assert.Equal(t, 1501, w)
	assert.Equal(t, 361, h)
}

func TestDocument_SegmentsIsCopy(t *testing.T) {
	doc := gridlines.NewDocument(gridlines.HorizontalSegment(gridlines.Range(0, 10), 5))
	segs := doc.Segments()
	segs[0].From.X = 99
	assert.Equal(t, 0.0, doc.Segments()[0].From.X)
}

func TestDocument_WriteTo(t *testing.T) {
	doc, err := gridlines.NewHorizontal().XRange(120, 1500).YRange(10, 360).Lines(5).Generate()
	require.NoError(t, err)

	var b strings.Builder
	n, err := doc.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(len(horizontal5)), n)
	assert.Equal(t, horizontal5, b.String())
}

func TestDocument_WriteStandalone(t *testing.T) {
	doc, err := gridlines.NewVertical().XRange(120, 1500).YRange(10, 360).Lines(5).Generate()
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, doc.WriteStandalone(&b, 0, 0))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="1501"`)
	assert.Contains(t, out, `height="361"`)
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
	for _, s := range doc.Segments() {
		assert.Contains(t, out, `<path d="`+s.PathData()+`"`)
	}
	assert.Equal(t, 5, strings.Count(out, `stroke="#BFEFF2"`))
	assert.Contains(t, out, "</svg>")
}

func TestDocument_WriteStandaloneEmpty(t *testing.T) {
	var b strings.Builder
	assert.Error(t, (&gridlines.Document{}).WriteStandalone(&b, 0, 0))
}
