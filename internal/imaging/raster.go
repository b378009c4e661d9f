package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/chart-gridlines/internal/gridlines"
)

// MaxPreviewSide caps preview dimensions to keep memory bounded.
const MaxPreviewSide = 8192

// PreviewResult contains a rendered gridline preview
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	LineCount   int    `json:"line_count"`
}

// Rasterize draws doc on a width x height canvas filled with background.
//
// Chart coordinates map 1:1 to pixels with the origin at the top-left.
// Pass zero for width or height to size the canvas from the document.
func Rasterize(doc *gridlines.Document, width, height int, background color.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		cw, ch := doc.Canvas()
		if width <= 0 {
			width = cw
		}
		if height <= 0 {
			height = ch
		}
	}
	if width <= 0 || height <= 0 || width > MaxPreviewSide || height > MaxPreviewSide {
		return nil, fmt.Errorf("invalid preview size %dx%d (max %d per side)", width, height, MaxPreviewSide)
	}

	canvas := imaging.New(width, height, background)
	return Overlay(canvas, doc)
}

// Overlay composites doc over img. The result has img's dimensions;
// segments outside the image are clipped.
func Overlay(img image.Image, doc *gridlines.Document) (*image.RGBA, error) {
	stroke, err := StrokeColor()
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	layer := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for _, s := range doc.Segments() {
		drawSegment(layer, s, stroke)
	}

	// blend works on zero-origin images
	base := img
	if b.Min != (image.Point{}) {
		base = imaging.Clone(img)
	}
	return blend.Normal(base, layer), nil
}

// drawSegment plots a one pixel wide line with a DDA walk. The segment is
// clipped to the image first, so the walk is bounded by the canvas size
// whatever the chart-space length.
func drawSegment(img *image.NRGBA, s gridlines.Segment, c color.NRGBA) {
	b := img.Bounds()
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y

	// plot rounds, so pixel p covers [p-0.5, p+0.5)
	t0, t1 := 0.0, 1.0
	if !clipAxis(s.From.X, dx, float64(b.Min.X)-0.5, float64(b.Max.X)-0.5, &t0, &t1) ||
		!clipAxis(s.From.Y, dy, float64(b.Min.Y)-0.5, float64(b.Max.Y)-0.5, &t0, &t1) {
		return
	}

	length := math.Max(math.Abs(dx), math.Abs(dy)) * (t1 - t0)
	if limit := float64(b.Dx() + b.Dy() + 2); !(length <= limit) {
		length = limit
	}
	steps := int(math.Ceil(length))
	if steps == 0 {
		plot(img, s.From.X+dx*t0, s.From.Y+dy*t0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(steps)
		plot(img, s.From.X+dx*t, s.From.Y+dy*t, c)
	}
}

// clipAxis narrows [t0, t1] to the parameters where p+d*t lies in [lo, hi].
// It reports false when nothing remains.
func clipAxis(p, d, lo, hi float64, t0, t1 *float64) bool {
	if d == 0 {
		return p >= lo && p <= hi
	}
	a, b := (lo-p)/d, (hi-p)/d
	if a > b {
		a, b = b, a
	}
	if a > *t0 {
		*t0 = a
	}
	if b < *t1 {
		*t1 = b
	}
	return *t0 <= *t1
}

func plot(img *image.NRGBA, x, y float64, c color.NRGBA) {
	px, py := int(math.Round(x)), int(math.Round(y))
	if (image.Point{X: px, Y: py}).In(img.Bounds()) {
		img.SetNRGBA(px, py, c)
	}
}

// EncodePreview encodes img as PNG and wraps it for transport.
func EncodePreview(img image.Image, lineCount int) (*PreviewResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &PreviewResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		LineCount:   lineCount,
	}, nil
}

// SavePreview writes img to path; the format follows the file extension.
func SavePreview(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return &gridlines.DestinationError{Path: path, Err: err}
	}
	return nil
}
