package gridlines

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteStandalone writes d as a self-contained SVG file with an XML prolog
// and an explicit canvas size. Pass zero for width or height to size the
// canvas from the document bounds.
//
// Unlike String, the output layout is owned by svgo and is not meant to be
// compared byte for byte.
func (d *Document) WriteStandalone(w io.Writer, width, height int) error {
	if width <= 0 || height <= 0 {
		cw, ch := d.Canvas()
		if width <= 0 {
			width = cw
		}
		if height <= 0 {
			height = ch
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gridlines: invalid canvas %dx%d", width, height)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	attrs := attributes()
	for _, s := range d.segments {
		canvas.Path(s.PathData(), attrs...)
	}
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
