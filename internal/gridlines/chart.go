package gridlines

// Chart composes a horizontal and a vertical generator over shared ranges.
type Chart struct {
	x, y   AxisRange
	hLines int
	vLines int
}

// NewChart returns an unconfigured chart.
func NewChart() *Chart {
	return &Chart{}
}

// XRange sets the X range shared by both generators.
func (c *Chart) XRange(start, end float64) *Chart {
	c.x = Range(start, end)
	return c
}

// YRange sets the Y range shared by both generators.
func (c *Chart) YRange(start, end float64) *Chart {
	c.y = Range(start, end)
	return c
}

// HLines sets the number of horizontal gridlines.
func (c *Chart) HLines(n int) *Chart {
	c.hLines = n
	return c
}

// VLines sets the number of vertical gridlines.
func (c *Chart) VLines(n int) *Chart {
	c.vLines = n
	return c
}

func (c *Chart) horizontal() *Generator {
	return NewHorizontal().XRange(c.x.Start, c.x.End).YRange(c.y.Start, c.y.End).Lines(c.hLines)
}

func (c *Chart) vertical() *Generator {
	return NewVertical().XRange(c.x.Start, c.x.End).YRange(c.y.Start, c.y.End).Lines(c.vLines)
}

// Generate builds both documents. The horizontal axis is validated first.
func (c *Chart) Generate() (h, v *Document, err error) {
	if h, err = c.horizontal().Generate(); err != nil {
		return nil, nil, err
	}
	if v, err = c.vertical().Generate(); err != nil {
		return nil, nil, err
	}
	return h, v, nil
}

// Render returns the horizontal rendering, a newline, then the vertical
// rendering.
func (c *Chart) Render() (string, error) {
	h, v, err := c.Generate()
	if err != nil {
		return "", err
	}
	return h.String() + "\n" + v.String(), nil
}

// Document returns a single document holding the horizontal segments
// followed by the vertical ones.
func (c *Chart) Document() (*Document, error) {
	h, v, err := c.Generate()
	if err != nil {
		return nil, err
	}
	doc := &Document{segments: make([]Segment, 0, h.Len()+v.Len())}
	doc.Append(h)
	doc.Append(v)
	return doc, nil
}

// Write writes each axis independently. With an empty path both documents
// go to stdout; otherwise each goes to its AxisPath so the vertical write
// does not replace the horizontal one.
// Nothing is written unless both axes are valid.
func (c *Chart) Write(path string) error {
	gens := []*Generator{c.horizontal(), c.vertical()}
	for _, g := range gens {
		if _, err := g.Generate(); err != nil {
			return err
		}
	}
	for _, g := range gens {
		if err := g.Write(AxisPath(path, g.Orientation())); err != nil {
			return err
		}
	}
	return nil
}

// WriteSink sends the horizontal then the vertical document to sink.
func (c *Chart) WriteSink(sink Sink) error {
	h, v, err := c.Generate()
	if err != nil {
		return err
	}
	if err := sink.Write(h); err != nil {
		return err
	}
	return sink.Write(v)
}
