package gridlines

// Generate builds the gridlines of one orientation.
//
// Coordinates are computed along the varying axis (Y for Horizontal, X for
// Vertical) and each becomes a segment spanning the fixed axis. Segments are
// stored in coordinate order. Errors from Coordinates are returned as is.
func Generate(o Orientation, cfg Config) (*Document, error) {
	coords, err := Coordinates(cfg.varying(o), cfg.Lines)
	if err != nil {
		return nil, err
	}

	fixed := cfg.fixed(o)
	doc := &Document{segments: make([]Segment, 0, len(coords))}
	for _, c := range coords {
		doc.Add(segmentAt(o, fixed, c))
	}
	return doc, nil
}

// Generator is a chainable builder around Generate for one orientation.
//
//	doc, err := gridlines.NewHorizontal().
//	    XRange(120, 1500).
//	    YRange(10, 360).
//	    Lines(5).
//	    Generate()
type Generator struct {
	orientation Orientation
	cfg         Config
	doc         *Document
}

// NewGenerator returns an unconfigured generator for o.
func NewGenerator(o Orientation) *Generator {
	return &Generator{orientation: o, doc: &Document{}}
}

// NewHorizontal returns a generator of horizontal gridlines.
func NewHorizontal() *Generator { return NewGenerator(Horizontal) }

// NewVertical returns a generator of vertical gridlines.
func NewVertical() *Generator { return NewGenerator(Vertical) }

// XRange sets the X axis range.
func (g *Generator) XRange(start, end float64) *Generator {
	g.cfg.X = Range(start, end)
	return g
}

// YRange sets the Y axis range.
func (g *Generator) YRange(start, end float64) *Generator {
	g.cfg.Y = Range(start, end)
	return g
}

// Lines sets the number of gridlines. It is validated by Generate.
func (g *Generator) Lines(n int) *Generator {
	g.cfg.Lines = n
	return g
}

// Orientation reports which axis the generator varies.
func (g *Generator) Orientation() Orientation { return g.orientation }

// Config returns the current configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate computes a fresh document and replaces the held one. On error
// the held document is unchanged.
func (g *Generator) Generate() (*Document, error) {
	doc, err := Generate(g.orientation, g.cfg)
	if err != nil {
		return nil, err
	}
	g.doc = doc
	return doc, nil
}

// Document returns the most recently generated document. It is empty until
// Generate succeeds.
func (g *Generator) Document() *Document { return g.doc }

// String renders the held document.
func (g *Generator) String() string { return g.doc.String() }

// Write sends the held document to path, or to stdout when path is empty.
func (g *Generator) Write(path string) error {
	return SinkFor(path).Write(g.doc)
}
