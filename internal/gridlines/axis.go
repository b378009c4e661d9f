package gridlines

import "math"

const (
	// MinLines is the smallest line count that can be evenly spaced on an axis.
	MinLines = 3
	// MaxLines is the largest line count accepted on one axis.
	MaxLines = 255
)

// AxisRange bounds gridlines along one axis.
//
// No ordering is enforced: Start may exceed End. Coordinates always walk
// from Start toward End.
type AxisRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Range is shorthand for AxisRange{Start: start, End: end}.
func Range(start, end float64) AxisRange {
	return AxisRange{Start: start, End: end}
}

// Span returns the magnitude of the range, |End - Start|.
func (r AxisRange) Span() float64 {
	return math.Abs(r.End - r.Start)
}

// Orientation selects which axis a generator varies.
type Orientation int

const (
	// Horizontal lines vary Y and span the X range.
	Horizontal Orientation = iota
	// Vertical lines vary X and span the Y range.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Config is the complete input of one axis generation.
type Config struct {
	X     AxisRange `json:"x_range"`
	Y     AxisRange `json:"y_range"`
	Lines int       `json:"lines"`
}

// varying returns the range gridlines are distributed along.
func (c Config) varying(o Orientation) AxisRange {
	if o == Vertical {
		return c.X
	}
	return c.Y
}

// fixed returns the range every gridline spans.
func (c Config) fixed(o Orientation) AxisRange {
	if o == Vertical {
		return c.Y
	}
	return c.X
}

// Delta returns the spacing between consecutive coordinates of n lines
// over r, |End-Start| / (n-1).
//
// Returns a *LineCountError when n is outside [MinLines, MaxLines].
func Delta(r AxisRange, n int) (float64, error) {
	if n < MinLines || n > MaxLines {
		return 0, &LineCountError{Count: n}
	}
	return r.Span() / float64(n-1), nil
}

// Coordinates returns n evenly spaced values from r.Start to r.End.
//
// The first value is r.Start and the last is assigned r.End exactly rather
// than accumulated, so it never drifts. Interior values are
// r.Start + i*delta, stepping toward r.End.
//
// Returns a *LineCountError (matching ErrLineCountInvalid) when n is
// outside [MinLines, MaxLines].
func Coordinates(r AxisRange, n int) ([]float64, error) {
	delta, err := Delta(r, n)
	if err != nil {
		return nil, err
	}
	if r.End < r.Start {
		delta = -delta
	}

	coords := make([]float64, n)
	for i := 0; i < n-1; i++ {
		coords[i] = r.Start + delta*float64(i)
	}
	coords[n-1] = r.End
	return coords, nil
}
