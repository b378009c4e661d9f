// Package gridlines computes evenly spaced chart gridlines and renders them
// as SVG path elements.
//
// # Coordinates
//
// For an axis range (a, b) and n >= 3 lines the spacing is |b-a|/(n-1).
// The sequence starts at a, steps toward b, and its last element is b
// exactly. Fewer than 3 lines fail with ErrLineCountInvalid.
//
// # Generators
//
// A horizontal generator varies Y and draws each line across the X range;
// a vertical generator varies X and draws across the Y range. Chart runs
// one of each over shared ranges.
//
//	out, err := gridlines.NewChart().
//	    XRange(120, 1500).
//	    YRange(10, 360).
//	    HLines(5).
//	    VLines(5).
//	    Render()
//
// # Output
//
// Document.String is deterministic: an svg root declaring the SVG
// namespace and one path per line in generation order. Sinks persist a
// document to a file (DestinationError on failure) or an output stream
// (OutputStreamError on failure).
package gridlines
