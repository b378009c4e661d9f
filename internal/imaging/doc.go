// Package imaging renders gridline documents to raster images.
//
// It complements the SVG output of package gridlines with PNG previews:
// Rasterize paints a document on a solid canvas, Overlay paints it over an
// existing image (for example a chart screenshot loaded through
// ImageCache), and EncodePreview/SavePreview hand the result to a caller.
//
// # Coordinate System
//
// Chart coordinates map 1:1 to pixels. (0,0) is the top-left corner, X
// increases rightward and Y increases downward. Fractional coordinates are
// rounded to the nearest pixel and anything outside the image is clipped.
//
// # Colors
//
// Gridlines are always drawn with gridlines.StrokeColor at
// gridlines.Opacity. DescribeColor reports any "#RRGGBB" color as hex, RGB,
// RGBA and HSL.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Rasterize and Overlay allocate
// their own output and never modify their inputs.
package imaging
