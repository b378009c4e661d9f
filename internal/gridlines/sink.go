package gridlines

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sink receives a finished document for persistence or display.
type Sink interface {
	Write(doc *Document) error
}

// FileSink creates (or truncates) Path and writes the document rendering.
type FileSink struct {
	Path string
}

// Write implements Sink. Failures are returned as *DestinationError.
func (s FileSink) Write(doc *Document) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return &DestinationError{Path: s.Path, Err: err}
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return &DestinationError{Path: s.Path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &DestinationError{Path: s.Path, Err: err}
	}
	return nil
}

// StreamSink writes the document rendering followed by a newline to W.
type StreamSink struct {
	W io.Writer
}

// Write implements Sink. Failures are returned as *OutputStreamError.
func (s StreamSink) Write(doc *Document) error {
	if _, err := io.WriteString(s.W, doc.String()+"\n"); err != nil {
		return &OutputStreamError{Err: err}
	}
	return nil
}

var stdout io.Writer = os.Stdout

// Stdout returns a StreamSink on the process standard output.
func Stdout() StreamSink {
	return StreamSink{W: stdout}
}

// SinkFor returns a FileSink for a non-empty path and Stdout otherwise.
func SinkFor(path string) Sink {
	if path == "" {
		return Stdout()
	}
	return FileSink{Path: path}
}

// AxisPath derives a per-orientation destination from path:
// "grid.svg" becomes "grid.horizontal.svg" or "grid.vertical.svg".
// An empty path stays empty.
func AxisPath(path string, o Orientation) string {
	if path == "" {
		return ""
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + o.String() + ext
}
