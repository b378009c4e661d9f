package gridlines

import "io"

// SetStdout redirects the default stream sink to w until the returned
// function is called.
func SetStdout(w io.Writer) (restore func()) {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}
