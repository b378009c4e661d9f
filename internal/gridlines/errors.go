package gridlines

import (
	"errors"
	"fmt"
)

var (
	// ErrLineCountInvalid indicates a line count that cannot be generated.
	// Every rejected count matches it.
	ErrLineCountInvalid = errors.New("gridlines: number of chart lines must be greater than 2")

	// ErrLineCountTooLarge indicates more than MaxLines gridlines were requested.
	ErrLineCountTooLarge = fmt.Errorf("gridlines: number of chart lines must not exceed %d", MaxLines)
)

// LineCountError reports the rejected line count. It matches
// ErrLineCountInvalid under errors.Is, and also ErrLineCountTooLarge
// when Count exceeds MaxLines.
type LineCountError struct {
	Count int
}

func (e *LineCountError) Error() string {
	if e.Count > MaxLines {
		return fmt.Sprintf("%v (got %d)", ErrLineCountTooLarge, e.Count)
	}
	return fmt.Sprintf("%v (got %d)", ErrLineCountInvalid, e.Count)
}

func (e *LineCountError) Unwrap() []error {
	if e.Count > MaxLines {
		return []error{ErrLineCountInvalid, ErrLineCountTooLarge}
	}
	return []error{ErrLineCountInvalid}
}

// DestinationError is an I/O failure while creating or writing a document file.
type DestinationError struct {
	Path string
	Err  error
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("I/O error at `%s`: %v", e.Path, e.Err)
}

func (e *DestinationError) Unwrap() error {
	return e.Err
}

// OutputStreamError is an I/O failure while writing a document to an output stream.
type OutputStreamError struct {
	Err error
}

func (e *OutputStreamError) Error() string {
	return fmt.Sprintf("error when writing to output stream: %v", e.Err)
}

func (e *OutputStreamError) Unwrap() error {
	return e.Err
}
