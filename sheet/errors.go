package sheet

import "fmt"

// DecodeError means the timesheet bytes could not be decoded under any of
// the fallback encodings. User-facing; aborts timesheet processing only.
type DecodeError struct {
	Tried []string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode timesheet, tried encodings %v: %v", e.Tried, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadError means a table was decodable but malformed or unreadable. The
// affected stage aborts and keeps its prior state.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// RenderError means template population or saving failed. Generation aborts
// without replacing any previously generated output.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("invoice render failed at %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
