package fluid

import "fmt"

// ParseError is returned whenever a string cannot be decoded as a FLUID. It
// names the offending input, the format the input was parsed as (guessed or
// given), and wraps the underlying cause.
type ParseError struct {
	Input  string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a %s FLUID: %s", e.Input, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(input string, format Format, err error) error {
	return &ParseError{Input: input, Format: format, Err: err}
}
