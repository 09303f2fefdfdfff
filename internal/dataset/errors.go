package dataset

import "fmt"

// NotFoundError reports an input file whose path did not resolve.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s (run the simulator first to produce it)", e.Path)
}

// SchemaError reports a required column missing from an input file.
type SchemaError struct {
	Path   string
	Column string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("required column %q not present", e.Column)
	}
	return fmt.Sprintf("required column %q missing from %s", e.Column, e.Path)
}

// ParseError reports non-numeric data in a column that must be numeric.
type ParseError struct {
	Path   string
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("column %q in %s contains non-numeric data", e.Column, e.Path)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyResultError reports a generation filter that matched no rows.
type EmptyResultError struct {
	Column string
	Target int
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no rows with %s == %d; no viable universes for that generation", e.Column, e.Target)
}
