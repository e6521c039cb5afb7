package loader

import "fmt"

// IOError reports a document that could not be read from the filesystem.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading spec %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a syntactically malformed document. Line and Column are
// 1-based and zero when the underlying parser did not report a position;
// YAML parsers embed the position in the error message instead.
type ParseError struct {
	Format FormatHint
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s document: line %d, column %d: %v", e.Format, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parsing %s document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a document that parsed but violates a structural
// requirement. Field points at the offending location, e.g. "servers[0].url".
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid document: %s: %s", e.Field, e.Reason)
}
