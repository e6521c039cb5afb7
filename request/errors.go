package request

import "fmt"

// UnresolvedVariableError reports a placeholder with no caller override and
// no declared default.
type UnresolvedVariableError struct {
	Name string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("server variable %q has no override and no default", e.Name)
}

// InvalidValueError reports a resolved value outside the variable's
// enumerated set.
type InvalidValueError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("value %q for server variable %q is not one of %v", e.Value, e.Name, e.Allowed)
}

// MalformedTemplateError reports a URL template whose braces do not form
// well-shaped placeholders.
type MalformedTemplateError struct {
	Template string
	Reason   string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed url template %q: %s", e.Template, e.Reason)
}

// MalformedURLError reports a resolved URL that fails to parse or uses an
// unsupported shape.
type MalformedURLError struct {
	URL    string
	Reason string
	Err    error
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed server url %q: %s", e.URL, e.Reason)
}

func (e *MalformedURLError) Unwrap() error { return e.Err }
