package model

import (
	"errors"
	"regexp"
)

// Server is one deployment endpoint declared by the document. Its URL may be
// a template containing {name} placeholders that are substituted from
// Variables or from caller-supplied overrides.
type Server struct {
	URL         string                    `yaml:"url" json:"url"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// ServerVariable is a substitution variable for a server URL template. When
// Enum is non-empty, only listed values are accepted for substitution.
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default,omitempty" json:"default,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Placeholders returns the variable names referenced by the URL template, in
// order of first occurrence. A name occurring more than once is reported once.
func (s Server) Placeholders() []string {
	matches := placeholderPattern.FindAllStringSubmatch(s.URL, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// CheckURLTemplate verifies that braces in a server URL template form
// well-shaped, non-empty placeholders. It reports the first defect found.
func CheckURLTemplate(template string) error {
	depth, length := 0, 0
	for _, r := range template {
		switch r {
		case '{':
			if depth > 0 {
				return errors.New("nested '{'")
			}
			depth, length = 1, 0
		case '}':
			if depth == 0 {
				return errors.New("'}' without matching '{'")
			}
			if length == 0 {
				return errors.New("empty placeholder")
			}
			depth = 0
		default:
			if depth > 0 {
				length++
			}
		}
	}
	if depth != 0 {
		return errors.New("unterminated '{'")
	}
	return nil
}

// ExpandURL substitutes every {name} placeholder in the URL template with its
// value from values. Placeholders without a value are left untouched.
func (s Server) ExpandURL(values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s.URL, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}
