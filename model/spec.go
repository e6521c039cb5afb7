// Package model defines the typed representation of an OpenAPI 3.x document.
//
// Values are built once by the loader and never mutated afterwards; callers
// may share them freely across goroutines.
package model

// Specification is a loaded OpenAPI 3.x document.
type Specification struct {
	// OpenAPI is the document's declared specification version (3.x.x).
	OpenAPI string `yaml:"openapi" json:"openapi"`

	Info Info `yaml:"info" json:"info"`

	// Servers lists deployment endpoints in document order. May be empty if
	// the document declares none.
	Servers []Server `yaml:"servers,omitempty" json:"servers,omitempty"`

	// Paths maps path templates to their operations. Only the subset needed
	// to describe endpoints is modeled; schemas, request bodies, and
	// responses are not.
	Paths map[string]PathItem `yaml:"paths,omitempty" json:"paths,omitempty"`

	Tags []Tag `yaml:"tags,omitempty" json:"tags,omitempty"`

	ExternalDocs *ExternalDoc `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

// Info carries the document's metadata block.
type Info struct {
	Title          string   `yaml:"title,omitempty" json:"title,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Version        string   `yaml:"version,omitempty" json:"version,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
}

type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

type License struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

type Tag struct {
	Name         string       `yaml:"name,omitempty" json:"name,omitempty"`
	Description  string       `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDoc `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

type ExternalDoc struct {
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}
