package model

// PathItem describes the operations available on a single path template.
type PathItem struct {
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`

	// Servers, when present, override the document-level server list for
	// every operation under this path.
	Servers []Server `yaml:"servers,omitempty" json:"servers,omitempty"`

	Parameters []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Operations returns the item's declared operations keyed by HTTP method.
func (p PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation, 8)
	for method, op := range map[string]*Operation{
		"GET":     p.Get,
		"PUT":     p.Put,
		"POST":    p.Post,
		"DELETE":  p.Delete,
		"OPTIONS": p.Options,
		"HEAD":    p.Head,
		"PATCH":   p.Patch,
		"TRACE":   p.Trace,
	} {
		if op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string       `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDoc `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string       `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []Parameter  `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Deprecated   bool         `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Servers      []Server     `yaml:"servers,omitempty" json:"servers,omitempty"`
}

// Parameter identifies a single operation parameter by name and location.
// Parameter schemas are not modeled.
type Parameter struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}
