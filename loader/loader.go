// Package loader reads OpenAPI 3.x documents from files or byte slices and
// converts them into the typed model.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	validator "github.com/pb33f/libopenapi-validator"
	"go.yaml.in/yaml/v4"

	"github.com/tobich/oasreq/model"
)

// FormatHint selects the document syntax for LoadBytes.
type FormatHint int

const (
	// FormatAuto detects the syntax from the content: documents whose first
	// non-space byte opens a JSON object or array are parsed as JSON,
	// everything else as YAML.
	FormatAuto FormatHint = iota
	FormatYAML
	FormatJSON
)

func (f FormatHint) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

var versionPattern = regexp.MustCompile(`^3\.\d+\.\d+$`)

// Loader reads and validates OpenAPI documents. The zero value is usable;
// package-level Load and LoadBytes cover the common cases.
type Loader struct {
	// AllowFileReferences permits $ref targets on the local filesystem,
	// resolved relative to the document's directory.
	AllowFileReferences bool

	// ValidateDocument additionally validates the whole document against the
	// OpenAPI schema before conversion. Violations surface as a SchemaError.
	ValidateDocument bool
}

// Load reads an OpenAPI 3.x document from path with filesystem references
// allowed.
func Load(path string) (*model.Specification, error) {
	return (&Loader{AllowFileReferences: true}).Load(path)
}

// LoadBytes reads an OpenAPI 3.x document from an in-memory buffer.
func LoadBytes(data []byte, hint FormatHint) (*model.Specification, error) {
	return (&Loader{}).LoadBytes(data, hint)
}

// Load reads the document at path. The syntax is taken from the file
// extension when it is conclusive, otherwise detected from the content.
func (l *Loader) Load(path string) (*model.Specification, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return l.load(data, hintFromPath(path), filepath.Dir(abs))
}

// LoadBytes parses the document in data according to hint.
func (l *Loader) LoadBytes(data []byte, hint FormatHint) (*model.Specification, error) {
	return l.load(data, hint, "")
}

func (l *Loader) load(data []byte, hint FormatHint, basePath string) (*model.Specification, error) {
	format := detectFormat(data, hint)

	root, err := decodeTree(data, format)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(root); err != nil {
		return nil, err
	}

	config := &datamodel.DocumentConfiguration{
		BasePath:            basePath,
		AllowFileReferences: l.AllowFileReferences,
	}
	doc, err := libopenapi.NewDocumentWithConfiguration(data, config)
	if err != nil {
		return nil, &ParseError{Format: format, Err: fmt.Errorf("parsing OpenAPI document: %w", err)}
	}

	if l.ValidateDocument {
		if err := validateDocument(doc); err != nil {
			return nil, err
		}
	}

	docModel, err := doc.BuildV3Model()
	if err != nil {
		return nil, &ParseError{Format: format, Err: fmt.Errorf("building OpenAPI model: %w", err)}
	}

	spec := transform(doc.GetVersion(), &docModel.Model)
	if err := checkServers(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func hintFromPath(path string) FormatHint {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

func detectFormat(data []byte, hint FormatHint) FormatHint {
	if hint != FormatAuto {
		return hint
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// decodeTree syntax-checks the document and returns its root mapping. Syntax
// failures become a ParseError; a well-formed document whose root is not a
// mapping becomes a SchemaError.
func decodeTree(data []byte, format FormatHint) (map[string]any, error) {
	var root any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			pe := &ParseError{Format: format, Err: err}
			var syn *json.SyntaxError
			if errors.As(err, &syn) {
				pe.Line, pe.Column = lineColumn(data, syn.Offset)
			}
			return nil, pe
		}
	default:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
	}

	mapping, ok := root.(map[string]any)
	if !ok {
		return nil, &SchemaError{Field: "openapi", Reason: "document root is not a mapping"}
	}
	return mapping, nil
}

func checkVersion(root map[string]any) error {
	raw, ok := root["openapi"]
	if !ok {
		return &SchemaError{Field: "openapi", Reason: "missing required field"}
	}
	version, ok := raw.(string)
	if !ok {
		return &SchemaError{Field: "openapi", Reason: fmt.Sprintf("expected a version string, got %T", raw)}
	}
	if !versionPattern.MatchString(version) {
		return &SchemaError{Field: "openapi", Reason: fmt.Sprintf("unsupported version %q (only 3.x.x supported)", version)}
	}
	return nil
}

func validateDocument(doc libopenapi.Document) error {
	v, errs := validator.NewValidator(doc)
	if len(errs) > 0 {
		return &SchemaError{Field: "document", Reason: errs[0].Error()}
	}
	valid, valErrs := v.ValidateDocument()
	if valid {
		return nil
	}
	reasons := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		reasons = append(reasons, ve.Message)
	}
	return &SchemaError{Field: "document", Reason: strings.Join(reasons, "; ")}
}

// checkServers enforces the server-section invariants at load time: every
// server declares a non-empty, well-shaped url template, and every
// placeholder in it is backed by an entry in that server's variables.
func checkServers(spec *model.Specification) error {
	for i, srv := range spec.Servers {
		if srv.URL == "" {
			return &SchemaError{
				Field:  fmt.Sprintf("servers[%d].url", i),
				Reason: "server url must be a non-empty string",
			}
		}
		if err := model.CheckURLTemplate(srv.URL); err != nil {
			return &SchemaError{
				Field:  fmt.Sprintf("servers[%d].url", i),
				Reason: fmt.Sprintf("malformed url template: %v", err),
			}
		}
		for _, name := range srv.Placeholders() {
			if _, ok := srv.Variables[name]; !ok {
				return &SchemaError{
					Field:  fmt.Sprintf("servers[%d].variables.%s", i, name),
					Reason: fmt.Sprintf("url template references variable %q but does not declare it", name),
				}
			}
		}
	}
	return nil
}

func lineColumn(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
