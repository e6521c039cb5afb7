// Package oasreq loads OpenAPI 3.x documents and turns their server entries
// into ready-to-finalize HTTP request descriptors.
//
// Quick start:
//
//	spec, err := oasreq.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	targets, err := oasreq.Endpoints(spec, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range targets {
//		fmt.Println(t.URL())
//	}
//
// The loader and request packages expose the full API: format hints, byte
// sources, document validation, caching, and per-server building with
// variable overrides.
package oasreq

import (
	"github.com/tobich/oasreq/loader"
	"github.com/tobich/oasreq/model"
	"github.com/tobich/oasreq/request"
)

// Load reads an OpenAPI 3.x document from a file path. YAML and JSON are
// detected from the extension or content.
func Load(path string) (*model.Specification, error) {
	return loader.Load(path)
}

// Endpoints resolves every server declared by spec into a request descriptor,
// substituting server variables from their defaults. Overrides take
// precedence over defaults and may be nil.
func Endpoints(spec *model.Specification, overrides map[string]string) ([]request.Descriptor, error) {
	return request.FromSpecification(spec, overrides)
}
