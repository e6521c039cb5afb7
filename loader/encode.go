package loader

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/tobich/oasreq/model"
)

// Marshal renders a Specification back to YAML or JSON. FormatAuto renders
// YAML. Loading the output again yields a Specification equal to the input,
// since the serializer emits exactly the fields the model carries.
func Marshal(spec *model.Specification, hint FormatHint) ([]byte, error) {
	switch hint {
	case FormatJSON:
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding document as JSON: %w", err)
		}
		return data, nil
	default:
		data, err := yaml.Marshal(spec)
		if err != nil {
			return nil, fmt.Errorf("encoding document as YAML: %w", err)
		}
		return data, nil
	}
}
