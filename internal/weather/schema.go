// internal/weather/schema.go
package weather

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema describes the fields the dashboard relies on. Everything else
// in the payload is passed through to storage untouched.
var payloadSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name", "main", "weather"},
	"properties": map[string]interface{}{
		"name": map[string]interface{}{"type": "string"},
		"main": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"temp", "feels_like", "humidity"},
			"properties": map[string]interface{}{
				"temp":       map[string]interface{}{"type": "number"},
				"feels_like": map[string]interface{}{"type": "number"},
				"humidity":   map[string]interface{}{"type": "number"},
			},
		},
		"weather": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"description"},
				"properties": map[string]interface{}{
					"description": map[string]interface{}{"type": "string"},
				},
			},
		},
	},
}

// ValidatePayload checks a raw weather payload against the schema before it
// is displayed or persisted.
func ValidatePayload(payload []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(payloadSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("payload validation failed: %v", errs)
	}

	return nil
}
