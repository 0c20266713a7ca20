package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var benefitNamesSchema = map[string]any{
	"type":     "object",
	"required": []string{"benefits"},
	"properties": map[string]any{
		"benefits": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name"},
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
				},
			},
		},
	},
}

var benefitSchema = map[string]any{
	"type":     "object",
	"required": []string{"benefit"},
	"properties": map[string]any{
		"benefit":      map[string]any{"type": "string", "minLength": 1},
		"innetwork":    map[string]any{"type": "string"},
		"outofnetwork": map[string]any{"type": "string"},
		"limitations":  map[string]any{"type": "string"},
	},
}

var testCasesSchema = map[string]any{
	"type":     "object",
	"required": []string{"testCases"},
	"properties": map[string]any{
		"testCases": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name"},
				"properties": map[string]any{
					"name":           map[string]any{"type": "string", "minLength": 1},
					"description":    map[string]any{"type": "string"},
					"type":           map[string]any{"type": "string"},
					"expectedResult": map[string]any{"type": "string"},
					"icdCodes":       stringArray,
					"procedureCodes": stringArray,
					"placeOfService": stringArray,
				},
			},
		},
	},
}

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var (
	benefitNamesValidator = mustCompile("benefit_names.json", benefitNamesSchema)
	benefitValidator      = mustCompile("benefit.json", benefitSchema)
	testCasesValidator    = mustCompile("test_cases.json", testCasesSchema)
)

func mustCompile(name string, schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal schema %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}

	return compiler.MustCompile(name)
}

// validate checks data against schema and decodes it into out.
func validate(schema *jsonschema.Schema, data []byte, out any) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return nil
}
