package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildCatalogJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the catalog override file format.
func buildCatalogJSONSchema() map[string]any {
	nonEmptyString := map[string]any{"type": "string", "minLength": 1}
	stringList := map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    nonEmptyString,
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"stores": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"name":    nonEmptyString,
						"aliases": stringList,
					},
					"required": []string{"name", "aliases"},
				},
			},
			"categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"category": nonEmptyString,
						"keywords": stringList,
					},
					"required": []string{"category", "keywords"},
				},
			},
		},
	}
}

// validateAgainstSchema validates "data" against "schemaMap".
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("catalog.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("catalog.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("catalog does not match schema: %w", err)
	}
	return nil
}

// LoadFile reads a catalog override from a JSON file, validates it against
// the embedded schema, and merges it over the defaults: a section present in
// the file replaces the built-in section wholesale, an absent section keeps
// the built-in one.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	if err := validateAgainstSchema(buildCatalogJSONSchema(), raw); err != nil {
		return nil, err
	}
	var override Catalog
	if err := json.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	merged := Default()
	if len(override.Stores) > 0 {
		merged.Stores = override.Stores
	}
	if len(override.Categories) > 0 {
		merged.Categories = override.Categories
	}
	return merged, nil
}
