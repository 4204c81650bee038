package models

import "encoding/json"

// JSONSchemaDraft is the dialect of the document produced by JSONSchema.
const JSONSchemaDraft = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema returns a JSON Schema document describing AnalysisRecord as the
// model is expected to return it. Optional single-selects accept null; lists
// must hold distinct axis values.
func JSONSchema() map[string]any {
	fields := Fields()
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))

	for _, f := range fields {
		prop := map[string]any{"description": RenderFieldGuide(f)}
		switch f.Shape {
		case ShapeSingleSelect:
			if f.Required {
				prop["type"] = "string"
				prop["enum"] = f.Axis.Values()
			} else {
				prop["type"] = []string{"string", "null"}
				enum := make([]any, 0, len(f.Axis.Tags)+1)
				for _, v := range f.Axis.Values() {
					enum = append(enum, v)
				}
				prop["enum"] = append(enum, nil)
			}
		case ShapeMultiSelect:
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string", "enum": f.Axis.Values()}
			prop["uniqueItems"] = true
		case ShapeTextList:
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		case ShapeText:
			if f.Required {
				prop["type"] = "string"
				prop["minLength"] = 1
			} else {
				prop["type"] = []string{"string", "null"}
			}
		case ShapeBool:
			prop["type"] = "boolean"
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	return map[string]any{
		"$schema":    JSONSchemaDraft,
		"title":      "AnalysisRecord",
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// JSONSchemaBytes returns JSONSchema encoded as indented JSON.
func JSONSchemaBytes() ([]byte, error) {
	return json.MarshalIndent(JSONSchema(), "", "  ")
}
