package gemini

import (
	"github.com/google/generative-ai-go/genai"

	"adcreative-analyzer/internal/models"
)

// BuildResponseSchema translates the field catalogue into the response
// schema the model is constrained to. Every property is listed as required so
// the model always emits the key; optional fields are nullable instead.
func BuildResponseSchema(fields []models.Field) *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(fields)),
		Required:   make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		schema.Properties[f.Name] = fieldSchema(f)
		schema.Required = append(schema.Required, f.Name)
	}
	return schema
}

func fieldSchema(f models.Field) *genai.Schema {
	desc := f.Description
	if f.Axis != nil {
		desc = f.Instruction
	}

	switch f.Shape {
	case models.ShapeSingleSelect:
		return &genai.Schema{
			Type:        genai.TypeString,
			Format:      "enum",
			Enum:        f.Axis.Values(),
			Description: desc,
			Nullable:    !f.Required,
		}
	case models.ShapeMultiSelect:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: desc,
			Items: &genai.Schema{
				Type:   genai.TypeString,
				Format: "enum",
				Enum:   f.Axis.Values(),
			},
		}
	case models.ShapeTextList:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: desc,
			Items:       &genai.Schema{Type: genai.TypeString},
		}
	case models.ShapeBool:
		return &genai.Schema{Type: genai.TypeBoolean, Description: desc}
	default:
		return &genai.Schema{Type: genai.TypeString, Description: desc, Nullable: !f.Required}
	}
}
