package models

import (
	"fmt"
	"strings"
)

// RenderFieldGuide renders the guidance text for one field. For axis-backed
// fields the tag list is generated from the axis itself, so the text sent to
// the model always matches the values validation accepts.
func RenderFieldGuide(f Field) string {
	if f.Axis == nil {
		return f.Description
	}
	var b strings.Builder
	b.WriteString(f.Instruction)
	for _, t := range f.Axis.Tags {
		fmt.Fprintf(&b, "\n- '%s': %s", t.Value, t.Rule)
	}
	return b.String()
}

func shapeHint(f Field) string {
	switch f.Shape {
	case ShapeSingleSelect:
		if f.Required {
			return "required; exactly one value"
		}
		return "optional; one value, or null when not observed"
	case ShapeMultiSelect:
		return "list; every value that applies, no duplicates, empty list when none"
	case ShapeTextList:
		return "list of strings"
	case ShapeBool:
		return "required; true or false"
	case ShapeText:
		if f.Required {
			return "required; free text"
		}
		return "free text"
	}
	return ""
}

// RenderInstructions renders the guidance block for a set of fields, one
// paragraph per field in catalogue order.
func RenderInstructions(fields []Field) string {
	var b strings.Builder
	b.WriteString("Fill every field of the JSON object below. Use only the listed codes for coded fields.\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "\n%s (%s):\n%s\n", f.Name, shapeHint(f), RenderFieldGuide(f))
	}
	return b.String()
}
