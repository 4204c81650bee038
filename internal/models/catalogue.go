package models

// TagDescriptor is the published form of a Tag.
type TagDescriptor struct {
	Value string `json:"value" yaml:"value"`
	Rule  string `json:"rule" yaml:"rule"`
}

// FieldDescriptor is the published form of a Field, used by the schema
// endpoint and the CLI.
type FieldDescriptor struct {
	Name     string          `json:"name" yaml:"name"`
	Section  Section         `json:"section" yaml:"section"`
	Shape    string          `json:"shape" yaml:"shape"`
	Required bool            `json:"required" yaml:"required"`
	Axis     string          `json:"axis,omitempty" yaml:"axis,omitempty"`
	Guidance string          `json:"guidance" yaml:"guidance"`
	Values   []TagDescriptor `json:"values,omitempty" yaml:"values,omitempty"`
}

// Describe returns the field catalogue in declaration order.
func Describe() []FieldDescriptor {
	fields := Fields()
	out := make([]FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		d := FieldDescriptor{
			Name:     f.Name,
			Section:  f.Section,
			Shape:    f.Shape.String(),
			Required: f.Required,
			Guidance: f.Description,
		}
		if f.Axis != nil {
			d.Axis = f.Axis.Name
			d.Guidance = f.Instruction
			for _, t := range f.Axis.Tags {
				d.Values = append(d.Values, TagDescriptor{Value: t.Value, Rule: t.Rule})
			}
		}
		out = append(out, d)
	}
	return out
}
