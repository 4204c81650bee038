package models

import "strings"

// Tag is one permitted value of an Axis. Value is the wire token written to
// output files and returned by the model; Rule tells the model when to pick it.
type Tag struct {
	Value string
	Rule  string
}

// Axis is a closed set of tags for one classification dimension.
//
// Wire values are published: they are never removed, renamed or reused for a
// different meaning. New tags are appended at the end.
type Axis struct {
	Name string
	Tags []Tag
}

// Contains reports whether v is a wire value of the axis.
func (a *Axis) Contains(v string) bool {
	_, ok := a.Lookup(v)
	return ok
}

// Lookup returns the tag with wire value v.
func (a *Axis) Lookup(v string) (Tag, bool) {
	if a == nil {
		return Tag{}, false
	}
	for _, t := range a.Tags {
		if t.Value == v {
			return t, true
		}
	}
	return Tag{}, false
}

// Canonical maps v to the axis wire value it matches ignoring case and
// surrounding whitespace.
func (a *Axis) Canonical(v string) (string, bool) {
	if a == nil {
		return "", false
	}
	v = strings.TrimSpace(v)
	for _, t := range a.Tags {
		if strings.EqualFold(t.Value, v) {
			return t.Value, true
		}
	}
	return "", false
}

// Values returns the wire values in declaration order.
func (a *Axis) Values() []string {
	values := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		values = append(values, t.Value)
	}
	return values
}

// Axes returns every axis used by the record, in field declaration order.
func Axes() []*Axis {
	return []*Axis{
		ArtStyleAxis,
		CameraPerspectiveAxis,
		VisualClutterLevelAxis,
		ColorPaletteAxis,
		GameplayGenreAxis,
		InputMethodAxis,
		GameplayMechanicAxis,
		GameplayPropAxis,
		CharacterArchetypeAxis,
		EmotionTriggerAxis,
		SatisfactionTriggerAxis,
		FailTypeAxis,
		PointerStyleAxis,
		TextHookAxis,
		CTAElementAxis,
		MusicGenreAxis,
		SoundEffectAxis,
		VoiceOverTypeAxis,
		VoiceOverToneAxis,
		VoiceOverContentAxis,
	}
}
