package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"adcreative-analyzer/internal/models"
)

const recordSchemaURL = "analysis_record.json"

var (
	recordSchemaOnce sync.Once
	recordSchema     *jsonschema.Schema
	recordSchemaErr  error

	missingPropertyRe = regexp.MustCompile(`missing properties: '([^']+)'`)
)

func compiledRecordSchema() (*jsonschema.Schema, error) {
	recordSchemaOnce.Do(func() {
		raw, err := models.JSONSchemaBytes()
		if err != nil {
			recordSchemaErr = fmt.Errorf("encode record schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(recordSchemaURL, bytes.NewReader(raw)); err != nil {
			recordSchemaErr = fmt.Errorf("load record schema: %w", err)
			return
		}
		recordSchema, recordSchemaErr = compiler.Compile(recordSchemaURL)
	})
	return recordSchema, recordSchemaErr
}

// CoerceRecord turns a raw model response into a validated record. It
// tolerates markdown fences and surrounding prose, treats "not observed"
// markers on optional fields as absent, canonicalizes tag casing and drops
// repeated tags. Anything else that does not fit the schema is rejected with
// a *SchemaCoercionError naming the offending field.
func CoerceRecord(raw string) (*models.AnalysisRecord, error) {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return nil, &SchemaCoercionError{Err: errors.New("empty response")}
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &SchemaCoercionError{Err: fmt.Errorf("response is not a JSON object: %w", err)}
	}
	if doc == nil {
		return nil, &SchemaCoercionError{Err: errors.New("response is null")}
	}
	normalizeDocument(doc)

	schema, err := compiledRecordSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(any(doc)); err != nil {
		return nil, &SchemaCoercionError{Field: fieldFromValidation(err), Err: err}
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, &SchemaCoercionError{Err: err}
	}
	var rec models.AnalysisRecord
	if err := json.Unmarshal(normalized, &rec); err != nil {
		return nil, &SchemaCoercionError{Err: err}
	}
	if err := rec.Validate(); err != nil {
		var fe *models.FieldError
		if errors.As(err, &fe) {
			return nil, &SchemaCoercionError{Field: fe.Field, Err: err}
		}
		return nil, &SchemaCoercionError{Err: err}
	}
	rec.FillEmptyLists()
	return &rec, nil
}

// isNotObserved reports whether s is one of the phrasings models use for a
// field they could not populate. Case and trailing punctuation are ignored.
func isNotObserved(s string) bool {
	marker := strings.ToLower(strings.TrimSpace(s))
	marker = strings.TrimSpace(strings.TrimRight(marker, ".!"))
	switch marker {
	case "", "none", "null", "nil", "n/a", "na", "not observed", "not present",
		"not applicable", "not detected", "not visible", "not audible":
		return true
	}
	return false
}

func normalizeDocument(doc map[string]any) {
	for _, f := range models.Fields() {
		v, present := doc[f.Name]
		switch f.Shape {
		case models.ShapeSingleSelect:
			if !present {
				continue
			}
			s, isString := v.(string)
			if v == nil || (isString && isNotObserved(s)) {
				if !f.Required {
					delete(doc, f.Name)
				}
				continue
			}
			if isString {
				if canonical, ok := f.Axis.Canonical(s); ok {
					doc[f.Name] = canonical
				} else {
					doc[f.Name] = strings.TrimSpace(s)
				}
			}
		case models.ShapeMultiSelect:
			doc[f.Name] = normalizeTags(f.Axis, v)
		case models.ShapeTextList:
			switch t := v.(type) {
			case nil:
				doc[f.Name] = []any{}
			case string:
				if strings.TrimSpace(t) == "" {
					doc[f.Name] = []any{}
				} else {
					doc[f.Name] = []any{t}
				}
			}
		case models.ShapeText:
			if !present {
				continue
			}
			if v == nil && !f.Required {
				delete(doc, f.Name)
				continue
			}
			if s, ok := v.(string); ok {
				doc[f.Name] = strings.TrimSpace(s)
			}
		case models.ShapeBool:
			if s, ok := v.(string); ok {
				if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
					doc[f.Name] = b
				}
			}
		}
	}
}

// normalizeTags returns the distinct tags of v in first-seen order. A single
// string is read as a comma-joined list.
func normalizeTags(axis *models.Axis, v any) any {
	var items []any
	switch t := v.(type) {
	case nil:
		return []any{}
	case string:
		for _, part := range strings.Split(t, ",") {
			items = append(items, part)
		}
	case []any:
		items = t
	default:
		return v
	}

	out := make([]any, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			out = append(out, item)
			continue
		}
		if isNotObserved(s) {
			continue
		}
		if canonical, found := axis.Canonical(s); found {
			s = canonical
		} else {
			s = strings.TrimSpace(s)
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// fieldFromValidation names the top-level property behind a schema failure.
func fieldFromValidation(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return ""
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if loc := strings.TrimPrefix(leaf.InstanceLocation, "/"); loc != "" {
		return strings.SplitN(loc, "/", 2)[0]
	}
	if m := missingPropertyRe.FindStringSubmatch(leaf.Message); m != nil {
		return m[1]
	}
	return ""
}

// openedByArray reports whether the object starting at brace is the first
// element of an array.
func openedByArray(s string, brace int) bool {
	before := strings.TrimRight(s[:brace], " \t\r\n")
	return strings.HasSuffix(before, "[")
}

// extractJSON strips markdown fences and surrounding prose from a model
// response and returns the outermost JSON object, minus control characters.
// A response whose outermost value is an array is returned unchanged so that
// decoding it as an object fails.
func extractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "\uFEFF")

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```JSON")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	first := strings.Index(cleaned, "{")
	last := strings.LastIndex(cleaned, "}")
	if first != -1 && last > first && !openedByArray(cleaned, first) {
		cleaned = cleaned[first : last+1]
	}

	if !utf8.ValidString(cleaned) {
		cleaned = strings.ToValidUTF8(cleaned, "")
	}

	var sb strings.Builder
	sb.Grow(len(cleaned))
	for _, r := range cleaned {
		if (r >= 0 && r < 9) || (r > 10 && r < 13) || (r > 13 && r < 32) || r == 127 {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
