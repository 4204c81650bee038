// Package export flattens analysis records into tabular output.
package export

import (
	"strings"

	"adcreative-analyzer/internal/models"
)

// FilenameColumn heads the first output column.
const FilenameColumn = "filename"

// Entry is one analyzed video ready to be written.
type Entry struct {
	Name   string
	Record *models.AnalysisRecord
}

// Header returns the output columns: the filename followed by every record
// field in declaration order.
func Header() []string {
	return append([]string{FilenameColumn}, models.FieldNames()...)
}

// Row flattens rec into cells aligned with Header. Lists are joined with
// models.MultiSelectSeparator; absent optional values become empty cells.
func Row(name string, rec *models.AnalysisRecord) []string {
	fields := models.Fields()
	row := make([]string, 0, len(fields)+1)
	row = append(row, name)
	for _, f := range fields {
		row = append(row, f.Cell(rec))
	}
	return row
}

// SplitMultiSelect inverts the list joining done by Row. Whitespace around
// separators is ignored and an empty cell yields an empty list.
func SplitMultiSelect(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return []string{}
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
