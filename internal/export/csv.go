package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVWriter writes a header row followed by one row per entry.
type CSVWriter struct{}

func (CSVWriter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVWriter) Extension() string { return ".csv" }

func (CSVWriter) Write(w io.Writer, entries []Entry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		if err := writer.Write(Row(e.Name, e.Record)); err != nil {
			return fmt.Errorf("write csv row %s: %w", e.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV reads back a document produced by CSVWriter, header included.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header())
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
