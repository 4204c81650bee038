package handlers

import (
	"net/http"

	"adcreative-analyzer/internal/models"
)

// SchemaHandler publishes the field catalogue and the JSON Schema of the
// record.
type SchemaHandler struct {
	jsonSchema bool
}

// NewSchemaHandler serves the field catalogue.
func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// NewJSONSchemaHandler serves the JSON Schema document.
func NewJSONSchemaHandler() *SchemaHandler {
	return &SchemaHandler{jsonSchema: true}
}

func (h *SchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	if h.jsonSchema {
		w.Header().Set("Content-Type", "application/schema+json")
		raw, err := models.JSONSchemaBytes()
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(raw)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": models.Describe()})
}
