package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Urn    string       `json:"urn,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

func toFieldErrors(ve *domain.ValidationError) []fieldError {
	out := make([]fieldError, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		out = append(out, fieldError{Field: fe.Field, Message: fe.Message})
	}
	return out
}
