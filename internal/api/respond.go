package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ValidationError is returned for requests rejected before reaching the vendor
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps validation failures to 400 and everything else to 500
// prefixed with what the operation was doing
func writeError(w http.ResponseWriter, prefix string, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: fmt.Sprintf("%s: %v", prefix, err)})
}

// decodeBody reads a JSON object; an empty body decodes as {}
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return invalid("Invalid JSON body: %v", err)
	}
	return nil
}
