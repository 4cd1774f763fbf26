package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"HEYNOM_BACK-END/internal/dto"
)

// maxBodyBytes bounds request bodies accepted by DecodeJSONRequest
const maxBodyBytes = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// WriteErrorResponse writes a dto.ErrorResponse with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, detail string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Detail: detail})
}

// DecodeJSONRequest decodes the request body into dst.
// On failure it writes a 422 response and returns the error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		detail := "request body must be valid JSON"
		var typeErr *json.UnmarshalTypeError
		var parseErr *time.ParseError
		switch {
		case errors.Is(err, io.EOF):
			detail = "request body is required"
		case errors.As(err, &typeErr):
			detail = fmt.Sprintf("field %s has the wrong type", typeErr.Field)
		case errors.As(err, &parseErr):
			detail = "timestamps must be RFC 3339"
		}
		WriteErrorResponse(w, http.StatusUnprocessableEntity, "Validation error", detail)
		return err
	}
	return nil
}

// FormatTimestamp renders t as RFC 3339 in UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
