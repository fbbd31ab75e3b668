// Package render translates domain results and errors to HTTP responses.
package render

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "tradecargo/pkg/errors"
	"tradecargo/pkg/platform/sentinel"
)

// JSON writes v with the given status. Encoding failures are swallowed; the
// header is already on the wire by then.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the wire shape for all error responses. Fields carries
// business-rule violations keyed by field; Errors carries ordered structural
// validation failures.
type errorBody struct {
	Message string               `json:"message"`
	Fields  map[string][]string  `json:"fields,omitempty"`
	Errors  []dErrors.FieldError `json:"errors,omitempty"`
}

// Error maps a domain error to its HTTP status and writes the error body.
// Unclassified errors become opaque 500s.
func Error(w http.ResponseWriter, err error) {
	if domainErr, ok := dErrors.From(err); ok {
		JSON(w, statusFor(domainErr.Code), errorBody{
			Message: domainErr.Message,
			Fields:  domainErr.Fields,
			Errors:  domainErr.Errors,
		})
		return
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		JSON(w, http.StatusNotFound, errorBody{Message: "not found"})
	case errors.Is(err, sentinel.ErrConflict):
		JSON(w, http.StatusConflict, errorBody{Message: "conflict"})
	case errors.Is(err, sentinel.ErrUnavailable):
		JSON(w, http.StatusServiceUnavailable, errorBody{Message: "upstream unavailable"})
	default:
		JSON(w, http.StatusInternalServerError, errorBody{Message: "internal error"})
	}
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
