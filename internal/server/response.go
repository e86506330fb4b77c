package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/eradate/core/logger"
	"github.com/dmitrymomot/eradate/pkg/eratime"
)

// HTTPError is the JSON body of every error response.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e HTTPError) Error() string {
	return e.Message
}

// errorCodes maps conversion and request errors to machine-readable codes.
// All of them are client errors.
var errorCodes = []struct {
	err  error
	code string
}{
	{eratime.ErrFormatMismatch, "format_mismatch"},
	{eratime.ErrUnknownEra, "unknown_era"},
	{eratime.ErrIncompleteDate, "incomplete_date"},
	{eratime.ErrInvalidDate, "invalid_date"},
	{eratime.ErrEraOutOfRange, "era_out_of_range"},
	{eratime.ErrUnsupportedDirective, "unsupported_directive"},
	{eratime.ErrDuplicateDirective, "duplicate_directive"},
	{ErrMissingParam, "missing_parameter"},
	{ErrInvalidParam, "invalid_parameter"},
}

// toHTTPError classifies err. Unknown errors become a 500 without leaking details.
func toHTTPError(err error) HTTPError {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return HTTPError{Status: http.StatusBadRequest, Code: c.code, Message: err.Error()}
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_server_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	he := toHTTPError(err)
	if he.Status >= http.StatusInternalServerError {
		id, _ := RequestIDFromContext(r.Context())
		log.ErrorContext(r.Context(), "request failed", logger.RequestID(id), logger.Error(err))
	}
	writeJSON(w, he.Status, he)
}
