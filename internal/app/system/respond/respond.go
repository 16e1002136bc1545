// Package respond writes JSON responses. Error is the one place where any
// error becomes the {"error":{"message","status"}} envelope.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/apperr"
	"github.com/dalemusser/taskhub/internal/app/system/limits"
	"github.com/dalemusser/waffle/pantry/requestid"
	"go.uber.org/zap"
)

// ErrInvalidBody is returned when a request body is not valid JSON.
var ErrInvalidBody = apperr.Invalid("Invalid request body")

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error classifies err and writes the error envelope. Server-side kinds are
// logged with the cause; client errors are logged at debug.
func Error(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	status := kind.Status()
	msg := apperr.Message(err)

	if log != nil {
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			requestid.Field(r.Context()),
			zap.String("kind", kind.String()),
			zap.Int("status", status),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			log.Error("request failed", fields...)
		} else {
			log.Debug("request rejected", fields...)
		}
	}

	JSON(w, status, errorEnvelope{Error: errorBody{Message: msg, Status: status}})
}

// NotFound writes a 404 envelope with msg.
func NotFound(w http.ResponseWriter, r *http.Request, log *zap.Logger, msg string) {
	Error(w, r, log, apperr.New(apperr.NotFound, msg))
}

// DecodeJSON decodes the request body into v. An empty body decodes as {}
// and leaves v untouched. Any other decoding failure, including a body
// larger than limits.MaxJSONBody, is reported as ErrInvalidBody.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	body := http.MaxBytesReader(nil, r.Body, limits.MaxJSONBody)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Wrap(apperr.InvalidInput, ErrInvalidBody.Message, err)
	}
	return nil
}
