// internal/app/features/errors/errorlogger.go
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs a handler failure and answers the client in one call.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) log(r *http.Request, msg string, err error, status int) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if status >= http.StatusInternalServerError {
		e.Log.Error(msg, fields...)
	} else {
		e.Log.Warn(msg, fields...)
	}
}

// LogServerError logs at error level and renders the 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log(r, msg, err, http.StatusInternalServerError)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs at warn level and renders the 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log(r, msg, err, http.StatusBadRequest)
	RenderBadRequest(w, r, userMsg, backURL)
}

// jsonError is the body of JSON error responses.
type jsonError struct {
	Error string `json:"error"`
}

// JSONError logs and writes {"error": userMsg} with the given status.
func (e *ErrorLogger) JSONError(w http.ResponseWriter, r *http.Request, status int, msg string, err error, userMsg string) {
	e.log(r, msg, err, status)
	WriteJSONError(w, status, userMsg)
}

// WriteJSONError writes {"error": msg} with the given status.
func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: msg})
}
