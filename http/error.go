package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/repurpose"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	repurpose.EINVALID:    http.StatusBadRequest,
	repurpose.EEXTRACT:    http.StatusUnprocessableEntity,
	repurpose.ERATELIMIT:  http.StatusTooManyRequests,
	repurpose.EFETCH:      http.StatusBadGateway,
	repurpose.ECOMPLETION: http.StatusBadGateway,
	repurpose.EMALFORMED:  http.StatusBadGateway,
	repurpose.EINTERNAL:   http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every failed API response.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error logs err with its full cause and writes the client-safe message.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code := repurpose.ErrorCode(err)
	status := ErrorStatusCode(code)

	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "request failed",
		"id", RequestIDFromContext(r.Context()),
		"code", code,
		"status", status,
		"err", err.Error(),
	)

	writeJSON(w, status, errorResponse{Error: repurpose.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
