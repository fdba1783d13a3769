package web

// errors.go renders every failure as JSON. The technical error is logged
// with the request id; the client only sees the mapped user message and its
// code, with the HTTP status taken from core.HTTPStatus.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

var errRateLimited = errors.New("rate limit exceeded")

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`

	RequestID string `json:"requestId,omitempty"`
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	ue := core.NewUserError(err)
	status := core.HTTPStatus(err)

	logger := logging.FromContext(r.Context())
	args := []any{
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", ue.Technical.Error(),
		"code", ue.User.Code,
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request error", args...)
	} else {
		logger.Debug("request rejected", args...)
	}

	resp := ErrorResponse{
		Error:   ue.Error(),
		Message: ue.User.Message,
		Action:  ue.User.Action,
		Code:    ue.User.Code,
	}
	// Unmapped errors carry the request id so a report can be matched to
	// the logged technical error.
	if !core.IsUserFacing(err) {
		resp.RequestID = middleware.GetReqID(r.Context())
	}
	writeJSONStatus(w, status, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

// writeJSONStatus logs encoding errors since the header is already sent.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
