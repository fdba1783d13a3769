package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/northwind/internal/config"
	"github.com/JonMunkholm/northwind/internal/core"
)

var (
	ErrMissingAPIKey = errors.New("missing api key")
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// APIKeyAuth returns middleware that validates the X-API-Key header against
// the configured keys. With RequireAPIKey false every request passes.
// With RequireAPIKey true and no keys configured every request is rejected.
func APIKeyAuth(cfg config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.RequireAPIKey {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				reject(w, r, ErrMissingAPIKey)
				return
			}
			if !isValidAPIKey(apiKey, cfg.APIKeys) {
				reject(w, r, ErrInvalidAPIKey)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, err error) {
	slog.Warn("auth: "+err.Error(),
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)
	writeAPIError(w, err)
}

// writeAPIError renders err in the same JSON shape the handlers use.
func writeAPIError(w http.ResponseWriter, err error) {
	msg := core.MapError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(core.HTTPStatus(err))
	json.NewEncoder(w).Encode(map[string]string{
		"error":   msg.Message,
		"message": msg.Message,
		"action":  msg.Action,
		"code":    msg.Code,
	})
}

// isValidAPIKey compares key against every configured key in constant time,
// whichever one matches.
func isValidAPIKey(key string, validKeys []string) bool {
	valid := 0
	for _, validKey := range validKeys {
		valid |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}
	return valid == 1
}
