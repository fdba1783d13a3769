package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JonMunkholm/northwind/internal/config"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(r.RemoteAddr))
}

func TestAPIKeyAuth(t *testing.T) {
	cfg := config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1", "k2"}}
	h := APIKeyAuth(cfg)(http.HandlerFunc(okHandler))

	tests := []struct {
		name     string
		key      string
		wantCode int
		wantErr  string
	}{
		{"valid first key", "k1", http.StatusOK, ""},
		{"valid second key", "k2", http.StatusOK, ""},
		{"missing key", "", http.StatusUnauthorized, "AUTH001"},
		{"wrong key", "nope", http.StatusForbidden, "AUTH002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantErr == "" {
				return
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["code"] != tt.wantErr {
				t.Errorf("code = %q, want %q", body["code"], tt.wantErr)
			}
		})
	}
}

func TestAPIKeyAuth_Disabled(t *testing.T) {
	h := APIKeyAuth(config.SecurityConfig{})(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestTrustedRealIP(t *testing.T) {
	h := TrustedRealIP([]string{"10.0.0.0/8", "192.168.1.5", "not-a-cidr"})(http.HandlerFunc(okHandler))

	tests := []struct {
		name   string
		remote string
		header map[string]string
		want   string
	}{
		{"trusted proxy with X-Real-IP", "10.1.2.3:5000", map[string]string{"X-Real-IP": "203.0.113.7"}, "203.0.113.7"},
		{"trusted bare ip with XFF chain", "192.168.1.5:80", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, "198.51.100.1"},
		{"untrusted source keeps remote", "203.0.113.9:1234", map[string]string{"X-Real-IP": "1.2.3.4"}, "203.0.113.9:1234"},
		{"malformed header ignored", "10.0.0.1:1", map[string]string{"X-Real-IP": "garbage"}, "10.0.0.1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if got := rec.Body.String(); got != tt.want {
				t.Errorf("RemoteAddr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogger_CapturesStatus(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
