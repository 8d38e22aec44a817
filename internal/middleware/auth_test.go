package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const secret = "test-secret"

func newAuthEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), AccountAuth(secret))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": c.GetUint(AccountIDKey), "role": c.GetString(AccountRoleKey)})
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func do(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAccountAuth(t *testing.T) {
	r := newAuthEngine()
	valid, err := IssueToken(secret, 5, RoleUser, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, _ := IssueToken(secret, 5, RoleUser, -time.Hour)
	forged, _ := IssueToken("other-secret", 5, RoleUser, time.Hour)
	noAccount, _ := IssueToken(secret, 0, RoleUser, time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + forged, http.StatusUnauthorized},
		{"no account", "Bearer " + noAccount, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/me", tt.header)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if w.Header().Get(RequestIDHeader) == "" {
				t.Error("missing request id header")
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newAuthEngine()
	userToken, _ := IssueToken(secret, 5, RoleUser, time.Hour)
	adminToken, _ := IssueToken(secret, 1, RoleAdmin, time.Hour)

	if w := do(r, "/admin", "Bearer "+userToken); w.Code != http.StatusForbidden {
		t.Errorf("user: status = %d, want 403", w.Code)
	}
	if w := do(r, "/admin", "Bearer "+adminToken); w.Code != http.StatusNoContent {
		t.Errorf("admin: status = %d, want 204", w.Code)
	}
}

func TestRequestIDReusesCallerValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" || w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("request id = %q / %q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}
}
