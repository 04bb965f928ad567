package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"arunika-backend/models"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T, req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestExtractTokenPrefersBearerHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/auth", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})

	c, _ := newTestContext(t, req)
	if got := ExtractToken(c); got != "header-token" {
		t.Errorf("ExtractToken = %q, want header-token", got)
	}
}

func TestExtractTokenFallsBackToCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/auth", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})

	c, _ := newTestContext(t, req)
	if got := ExtractToken(c); got != "cookie-token" {
		t.Errorf("ExtractToken = %q, want cookie-token", got)
	}
}

func TestExtractTokenEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/auth", nil)
	c, _ := newTestContext(t, req)
	if got := ExtractToken(c); got != "" {
		t.Errorf("ExtractToken = %q, want empty", got)
	}
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	req := httptest.NewRequest("DELETE", "/api/admin/cleanup/products", nil)
	c, w := newTestContext(t, req)
	c.Set("user", &models.User{Username: "budi", Role: models.RoleUser, IsActive: true})

	RequireAdmin()(c)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRequireAdminRejectsMissingUser(t *testing.T) {
	req := httptest.NewRequest("DELETE", "/api/admin/cleanup/products", nil)
	c, w := newTestContext(t, req)

	RequireAdmin()(c)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	req := httptest.NewRequest("DELETE", "/api/admin/cleanup/products", nil)
	c, w := newTestContext(t, req)
	c.Set("user", &models.User{Username: "admin", Role: models.RoleAdmin, IsActive: true})

	RequireAdmin()(c)
	if c.IsAborted() {
		t.Error("admin request should not be aborted")
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
