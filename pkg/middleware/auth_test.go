package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/pkg/jwt"
)

func callProtected(t *testing.T, manager *jwt.Manager, enabled bool, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	if err := RequireServiceAuth(manager, enabled)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c
}

func TestRequireServiceAuth_DisabledPassesThrough(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	rec, _ := callProtected(t, manager, false, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", rec.Code)
	}
}

func TestRequireServiceAuth_MissingToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	rec, _ := callProtected(t, manager, true, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestRequireServiceAuth_MalformedHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	rec, _ := callProtected(t, manager, true, "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a non-bearer header, got %d", rec.Code)
	}
}

func TestRequireServiceAuth_InvalidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)

	rec, _ := callProtected(t, manager, true, "Bearer not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", rec.Code)
	}
}

func TestRequireServiceAuth_WrongSecret(t *testing.T) {
	other := jwt.NewManager("other-secret", time.Hour)
	token, err := other.GenerateServiceToken("ci-ingester", "service")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	manager := jwt.NewManager("test-secret", time.Hour)
	rec, _ := callProtected(t, manager, true, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a token signed with the wrong secret, got %d", rec.Code)
	}
}

func TestRequireServiceAuth_ValidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.GenerateServiceToken("ci-ingester", "service")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	rec, c := callProtected(t, manager, true, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a valid token, got %d", rec.Code)
	}
	if got := c.Get("service_name"); got != "ci-ingester" {
		t.Fatalf("expected service_name to be set, got %v", got)
	}
	if got := c.Get("service_role"); got != "service" {
		t.Fatalf("expected service_role to be set, got %v", got)
	}
}

func TestRequireServiceAuth_CaseInsensitiveScheme(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	token, err := manager.GenerateServiceToken("ci-ingester", "service")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	rec, _ := callProtected(t, manager, true, "bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a lowercase bearer scheme, got %d", rec.Code)
	}
}
