package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"painel_master/internal/adapter/http/middleware"
	"painel_master/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	testAdmin    = entities.Identity{ID: entities.AdminIdentityID, Username: "admin", Name: "Administrador", Role: entities.RoleAdmin}
	testReseller = entities.Identity{ID: "a-1", Username: "loja", Name: "Loja", Role: entities.RoleReseller, PlanID: "p-1", DueDate: "2024-03-02"}
)

// withIdentity stands in for RequireSession in handler tests.
func withIdentity(identity entities.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d body=%s", want, w.Code, w.Body.String())
	}
}

