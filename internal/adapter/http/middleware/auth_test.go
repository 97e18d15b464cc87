package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"painel_master/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type stubLoader struct {
	identity entities.Identity
	err      error
}

func (s stubLoader) Load(*gin.Context) (entities.Identity, error) {
	return s.identity, s.err
}

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no session", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", RequireSession(stubLoader{err: errors.New("none")}), func(c *gin.Context) { c.Status(http.StatusOK) })

		if w := serve(r, "/x"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("identity exposed to handler", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", RequireSession(stubLoader{identity: entities.Identity{ID: "a-1", Role: entities.RoleReseller}}), func(c *gin.Context) {
			identity, ok := IdentityFrom(c)
			if !ok || identity.ID != "a-1" {
				t.Fatalf("unexpected identity %+v", identity)
			}
			c.Status(http.StatusOK)
		})

		if w := serve(r, "/x"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	admin := stubLoader{identity: entities.Identity{ID: "admin", Role: entities.RoleAdmin}}
	reseller := stubLoader{identity: entities.Identity{ID: "a-1", Role: entities.RoleReseller}}

	cases := []struct {
		name   string
		loader stubLoader
		guard  gin.HandlerFunc
		want   int
	}{
		{name: "admin on admin route", loader: admin, guard: RequireAdmin(), want: http.StatusOK},
		{name: "reseller on admin route", loader: reseller, guard: RequireAdmin(), want: http.StatusForbidden},
		{name: "reseller on reseller route", loader: reseller, guard: RequireReseller(), want: http.StatusOK},
		{name: "admin on reseller route", loader: admin, guard: RequireReseller(), want: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", RequireSession(tc.loader), tc.guard, func(c *gin.Context) { c.Status(http.StatusOK) })
			if w := serve(r, "/x"); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("guard without session", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
		if w := serve(r, "/x"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
