package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"painel_master/internal/adapter/http/handlers/mocks"
	"painel_master/internal/domain/entities"
	"painel_master/internal/infrastructure/rowstore"
	"painel_master/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type fakeSessions struct {
	saved   *entities.Identity
	cleared bool
	current entities.Identity
	saveErr error
}

func (f *fakeSessions) Save(_ *gin.Context, identity entities.Identity) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &identity
	return nil
}

func (f *fakeSessions) Update(_ *gin.Context, patch entities.IdentityPatch) (entities.Identity, error) {
	f.current = f.current.Merge(patch)
	return f.current, nil
}

func (f *fakeSessions) Clear(*gin.Context) error {
	f.cleared = true
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, &fakeSessions{})

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", `{"usuario":"loja"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		sessions := &fakeSessions{}
		h := NewAuthHandler(uc, sessions)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "loja", "errada").Return(entities.Identity{}, usecase.ErrInvalidCredentials)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", `{"usuario":" loja ","senha":"errada"}`)
		expectStatus(t, w, http.StatusUnauthorized)
		if body := decodeBody(t, w); body["code"] != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected body: %v", body)
		}
		if sessions.saved != nil {
			t.Fatalf("session must not be written on failure")
		}
	})

	t.Run("remote failure is not reported as bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, &fakeSessions{})

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "loja", "x").Return(entities.Identity{}, fmt.Errorf("load config: %w", rowstore.ErrRemoteFailure))

		w := doRequest(r, http.MethodPost, "/v1/auth/login", `{"usuario":"loja","senha":"x"}`)
		expectStatus(t, w, http.StatusBadGateway)
	})

	t.Run("success stores the identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		sessions := &fakeSessions{}
		h := NewAuthHandler(uc, sessions)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		identity := testReseller
		identity.FirstAccess = true
		uc.EXPECT().Login(gomock.Any(), "loja", "123456").Return(identity, nil)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", `{"usuario":"loja","senha":"123456"}`)
		expectStatus(t, w, http.StatusOK)
		if sessions.saved == nil || sessions.saved.ID != "a-1" {
			t.Fatalf("expected session to be saved, got %+v", sessions.saved)
		}
		if body := decodeBody(t, w); body["deve_alterar_senha"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("session write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, &fakeSessions{saveErr: errors.New("cookie")})

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "admin", "admin").Return(testAdmin, nil)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", `{"usuario":"admin","senha":"admin"}`)
		expectStatus(t, w, http.StatusInternalServerError)
	})
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logout clears the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := &fakeSessions{}
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), sessions)

		r := gin.New()
		r.POST("/v1/auth/logout", h.Logout)

		w := doRequest(r, http.MethodPost, "/v1/auth/logout", "")
		expectStatus(t, w, http.StatusNoContent)
		if !sessions.cleared {
			t.Fatalf("expected session to be cleared")
		}
	})

	t.Run("me without identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), &fakeSessions{})

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		w := doRequest(r, http.MethodGet, "/v1/auth/me", "")
		expectStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("me", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), &fakeSessions{})

		r := gin.New()
		r.GET("/v1/auth/me", withIdentity(testAdmin), h.Me)

		w := doRequest(r, http.MethodGet, "/v1/auth/me", "")
		expectStatus(t, w, http.StatusOK)
		user, _ := decodeBody(t, w)["usuario"].(map[string]any)
		if user["role"] != "admin" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing fields", err: usecase.ErrPasswordFieldsRequired, want: http.StatusBadRequest},
		{name: "mismatch", err: usecase.ErrPasswordMismatch, want: http.StatusBadRequest},
		{name: "too short", err: usecase.ErrPasswordTooShort, want: http.StatusBadRequest},
		{name: "wrong current", err: usecase.ErrWrongCurrentPassword, want: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAuthUseCase(ctrl)
			h := NewAuthHandler(uc, &fakeSessions{current: testReseller})

			r := gin.New()
			r.PATCH("/v1/auth/password", withIdentity(testReseller), h.ChangePassword)

			uc.EXPECT().ChangePassword(gomock.Any(), testReseller, "a", "b", "c").Return(entities.IdentityPatch{}, tc.err)

			w := doRequest(r, http.MethodPatch, "/v1/auth/password", `{"senha_atual":"a","nova_senha":"b","confirmar_senha":"c"}`)
			expectStatus(t, w, tc.want)
		})
	}

	t.Run("success clears first access in the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		identity := testReseller
		identity.FirstAccess = true
		sessions := &fakeSessions{current: identity}
		h := NewAuthHandler(uc, sessions)

		r := gin.New()
		r.PATCH("/v1/auth/password", withIdentity(identity), h.ChangePassword)

		off := false
		uc.EXPECT().ChangePassword(gomock.Any(), identity, "123456", "novaSenha", "novaSenha").Return(entities.IdentityPatch{FirstAccess: &off}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/auth/password", `{"senha_atual":"123456","nova_senha":"novaSenha","confirmar_senha":"novaSenha"}`)
		expectStatus(t, w, http.StatusOK)
		if sessions.current.FirstAccess {
			t.Fatalf("expected first access to be cleared")
		}
		if body := decodeBody(t, w); body["deve_alterar_senha"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
