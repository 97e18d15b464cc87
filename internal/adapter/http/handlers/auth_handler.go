package handlers

import (
	"errors"
	"log"
	"net/http"

	request "painel_master/internal/adapter/http/dto/request"
	response "painel_master/internal/adapter/http/dto/response"
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Username and password are required", http.StatusBadRequest)
)

// SessionStore persists the identity between requests.
type SessionStore interface {
	Save(c *gin.Context, identity entities.Identity) error
	Update(c *gin.Context, patch entities.IdentityPatch) (entities.Identity, error)
	Clear(c *gin.Context) error
}

type AuthHandler struct {
	usecase  usecase.IAuthUseCase
	sessions SessionStore
}

func NewAuthHandler(uc usecase.IAuthUseCase, sessions SessionStore) *AuthHandler {
	return &AuthHandler{usecase: uc, sessions: sessions}
}

// Login godoc
// @Summary      Log in
// @Description  Checks the administrator credentials first, then the resellers, and starts a cookie session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidLoginPayload)
		return
	}

	username, password := payload.Credentials()
	identity, err := h.usecase.Login(c.Request.Context(), username, password)
	if err != nil {
		log.Printf("[auth][handler] login failed username=%s err=%v", username, err)
		writeError(c, mapAuthError(err))
		return
	}

	if err := h.sessions.Save(c, identity); err != nil {
		log.Printf("[auth][handler] session save failed id=%s err=%v", identity.ID, err)
		writeError(c, mapAuthError(err))
		return
	}
	log.Printf("[auth][handler] login success id=%s role=%s", identity.ID, identity.Role)

	c.JSON(http.StatusOK, response.FromIdentity(identity))
}

// Logout godoc
// @Summary  Log out
// @Tags     auth
// @Success  204
// @Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c); err != nil {
		log.Printf("[auth][handler] session clear failed err=%v", err)
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary  Current identity
// @Tags     auth
// @Produce  json
// @Success  200  {object}  response.SessionResponse
// @Failure  401  {object}  pkg.HTTPError
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromIdentity(identity))
}

// ChangePassword godoc
// @Summary      Change the logged-in user's password
// @Description  Clears the reseller first-access flag on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.ChangePasswordRequest  true  "Passwords"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /auth/password [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	patch, err := h.usecase.ChangePassword(c.Request.Context(), identity, payload.Current, payload.New, payload.Confirm)
	if err != nil {
		log.Printf("[auth][handler] change password failed id=%s err=%v", identity.ID, err)
		writeError(c, mapAuthError(err))
		return
	}

	updated, err := h.sessions.Update(c, patch)
	if err != nil {
		// the password is already changed; answer with the merged identity
		log.Printf("[auth][handler] session update failed id=%s err=%v", identity.ID, err)
		updated = identity.Merge(patch)
	}

	c.JSON(http.StatusOK, response.FromIdentity(updated))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return errInvalidLoginPayload
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPasswordFieldsRequired):
		return pkg.NewDomainErrorSimple("PASSWORD_FIELDS_REQUIRED", "Fill in every password field", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordMismatch):
		return pkg.NewDomainErrorSimple("PASSWORD_MISMATCH", "New password and confirmation do not match", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewDomainErrorSimple("PASSWORD_TOO_SHORT", "New password must have at least 6 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWrongCurrentPassword):
		return pkg.NewDomainErrorSimple("WRONG_CURRENT_PASSWORD", "Current password is incorrect", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIdentityRequired):
		return pkg.ErrUnauthorized
	default:
		return mapCommonError(err)
	}
}
