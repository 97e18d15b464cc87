package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "painel_master/internal/adapter/http/dto/request"
	"painel_master/internal/usecase"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAPIKeyPayload = pkg.NewDomainErrorSimple("API_KEY_REQUIRED", "API key is required", http.StatusBadRequest)
)

type ConfigurationHandler struct {
	usecase usecase.IConfigurationUseCase
}

func NewConfigurationHandler(uc usecase.IConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

// GetConfiguration godoc
// @Summary  Panel settings without the administrator password
// @Tags     config
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /config [get]
func (h *ConfigurationHandler) GetConfiguration(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		log.Printf("[config][handler] get failed err=%v", err)
		writeError(c, mapConfigurationError(err))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateIntegration godoc
// @Summary  Save the provider API key and the notification webhook
// @Tags     config
// @Accept   json
// @Param    body  body  request.IntegrationRequest  true  "Integration"
// @Success  204
// @Router   /config/integration [put]
func (h *ConfigurationHandler) UpdateIntegration(c *gin.Context) {
	var payload request.IntegrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.UpdateIntegration(c.Request.Context(), payload.ToInput()); err != nil {
		log.Printf("[config][handler] update integration failed err=%v", err)
		writeError(c, mapConfigurationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdatePayout godoc
// @Summary  Save where resellers send funds for bill payments
// @Tags     config
// @Accept   json
// @Param    body  body  request.PayoutRequest  true  "Payout"
// @Success  204
// @Router   /config/payout [put]
func (h *ConfigurationHandler) UpdatePayout(c *gin.Context) {
	var payload request.PayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.UpdatePayout(c.Request.Context(), payload.ToInput()); err != nil {
		log.Printf("[config][handler] update payout failed err=%v", err)
		writeError(c, mapConfigurationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetResellerAPIKey godoc
// @Summary  The logged-in reseller's provider API key
// @Tags     me
// @Produce  json
// @Success  200  {object}  request.ResellerAPIKeyRequest
// @Router   /me/api-key [get]
func (h *ConfigurationHandler) GetResellerAPIKey(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	key, err := h.usecase.GetResellerAPIKey(c.Request.Context(), identity)
	if err != nil {
		log.Printf("[config][handler] get reseller api key failed id=%s err=%v", identity.ID, err)
		writeError(c, mapConfigurationError(err))
		return
	}
	c.JSON(http.StatusOK, request.ResellerAPIKeyRequest{APIKey: key})
}

// UpdateResellerAPIKey godoc
// @Summary  Save the logged-in reseller's provider API key
// @Tags     me
// @Accept   json
// @Param    body  body  request.ResellerAPIKeyRequest  true  "API key"
// @Success  204
// @Failure  400  {object}  pkg.HTTPError
// @Router   /me/api-key [put]
func (h *ConfigurationHandler) UpdateResellerAPIKey(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	var payload request.ResellerAPIKeyRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.APIKey) == "" {
		writeError(c, errInvalidAPIKeyPayload)
		return
	}
	if err := h.usecase.UpdateResellerAPIKey(c.Request.Context(), identity, strings.TrimSpace(payload.APIKey)); err != nil {
		log.Printf("[config][handler] update reseller api key failed id=%s err=%v", identity.ID, err)
		writeError(c, mapConfigurationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapConfigurationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAPIKeyRequired):
		return errInvalidAPIKeyPayload
	case errors.Is(err, usecase.ErrAssociateNotFound):
		return pkg.NewDomainErrorSimple("ASSOCIATE_NOT_FOUND", "Associate not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
