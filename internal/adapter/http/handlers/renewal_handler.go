package handlers

import (
	"errors"
	"log"
	"net/http"

	response "painel_master/internal/adapter/http/dto/response"
	"painel_master/internal/usecase"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
)

type RenewalHandler struct {
	usecase usecase.IRenewalUseCase
}

func NewRenewalHandler(uc usecase.IRenewalUseCase) *RenewalHandler {
	return &RenewalHandler{usecase: uc}
}

// RequestRenewal godoc
// @Summary  Reseller asks to renew the current plan
// @Tags     renewals
// @Produce  json
// @Success  201  {object}  response.RenewalRequestedResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /renewals [post]
func (h *RenewalHandler) RequestRenewal(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	requested, err := h.usecase.Request(c.Request.Context(), identity)
	if err != nil {
		log.Printf("[renewal][handler] request failed id=%s err=%v", identity.ID, err)
		writeError(c, mapRenewalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRenewalRequested(requested))
}

// ListPendingRenewals godoc
// @Summary  Pending renewals with associate and plan
// @Tags     renewals
// @Produce  json
// @Success  200  {array}  response.RenewalResponse
// @Router   /renewals [get]
func (h *RenewalHandler) ListPendingRenewals(c *gin.Context) {
	views, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		log.Printf("[renewal][handler] list failed err=%v", err)
		writeError(c, mapRenewalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRenewalViews(views))
}

// VerifyRenewal godoc
// @Summary  Check the renewal charge at the provider
// @Tags     renewals
// @Produce  json
// @Param    id  path      string  true  "Renewal id"
// @Success  200 {object}  response.TransactionResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /renewals/{id}/verify [post]
func (h *RenewalHandler) VerifyRenewal(c *gin.Context) {
	id := c.Param("id")
	verified, err := h.usecase.Verify(c.Request.Context(), id)
	if err != nil {
		log.Printf("[renewal][handler] verify failed id=%s err=%v", id, err)
		writeError(c, mapRenewalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVerifiedTransaction(verified))
}

// ApproveRenewal godoc
// @Summary      Approve a renewal
// @Description  Marks the renewal paid and moves the due date one month. A second approval is rejected.
// @Tags         renewals
// @Produce      json
// @Param        id  path      string  true  "Renewal id"
// @Success      200 {object}  response.RenewalApprovedResponse
// @Failure      404 {object}  pkg.HTTPError
// @Failure      409 {object}  pkg.HTTPError
// @Router       /renewals/{id}/approve [post]
func (h *RenewalHandler) ApproveRenewal(c *gin.Context) {
	id := c.Param("id")
	approved, err := h.usecase.Approve(c.Request.Context(), id)
	if err != nil {
		log.Printf("[renewal][handler] approve failed id=%s err=%v", id, err)
		writeError(c, mapRenewalError(err))
		return
	}
	log.Printf("[renewal][handler] approve success id=%s associate_id=%s", id, approved.Renewal.AssociateID)
	c.JSON(http.StatusOK, response.FromRenewalApproved(approved))
}

func mapRenewalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRenewalNotFound):
		return pkg.NewDomainErrorSimple("RENEWAL_NOT_FOUND", "Renewal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRenewalNotPending):
		return pkg.NewDomainErrorSimple("RENEWAL_NOT_PENDING", "Renewal is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanPriceMissing):
		return pkg.NewDomainErrorSimple("PLAN_PRICE_MISSING", "The plan has no price to renew", http.StatusConflict)
	case errors.Is(err, usecase.ErrAPIKeyNotConfigured):
		return pkg.NewDomainErrorSimple("API_KEY_NOT_CONFIGURED", "The administrator has not configured the provider API key", http.StatusConflict)
	case errors.Is(err, usecase.ErrDueDateMissing):
		return pkg.NewDomainErrorSimple("DUE_DATE_MISSING", "The associate has no valid due date", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssociateNotFound):
		return pkg.NewDomainErrorSimple("ASSOCIATE_NOT_FOUND", "Associate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
