package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "painel_master/internal/adapter/http/dto/request"
	response "painel_master/internal/adapter/http/dto/response"
	"painel_master/internal/usecase"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Client name and a positive amount are required", http.StatusBadRequest)
)

// PixHandler serves both roles; the use case picks the API key and the log
// table from the identity.
type PixHandler struct {
	usecase usecase.IPixUseCase
}

func NewPixHandler(uc usecase.IPixUseCase) *PixHandler {
	return &PixHandler{usecase: uc}
}

// GenerateCharge godoc
// @Summary  Issue a PIX charge
// @Tags     pix
// @Accept   json
// @Produce  json
// @Param    body  body      request.ChargeRequest  true  "Charge"
// @Success  201   {object}  entities.PixCharge
// @Failure  400   {object}  pkg.HTTPError
// @Failure  502   {object}  pkg.HTTPError
// @Router   /pix/charges [post]
func (h *PixHandler) GenerateCharge(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidChargePayload)
		return
	}

	charge, err := h.usecase.GenerateCharge(c.Request.Context(), identity, strings.TrimSpace(payload.ClientName), payload.Amount)
	if err != nil {
		log.Printf("[pix][handler] generate failed id=%s err=%v", identity.ID, err)
		writeError(c, mapPixError(err))
		return
	}
	c.JSON(http.StatusCreated, charge)
}

// ListSales godoc
// @Summary  Paid sales of the logged-in identity
// @Tags     pix
// @Produce  json
// @Success  200  {object}  response.SalesResponse
// @Router   /pix/sales [get]
func (h *PixHandler) ListSales(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	report, err := h.usecase.ListSales(c.Request.Context(), identity)
	if err != nil {
		log.Printf("[pix][handler] list sales failed id=%s err=%v", identity.ID, err)
		writeError(c, mapPixError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSalesReport(report))
}

// VerifyTransaction godoc
// @Summary  Look up a transaction at the provider
// @Tags     pix
// @Produce  json
// @Param    id  path      string  true  "Transaction id"
// @Success  200 {object}  response.TransactionResponse
// @Failure  400 {object}  pkg.HTTPError
// @Router   /pix/transactions/{id} [get]
func (h *PixHandler) VerifyTransaction(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	txID := strings.TrimSpace(c.Param("id"))
	verified, err := h.usecase.VerifyTransaction(c.Request.Context(), identity, txID)
	if err != nil {
		log.Printf("[pix][handler] verify failed id=%s tx=%s err=%v", identity.ID, txID, err)
		writeError(c, mapPixError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVerifiedTransaction(verified))
}

// ListLogs godoc
// @Summary  Charge history with status counters
// @Tags     pix
// @Produce  json
// @Param    status  query     string  false  "paid, pending, expired or todos"
// @Success  200     {object}  response.PixLogsResponse
// @Router   /pix/logs [get]
func (h *PixHandler) ListLogs(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	report, err := h.usecase.ListLogs(c.Request.Context(), identity, c.Query("status"))
	if err != nil {
		log.Printf("[pix][handler] list logs failed id=%s err=%v", identity.ID, err)
		writeError(c, mapPixError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPixLogReport(report))
}

func mapPixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrChargeFieldsRequired):
		return errInvalidChargePayload
	case errors.Is(err, usecase.ErrTransactionIDMissing):
		return pkg.NewDomainErrorSimple("INVALID_TRANSACTION_ID", "Transaction id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAPIKeyNotConfigured):
		return pkg.NewDomainErrorSimple("API_KEY_NOT_CONFIGURED", "Configure the provider API key first", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssociateNotFound):
		return pkg.NewDomainErrorSimple("ASSOCIATE_NOT_FOUND", "Associate not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
