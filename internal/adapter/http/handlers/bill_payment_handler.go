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
	errInvalidBillPaymentPayload = pkg.NewDomainErrorSimple("INVALID_BILL_PAYMENT_INPUT", "Invalid bill payment payload", http.StatusBadRequest)
)

type BillPaymentHandler struct {
	usecase usecase.IBillPaymentUseCase
}

func NewBillPaymentHandler(uc usecase.IBillPaymentUseCase) *BillPaymentHandler {
	return &BillPaymentHandler{usecase: uc}
}

// Quote godoc
// @Summary  Amount with fee and the payout wallet
// @Tags     bill-payments
// @Accept   json
// @Produce  json
// @Param    body  body      request.BillPaymentQuoteRequest  true  "Bill amount"
// @Success  200   {object}  usecase.BillPaymentQuote
// @Failure  400   {object}  pkg.HTTPError
// @Router   /bill-payments/quote [post]
func (h *BillPaymentHandler) Quote(c *gin.Context) {
	var payload request.BillPaymentQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBillPaymentPayload)
		return
	}
	quote, err := h.usecase.Quote(c.Request.Context(), payload.Amount)
	if err != nil {
		log.Printf("[bill_payment][handler] quote failed amount=%.2f err=%v", payload.Amount, err)
		writeError(c, mapBillPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

// SubmitBillPayment godoc
// @Summary  Submit a bill payment request
// @Tags     bill-payments
// @Accept   json
// @Produce  json
// @Param    body  body      request.BillPaymentRequest  true  "Request"
// @Success  201   {object}  response.BillPaymentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /bill-payments [post]
func (h *BillPaymentHandler) SubmitBillPayment(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	var payload request.BillPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBillPaymentPayload)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), identity, payload.ToInput())
	if err != nil {
		log.Printf("[bill_payment][handler] submit failed id=%s err=%v", identity.ID, err)
		writeError(c, mapBillPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBillPayment(created))
}

// ListMyBillPayments godoc
// @Summary  The reseller's own requests
// @Tags     bill-payments
// @Produce  json
// @Success  200  {array}  response.BillPaymentResponse
// @Router   /bill-payments [get]
func (h *BillPaymentHandler) ListMyBillPayments(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	reqs, err := h.usecase.ListMine(c.Request.Context(), identity)
	if err != nil {
		log.Printf("[bill_payment][handler] list mine failed id=%s err=%v", identity.ID, err)
		writeError(c, mapBillPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillPayments(reqs))
}

// ListAllBillPayments godoc
// @Summary  Every request with counters
// @Tags     bill-payments
// @Produce  json
// @Param    status  query     string  false  "pendente, em_processamento, pago, cancelado or todos"
// @Success  200     {object}  response.BillPaymentListResponse
// @Router   /bill-payments/admin [get]
func (h *BillPaymentHandler) ListAllBillPayments(c *gin.Context) {
	list, err := h.usecase.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		log.Printf("[bill_payment][handler] list all failed err=%v", err)
		writeError(c, mapBillPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillPaymentList(list))
}

// GetBillPayment godoc
// @Summary  One request; resellers only see their own
// @Tags     bill-payments
// @Produce  json
// @Param    id  path      string  true  "Request id"
// @Success  200 {object}  response.BillPaymentResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /bill-payments/{id} [get]
func (h *BillPaymentHandler) GetBillPayment(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	id := c.Param("id")
	req, err := h.usecase.Get(c.Request.Context(), identity, id)
	if err != nil {
		log.Printf("[bill_payment][handler] get failed id=%s err=%v", id, err)
		writeError(c, mapBillPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillPayment(req))
}

// ProcessBillPayment godoc
// @Summary      Move a request to a new status
// @Description  Paying requires a receipt; paid and cancelled requests are final.
// @Tags         bill-payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                             true  "Request id"
// @Param        body  body      request.ProcessBillPaymentRequest  true  "Transition"
// @Success      200   {object}  response.BillPaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /bill-payments/{id}/process [post]
func (h *BillPaymentHandler) ProcessBillPayment(c *gin.Context) {
	var payload request.ProcessBillPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBillPaymentPayload)
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.Process(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[bill_payment][handler] process failed id=%s status=%s err=%v", id, payload.Status, err)
		writeError(c, mapBillPaymentError(err))
		return
	}
	log.Printf("[bill_payment][handler] process success id=%s status=%s", id, updated.Status)
	c.JSON(http.StatusOK, response.FromBillPayment(updated))
}

func mapBillPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrAccountDataRequired),
		errors.Is(err, entities.ErrTransactionIDRequired),
		errors.Is(err, entities.ErrDraftWrongStep),
		errors.Is(err, entities.ErrUnknownBillPaymentStatus):
		return pkg.NewDomainError("INVALID_BILL_PAYMENT_INPUT", "Invalid bill payment payload", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrReceiptRequired):
		return pkg.NewDomainErrorSimple("RECEIPT_REQUIRED", "A receipt is required to mark the request as paid", http.StatusBadRequest)
	case errors.Is(err, entities.ErrBillPaymentFinalized):
		return pkg.NewDomainErrorSimple("BILL_PAYMENT_FINALIZED", "Request already finalized", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidBillPaymentTransition), errors.Is(err, entities.ErrDraftAlreadySubmitted):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillPaymentConflict):
		return pkg.NewDomainErrorSimple("BILL_PAYMENT_CONFLICT", "Request was changed by someone else, reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillPaymentNotFound):
		return pkg.NewDomainErrorSimple("BILL_PAYMENT_NOT_FOUND", "Bill payment request not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
