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
	errInvalidAssociatePayload = pkg.NewDomainErrorSimple("INVALID_ASSOCIATE_INPUT", "Invalid associate payload", http.StatusBadRequest)
)

type AssociateHandler struct {
	usecase usecase.IAssociateUseCase
}

func NewAssociateHandler(uc usecase.IAssociateUseCase) *AssociateHandler {
	return &AssociateHandler{usecase: uc}
}

// ListAssociates godoc
// @Summary  List resellers with plan name and due-date status
// @Tags     associates
// @Produce  json
// @Success  200  {array}  response.AssociateResponse
// @Router   /associates [get]
func (h *AssociateHandler) ListAssociates(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[associate][handler] list failed err=%v", err)
		writeError(c, mapAssociateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssociateViews(views))
}

// CreateAssociate godoc
// @Summary      Create a reseller
// @Description  Generates the initial password and returns it with the welcome message, once.
// @Tags         associates
// @Accept       json
// @Produce      json
// @Param        body  body      request.AssociateRequest  true  "Associate"
// @Success      201   {object}  response.AssociateCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /associates [post]
func (h *AssociateHandler) CreateAssociate(c *gin.Context) {
	var payload request.AssociateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidAssociatePayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[associate][handler] create failed username=%s err=%v", payload.Username, err)
		writeError(c, mapAssociateError(err))
		return
	}
	log.Printf("[associate][handler] create success id=%s", created.Associate.ID)

	c.JSON(http.StatusCreated, response.FromAssociateCreated(created))
}

// UpdateAssociate godoc
// @Summary  Update a reseller
// @Tags     associates
// @Accept   json
// @Produce  json
// @Param    id    path      string                    true  "Associate id"
// @Param    body  body      request.AssociateRequest  true  "Associate"
// @Success  200   {object}  response.AssociateResponse
// @Failure  404   {object}  pkg.HTTPError
// @Router   /associates/{id} [put]
func (h *AssociateHandler) UpdateAssociate(c *gin.Context) {
	var payload request.AssociateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidAssociatePayload)
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[associate][handler] update failed id=%s err=%v", id, err)
		writeError(c, mapAssociateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssociate(updated))
}

// DeleteAssociate godoc
// @Summary  Delete a reseller
// @Tags     associates
// @Param    id  path  string  true  "Associate id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /associates/{id} [delete]
func (h *AssociateHandler) DeleteAssociate(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[associate][handler] delete failed id=%s err=%v", id, err)
		writeError(c, mapAssociateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AccessMessage godoc
// @Summary  Access details message for a reseller
// @Tags     associates
// @Produce  json
// @Param    id  path      string  true  "Associate id"
// @Success  200 {object}  response.MessageResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /associates/{id}/access-message [get]
func (h *AssociateHandler) AccessMessage(c *gin.Context) {
	id := c.Param("id")
	msg, err := h.usecase.AccessMessage(c.Request.Context(), id)
	if err != nil {
		log.Printf("[associate][handler] access message failed id=%s err=%v", id, err)
		writeError(c, mapAssociateError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msg})
}

func mapAssociateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAssociateFieldsRequired), errors.Is(err, usecase.ErrInvalidDueDate), errors.Is(err, entities.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_ASSOCIATE_INPUT", "Invalid associate payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanInactive):
		return pkg.NewDomainErrorSimple("PLAN_INACTIVE", "Plan is no longer offered", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssociateNotFound):
		return pkg.NewDomainErrorSimple("ASSOCIATE_NOT_FOUND", "Associate not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
