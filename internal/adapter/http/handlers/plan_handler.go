package handlers

import (
	"errors"
	"log"
	"net/http"

	request "painel_master/internal/adapter/http/dto/request"
	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)
)

type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

// ListPlans godoc
// @Summary  List active plans
// @Tags     plans
// @Produce  json
// @Success  200  {array}  entities.Plan
// @Router   /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		log.Printf("[plan][handler] list failed err=%v", err)
		writeError(c, mapPlanError(err))
		return
	}
	if plans == nil {
		plans = []entities.Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

// CreatePlan godoc
// @Summary  Create a plan
// @Tags     plans
// @Accept   json
// @Produce  json
// @Param    body  body      request.PlanRequest  true  "Plan"
// @Success  201   {object}  entities.Plan
// @Failure  400   {object}  pkg.HTTPError
// @Router   /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPlanPayload)
		return
	}

	plan, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[plan][handler] create failed err=%v", err)
		writeError(c, mapPlanError(err))
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan godoc
// @Summary  Update a plan
// @Tags     plans
// @Accept   json
// @Produce  json
// @Param    id    path      string               true  "Plan id"
// @Param    body  body      request.PlanRequest  true  "Plan"
// @Success  200   {object}  entities.Plan
// @Failure  404   {object}  pkg.HTTPError
// @Router   /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPlanPayload)
		return
	}

	id := c.Param("id")
	plan, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[plan][handler] update failed id=%s err=%v", id, err)
		writeError(c, mapPlanError(err))
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan godoc
// @Summary  Delete a plan
// @Tags     plans
// @Param    id  path  string  true  "Plan id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[plan][handler] delete failed id=%s err=%v", id, err)
		writeError(c, mapPlanError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPlanNameRequired), errors.Is(err, usecase.ErrInvalidPlanPrice):
		return pkg.NewDomainError("INVALID_PLAN_INPUT", "Invalid plan payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
