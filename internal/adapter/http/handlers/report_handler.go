package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	response "painel_master/internal/adapter/http/dto/response"
	"painel_master/internal/usecase"
	"painel_master/pkg"
	"painel_master/pkg/format"

	"github.com/gin-gonic/gin"
)

const maxMonthOptions = 24

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Commissions godoc
// @Summary  1% commission over every paid reseller sale
// @Tags     reports
// @Produce  json
// @Success  200  {object}  response.CommissionsResponse
// @Router   /commissions [get]
func (h *ReportHandler) Commissions(c *gin.Context) {
	report, err := h.usecase.Commissions(c.Request.Context())
	if err != nil {
		log.Printf("[report][handler] commissions failed err=%v", err)
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCommissionReport(report))
}

// MonthlySummary godoc
// @Summary  Paid sales per reseller in a month
// @Tags     reports
// @Produce  json
// @Param    month  query     string  false  "YYYY-MM, defaults to the current month"
// @Success  200    {object}  response.MonthlySummaryResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /reports/resellers [get]
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		if opts := h.usecase.Months(1); len(opts) > 0 {
			month = opts[0].Value
		}
	}

	summary, err := h.usecase.MonthlySummary(c.Request.Context(), month)
	if err != nil {
		log.Printf("[report][handler] monthly summary failed month=%s err=%v", month, err)
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMonthlySummary(summary))
}

// Months godoc
// @Summary  Month picker options, newest first
// @Tags     reports
// @Produce  json
// @Param    n  query    int  false  "How many months (default 6)"
// @Success  200  {array}  format.MonthOption
// @Router   /reports/months [get]
func (h *ReportHandler) Months(c *gin.Context) {
	n, _ := strconv.Atoi(c.Query("n"))
	if n > maxMonthOptions {
		n = maxMonthOptions
	}
	opts := h.usecase.Months(n)
	if opts == nil {
		opts = []format.MonthOption{}
	}
	c.JSON(http.StatusOK, opts)
}

// Dashboard godoc
// @Summary  Home page figures for the logged-in identity
// @Tags     reports
// @Produce  json
// @Success  200  {object}  usecase.Dashboard
// @Router   /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	d, err := h.usecase.Dashboard(c.Request.Context(), identity)
	if err != nil {
		log.Printf("[report][handler] dashboard failed id=%s err=%v", identity.ID, err)
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// MyPlan godoc
// @Summary  The reseller's plan and due date
// @Tags     me
// @Produce  json
// @Success  200  {object}  usecase.MyPlan
// @Failure  404  {object}  pkg.HTTPError
// @Router   /me/plan [get]
func (h *ReportHandler) MyPlan(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	p, err := h.usecase.MyPlan(c.Request.Context(), identity)
	if err != nil {
		log.Printf("[report][handler] my plan failed id=%s err=%v", identity.ID, err)
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMonth), errors.Is(err, format.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_MONTH", "Invalid month, expected YYYY-MM", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssociateNotFound):
		return pkg.NewDomainErrorSimple("ASSOCIATE_NOT_FOUND", "Associate not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
