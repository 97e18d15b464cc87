package routes

import (
	"painel_master/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathPlans        = "/plans"
	PathAssociates   = "/associates"
	PathConfig       = "/config"
	PathMe           = "/me"
	PathPix          = "/pix"
	PathRenewals     = "/renewals"
	PathBillPayments = "/bill-payments"
	PathReports      = "/reports"
)

func addAuthRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", requireSession, h.Me)
		auth.PATCH("/password", requireSession, h.ChangePassword)
	}
}

// addPanelRoutes registers what both roles use; handlers scope the data to
// the identity in the session.
func addPanelRoutes(rg *gin.RouterGroup, h panelHandlers) {
	rg.GET("/dashboard", h.report.Dashboard)

	pix := rg.Group(PathPix)
	{
		pix.POST("/charges", h.pix.GenerateCharge)
		pix.GET("/sales", h.pix.ListSales)
		pix.GET("/transactions/:id", h.pix.VerifyTransaction)
		pix.GET("/logs", h.pix.ListLogs)
	}

	rg.GET(PathBillPayments+"/:id", h.billPayment.GetBillPayment)
}

func addAdminRoutes(rg *gin.RouterGroup, h panelHandlers) {
	plans := rg.Group(PathPlans)
	{
		plans.GET("", h.plan.ListPlans)
		plans.POST("", h.plan.CreatePlan)
		plans.PUT("/:id", h.plan.UpdatePlan)
		plans.DELETE("/:id", h.plan.DeletePlan)
	}

	associates := rg.Group(PathAssociates)
	{
		associates.GET("", h.associate.ListAssociates)
		associates.POST("", h.associate.CreateAssociate)
		associates.PUT("/:id", h.associate.UpdateAssociate)
		associates.DELETE("/:id", h.associate.DeleteAssociate)
		associates.GET("/:id/access-message", h.associate.AccessMessage)
	}

	cfg := rg.Group(PathConfig)
	{
		cfg.GET("", h.configuration.GetConfiguration)
		cfg.PUT("/integration", h.configuration.UpdateIntegration)
		cfg.PUT("/payout", h.configuration.UpdatePayout)
	}

	rg.GET("/commissions", h.report.Commissions)
	reports := rg.Group(PathReports)
	{
		reports.GET("/resellers", h.report.MonthlySummary)
		reports.GET("/months", h.report.Months)
	}

	renewals := rg.Group(PathRenewals)
	{
		renewals.GET("", h.renewal.ListPendingRenewals)
		renewals.POST("/:id/verify", h.renewal.VerifyRenewal)
		renewals.POST("/:id/approve", h.renewal.ApproveRenewal)
	}

	billPayments := rg.Group(PathBillPayments)
	{
		billPayments.GET("/admin", h.billPayment.ListAllBillPayments)
		billPayments.POST("/:id/process", h.billPayment.ProcessBillPayment)
	}
}

func addResellerRoutes(rg *gin.RouterGroup, h panelHandlers) {
	me := rg.Group(PathMe)
	{
		me.GET("/api-key", h.configuration.GetResellerAPIKey)
		me.PUT("/api-key", h.configuration.UpdateResellerAPIKey)
		me.GET("/plan", h.report.MyPlan)
	}

	rg.POST(PathRenewals, h.renewal.RequestRenewal)

	billPayments := rg.Group(PathBillPayments)
	{
		billPayments.POST("/quote", h.billPayment.Quote)
		billPayments.POST("", h.billPayment.SubmitBillPayment)
		billPayments.GET("", h.billPayment.ListMyBillPayments)
	}
}
