package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "painel_master/docs" // generated by swag init
	"painel_master/internal/adapter/http/handlers"
	"painel_master/internal/adapter/http/middleware"
	"painel_master/internal/adapter/http/session"
	"painel_master/internal/adapter/persistence/repository"
	"painel_master/internal/config"
	"painel_master/internal/infrastructure/database"
	"painel_master/internal/infrastructure/notification"
	"painel_master/internal/infrastructure/payments"
	"painel_master/internal/infrastructure/security"
	"painel_master/internal/usecase"
	"painel_master/pkg"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const shutdownTimeout = 30 * time.Second

type panelHandlers struct {
	auth          *handlers.AuthHandler
	plan          *handlers.PlanHandler
	associate     *handlers.AssociateHandler
	configuration *handlers.ConfigurationHandler
	pix           *handlers.PixHandler
	renewal       *handlers.RenewalHandler
	billPayment   *handlers.BillPaymentHandler
	report        *handlers.ReportHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Minute,
	}

	go func() {
		log.Printf("[server] listening addr=%s env=%s", srv.Addr, cfg.Environment.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("[server] shutting down signal=%s", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Printf("[server] stopped")
}

func getRoutes(ctx context.Context, cfg *config.Config) error {
	store, err := database.OpenRowStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open row store: %w", err)
	}
	httpClient := database.NewHTTPClient(cfg.HTTP.ClientTimeout)

	configRepo := repository.NewConfigurationRepository(store, cfg.Tables.Configurations)
	planRepo := repository.NewPlanRepository(store, cfg.Tables.Plans)
	associateRepo := repository.NewAssociateRepository(store, cfg.Tables.Associates)
	logRepo := repository.NewPixLogRepository(store, cfg.Tables.AdminLogs, cfg.Tables.AssociateLogs)
	renewalRepo := repository.NewRenewalRepository(store, cfg.Tables.Renewals)
	billPaymentRepo := repository.NewBillPaymentRepository(store, cfg.Tables.BillPayments)

	gateway, err := payments.NewGateway(cfg.Payments, httpClient)
	if err != nil {
		return fmt.Errorf("payment gateway: %w", err)
	}
	notifier := notification.NewWebhookNotifier(httpClient)
	hasher := security.NewPasswordHasher(cfg.Auth.HashPasswords)
	loc := cfg.Location()
	sessions := session.NewManager(cfg.Session)

	settings := usecase.AssociateSettings{
		ClientURL:            cfg.Panel.ClientURL,
		WebhookGeneratePix:   cfg.Payments.GenerateURL,
		WebhookCheckPayment:  cfg.Payments.PaidURL,
		WebhookCheckTransfer: cfg.Payments.VerifyURL,
	}

	h := panelHandlers{
		auth:          handlers.NewAuthHandler(usecase.NewAuthUseCase(configRepo, associateRepo, hasher), sessions),
		plan:          handlers.NewPlanHandler(usecase.NewPlanUseCase(planRepo)),
		associate:     handlers.NewAssociateHandler(usecase.NewAssociateUseCase(associateRepo, planRepo, hasher, settings, loc)),
		configuration: handlers.NewConfigurationHandler(usecase.NewConfigurationUseCase(configRepo, associateRepo)),
		pix:           handlers.NewPixHandler(usecase.NewPixUseCase(gateway, logRepo, configRepo, associateRepo)),
		renewal:       handlers.NewRenewalHandler(usecase.NewRenewalUseCase(renewalRepo, associateRepo, planRepo, configRepo, gateway)),
		billPayment:   handlers.NewBillPaymentHandler(usecase.NewBillPaymentUseCase(billPaymentRepo, configRepo, notifier)),
		report:        handlers.NewReportHandler(usecase.NewReportUseCase(associateRepo, planRepo, logRepo, loc)),
	}

	registerRoutes(router.Group("/v1"), sessions, h)
	return nil
}

// registerRoutes lays out /v1: public auth endpoints, then everything else
// behind the session cookie with per-role groups.
func registerRoutes(v1 *gin.RouterGroup, sessions middleware.IdentityLoader, h panelHandlers) {
	requireSession := middleware.RequireSession(sessions)

	addPingRoutes(v1)
	addAuthRoutes(v1, requireSession, h.auth)

	authed := v1.Group("", requireSession)
	addPanelRoutes(authed, h)
	addAdminRoutes(authed.Group("", middleware.RequireAdmin()), h)
	addResellerRoutes(authed.Group("", middleware.RequireReseller()), h)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}
