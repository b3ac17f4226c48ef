package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	_ "detailshop/docs"
	"detailshop/internal/adapter/http/handlers"
	"detailshop/internal/adapter/http/middleware"
	"detailshop/internal/config"
	"detailshop/internal/domain/auth"
	"detailshop/internal/infrastructure/metrics"
	"detailshop/internal/infrastructure/payments"
	"detailshop/internal/usecase"
	"detailshop/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Estimates     *handlers.EstimateHandler
	Assessments   *handlers.AssessmentHandler
	Clients       *handlers.ClientHandler
	Catalog       *handlers.CatalogHandler
	Organizations *handlers.OrganizationHandler
	Booking       *handlers.BookingHandler
	Payments      *handlers.PaymentHandler
}

// Run wires storage, use cases and handlers for cfg and serves until the listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	router, closeStore, err := NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	addr := ":" + strconv.Itoa(cfg.Port)
	slog.Info("[http] listening", "addr", addr, "env", cfg.Env, "storage", cfg.StorageDriver)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the application: %w", err)
	}
	return nil
}

// NewApp builds the router with every dependency for cfg. The returned func
// releases the storage connection.
func NewApp(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	gateway, err := newPaymentGateway(cfg.Payments)
	if err != nil {
		repos.close()
		return nil, nil, err
	}

	if cfg.AuthJWTSecret == "" {
		slog.Warn("[auth] AUTH_JWT_SECRET is empty, every bearer token will be rejected")
	}
	admin := auth.NewAdminPolicy(cfg.AdminUserID)

	estimates := usecase.NewEstimateUseCase(repos.services, repos.modifiers, cfg.Pricing)
	resolver := usecase.NewClientResolver(repos.clients)
	assessments := usecase.NewAssessmentUseCase(repos.assessments, repos.services, resolver, estimates, admin)
	organizations := usecase.NewOrganizationUseCase(repos.organizations, admin)
	booking := usecase.NewBookingUseCase(organizations, repos.services, repos.modifiers, estimates, assessments)
	paymentsUC := usecase.NewAssessmentPaymentUseCase(repos.payments, repos.assessments, gateway, cfg.Payments)

	h := Handlers{
		Estimates:     handlers.NewEstimateHandler(estimates, admin),
		Assessments:   handlers.NewAssessmentHandler(assessments),
		Clients:       handlers.NewClientHandler(usecase.NewClientUseCase(repos.clients, admin)),
		Catalog:       handlers.NewCatalogHandler(usecase.NewCatalogUseCase(repos.services, repos.modifiers, admin)),
		Organizations: handlers.NewOrganizationHandler(organizations),
		Booking:       handlers.NewBookingHandler(booking),
		Payments:      handlers.NewPaymentHandler(paymentsUC, cfg.Payments.Mock),
	}
	return NewRouter(cfg, middleware.NewTokenVerifier(cfg.AuthJWTSecret), h), repos.close, nil
}

// NewRouter mounts middlewares, docs, metrics and the v1 API.
func NewRouter(cfg config.Config, verifier *middleware.TokenVerifier, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	v1.Use(middleware.Authenticate(verifier))
	addPingRoutes(v1)
	addPublicRoutes(v1, h)
	addOrganizationRoutes(v1, h)
	addAssessmentRoutes(v1, h)
	addAdminRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
}

func newPaymentGateway(cfg config.Payments) (interfaces.IPaymentGateway, error) {
	gw, err := payments.NewMercadoPagoGateway(cfg)
	if err != nil {
		if errors.Is(err, payments.ErrMissingMercadoPagoAccessToken) {
			slog.Warn("[payment] Mercado Pago gateway not configured, payments will fail", "err", err)
			return nil, nil
		}
		return nil, err
	}
	return gw, nil
}
