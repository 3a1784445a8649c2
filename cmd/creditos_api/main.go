// Package main Creditos API
// @title Creditos API
// @version 1.0
// @description Queries fiscal credits (ISSQN) by credit number and NFS-e, with validated pagination and test data tooling
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/creditos/docs"
	"github.com/DjordjeVuckovic/creditos/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/creditos/internal/api/server"
	"github.com/DjordjeVuckovic/creditos/internal/audit"
	"github.com/DjordjeVuckovic/creditos/internal/credito"
	"github.com/DjordjeVuckovic/creditos/internal/storage/factory"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	pkgserver "github.com/DjordjeVuckovic/creditos/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	chain, err := validation.NewDefaultChain(cfg.ValidationConfig)
	if err != nil {
		slog.Error("Failed to build validation chain", "error", err)
		os.Exit(1)
	}

	if err := run(sCfg, cfg, chain); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(sCfg *apiserver.Config, cfg *CreditosApiConfig, chain *validation.Chain) error {
	s := apiserver.New(sCfg, nil)

	backend, err := factory.NewBackend(s.Context(), cfg.StorageConfig)
	if err != nil {
		return err
	}
	defer backend.Close()

	publisher, err := audit.NewPublisher(s.Context(), cfg.AuditConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("Failed to close audit publisher", "error", err)
		}
	}()

	checkers := []pkgserver.HealthChecker{backend.HealthChecker}
	if hc, ok := publisher.(pkgserver.HealthChecker); ok {
		checkers = append(checkers, hc)
	}

	s.WithHealthChecker(pkgserver.NewCompositeHealthChecker(checkers...)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupValidator().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Creditos API is running")
	})

	svc := credito.NewService(backend.Repository, chain, credito.NewGenerator())

	router.NewCreditoRouter(s.Echo, svc,
		router.WithPublisher(publisher),
		router.WithTestFeatures(cfg.TestFeatures),
	).Bind()
	router.NewValidationRouter(s.Echo, chain).Bind()
	router.BindPing(s.Echo)

	slog.Info("Creditos API configured",
		"storageType", cfg.StorageConfig.Type,
		"auditSink", cfg.AuditConfig.Sink,
		"testFeatures", cfg.TestFeatures,
		"validationHandlers", chain.Handlers())

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
