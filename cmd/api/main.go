package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/gallinero/henhouse-api/internal/application/analytics"
	"github.com/gallinero/henhouse-api/internal/application/auth"
	"github.com/gallinero/henhouse-api/internal/application/pos"
	appshift "github.com/gallinero/henhouse-api/internal/application/shift"
	"github.com/gallinero/henhouse-api/internal/application/usecase"
	"github.com/gallinero/henhouse-api/internal/infrastructure/notify"
	infrapdf "github.com/gallinero/henhouse-api/internal/infrastructure/pdf"
	"github.com/gallinero/henhouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/gallinero/henhouse-api/internal/interfaces/http"
	"github.com/gallinero/henhouse-api/pkg/config"
	"github.com/gallinero/henhouse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	webhookRepo := postgres.NewWebhookRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.NewDispatcher(
		webhookRepo,
		time.Duration(cfg.Notify.TimeoutSeconds)*time.Second,
		log,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	checkoutUC := pos.NewCheckoutUseCase(txRunner, productRepo, userRepo, notifier, cfg.Notify.LowStockThreshold)
	receiptUC := pos.NewReceiptUseCase(saleRepo, userRepo, infrapdf.NewMarotoReceiptGenerator())
	shiftUC := appshift.NewShiftUseCase(shiftRepo, userRepo, notifier)
	productUC := usecase.NewProductUseCase(productRepo)
	staffUC := usecase.NewStaffUseCase(userRepo, shiftRepo)
	webhookUC := usecase.NewWebhookUseCase(webhookRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CheckoutUC:  checkoutUC,
		ReceiptUC:   receiptUC,
		ShiftUC:     shiftUC,
		ProductUC:   productUC,
		StaffUC:     staffUC,
		WebhookUC:   webhookUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
