package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gallinero/henhouse-api/internal/application/analytics"
	"github.com/gallinero/henhouse-api/internal/application/auth"
	"github.com/gallinero/henhouse-api/internal/application/pos"
	"github.com/gallinero/henhouse-api/internal/application/shift"
	"github.com/gallinero/henhouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CheckoutUC  *pos.CheckoutUseCase
	ReceiptUC   *pos.ReceiptUseCase
	ShiftUC     *shift.ShiftUseCase
	ProductUC   *usecase.ProductUseCase
	StaffUC     *usecase.StaffUseCase
	WebhookUC   *usecase.WebhookUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público, /me requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (lectura para todos; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireAdmin(), productHandler.Create)
	products.Put("/:id", RequireAdmin(), productHandler.Update)
	products.Delete("/:id", RequireAdmin(), productHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.ReceiptUC)
	sales.Post("/checkout", saleHandler.Checkout)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Shifts (protegido)
	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Post("/clock-in", shiftHandler.ClockIn)
	shifts.Post("/:id/clock-out", shiftHandler.ClockOut)
	shifts.Get("/current", shiftHandler.Current)
	shifts.Get("/recent", shiftHandler.Recent)

	// Staff (solo admin)
	staff := protected.Group("/staff", RequireAdmin())
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", staffHandler.List)
	staff.Post("/", staffHandler.Create)
	staff.Put("/:id", staffHandler.Update)

	// Webhooks (solo admin)
	webhooks := protected.Group("/webhooks", RequireAdmin())
	webhookHandler := NewWebhookHandler(deps.WebhookUC)
	webhooks.Post("/", webhookHandler.Create)
	webhooks.Get("/", webhookHandler.List)
	webhooks.Put("/:id/active", webhookHandler.SetActive)
	webhooks.Delete("/:id", webhookHandler.Delete)

	// Dashboard (solo admin)
	dashboard := protected.Group("/dashboard", RequireAdmin())
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/daily-revenue", dashboardHandler.DailyRevenue)
	dashboard.Get("/top-products", dashboardHandler.TopProducts)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
