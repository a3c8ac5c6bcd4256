package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gestion-pro/internal/application/analytics"
	"github.com/jhoicas/gestion-pro/internal/application/auth"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SaleUC      *usecase.SaleUseCase
	SettingsUC  *usecase.SettingsUseCase
	ExportUC    *usecase.ExportUseCase
	InsightUC   *usecase.InsightUseCase
	ActivityUC  *usecase.ActivityUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportsUC   *appanalytics.ReportsUseCase
	Receipts    ports.ReceiptGenerator
	ShopName    string
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/remembered", authHandler.Remembered)

	// Rutas protegidas (requieren Bearer Token y sesión vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.Session)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/search", productHandler.Search)
	products.Get("/categories", productHandler.Categories)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Exportaciones CSV
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/inventory/export.csv", exportHandler.Inventory)
	protected.Get("/sales/export.csv", exportHandler.Sales)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Receipts, deps.ShopName)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Cart
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.SaleUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/", cartHandler.Add)
	cart.Delete("/", cartHandler.Clear)
	cart.Patch("/items/:productId", cartHandler.UpdateItem)
	cart.Post("/checkout", cartHandler.Checkout)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.InsightUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/insights", dashboardHandler.GetInsights)

	// Reports y bitácora
	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.ActivityUC)
	protected.Get("/reports", reportsHandler.GetReports)
	protected.Get("/activity", reportsHandler.ListActivity)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/payment-methods", settingsHandler.PaymentMethods)
	settings.Post("/payment-methods/toggle", settingsHandler.Toggle)
	settings.Post("/payment-methods/custom", settingsHandler.AddCustom)
	settings.Delete("/payment-methods/custom/:name", settingsHandler.RemoveCustom)
	settings.Post("/password", authHandler.ChangePassword)
	settings.Delete("/data", RequireRole(entity.RoleAdmin), settingsHandler.ClearData)
}
