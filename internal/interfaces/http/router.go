package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmonitor/internal/application/accounts"
	"github.com/jhoicas/stockmonitor/internal/application/auth"
	"github.com/jhoicas/stockmonitor/internal/application/shop"
	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	"github.com/jhoicas/stockmonitor/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AccountUC   *accounts.AccountUseCase
	StockUC     *appstock.StockUseCase
	DashboardUC *appstock.DashboardUseCase
	TransferUC  *appstock.TransferUseCase
	CartUC      *shop.CartUseCase
	JWTSecret   string
	// LoginMax intentos de login por IP y minuto; 0 = sin límite.
	LoginMax int
}

// Router registra las rutas de la API. Cada consola queda detrás de su conjunto de roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)

	// Auth (público salvo password y me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	if deps.LoginMax > 0 {
		authGroup.Post("/login", LoginLimiter(deps.LoginMax, time.Minute), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Put("/password", authMW, authHandler.ChangePassword)
	authGroup.Get("/me", authMW, authHandler.Me)

	accountHandler := NewAccountHandler(deps.AccountUC, deps.AuthUC)

	// Consola de administración
	admin := api.Group("/admin", authMW, RequireRole(string(entity.RoleAdmin)))
	admin.Get("/accounts", accountHandler.List)
	admin.Post("/accounts/:id/approve", accountHandler.Approve)
	admin.Post("/accounts/:id/reject", accountHandler.Reject)
	admin.Delete("/accounts/:id", accountHandler.Delete)

	// Consola de staff (supervisor y admin también acceden)
	staffRoles := []string{string(entity.RoleStaff), string(entity.RoleSupervisor), string(entity.RoleAdmin)}
	staff := api.Group("/staff", authMW, RequireRole(staffRoles...))
	staff.Get("/customers", accountHandler.ListCustomers)
	staff.Post("/customers", accountHandler.RegisterCustomer)
	staff.Get("/tasks", accountHandler.Tasks)
	staff.Post("/role-request", accountHandler.RequestRoleChange)

	// Consola de clientes
	shopGroup := api.Group("/shop", authMW, RequireRole(string(entity.RoleCustomer)))
	shopHandler := NewShopHandler(deps.CartUC)
	shopGroup.Get("/products", shopHandler.Products)
	shopGroup.Get("/categories", shopHandler.Categories)
	shopGroup.Get("/cart", shopHandler.Cart)
	shopGroup.Post("/cart", shopHandler.AddToCart)
	shopGroup.Delete("/cart", shopHandler.Clear)
	shopGroup.Delete("/cart/:id", shopHandler.RemoveLine)

	// Monitor de stock
	stockGroup := api.Group("/stock", authMW, RequireRole(staffRoles...))
	stockHandler := NewStockHandler(deps.StockUC, deps.DashboardUC, deps.TransferUC)
	stockGroup.Get("/items", stockHandler.List)
	stockGroup.Post("/items", stockHandler.Create)
	stockGroup.Get("/items/:sku", stockHandler.Get)
	stockGroup.Put("/items/:sku", stockHandler.Update)
	stockGroup.Delete("/items/:sku", stockHandler.Delete)
	stockGroup.Get("/categories", stockHandler.Categories)
	stockGroup.Get("/dashboard", stockHandler.Dashboard)
	stockGroup.Post("/import", stockHandler.Import)
	stockGroup.Get("/export", stockHandler.Export)
	stockGroup.Get("/report.pdf", stockHandler.ReportPDF)
}
