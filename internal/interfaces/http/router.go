package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/audit"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/finance"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	DrugUC        *usecase.DrugUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	CustomerUC    *usecase.CustomerUseCase
	SupplierUC    *usecase.SupplierUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
	LedgerUC      *ledger.UseCase
	CheckUC       *ledger.CheckUseCase
	LedgerQueryUC *ledger.QueryUseCase
	FinanceUC     *finance.UseCase
	ReportUC      *finance.ReportUseCase
	DashboardUC   *analytics.DashboardUseCase
	AuditRecorder *audit.Recorder
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Drugs (protegido)
	drugs := protected.Group("/drugs")
	drugHandler := NewDrugHandler(deps.DrugUC)
	drugs.Post("/", drugHandler.Create)
	drugs.Get("/", drugHandler.List)
	drugs.Get("/:id", drugHandler.GetByID)
	drugs.Put("/:id", drugHandler.Update)
	drugs.Delete("/:id", drugHandler.Delete)

	// Employees (solo admin)
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Inventory: eventos y lecturas (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.CheckUC, deps.LedgerQueryUC)
	invGroup.Get("/", inventoryHandler.ListInventory)
	invGroup.Get("/stock", inventoryHandler.GetInventory)
	invGroup.Post("/stock-ins", inventoryHandler.RegisterStockIn)
	invGroup.Get("/stock-ins", inventoryHandler.ListStockIns)
	invGroup.Post("/sales", inventoryHandler.RegisterSale)
	invGroup.Get("/sales", inventoryHandler.ListSales)
	invGroup.Get("/sales/:id", inventoryHandler.GetSale)
	invGroup.Post("/supplier-returns", inventoryHandler.RegisterSupplierReturn)
	invGroup.Get("/supplier-returns", inventoryHandler.ListSupplierReturns)
	invGroup.Post("/sales-returns", inventoryHandler.RegisterSalesReturn)
	invGroup.Get("/sales-returns", inventoryHandler.ListSalesReturns)
	invGroup.Post("/checks", inventoryHandler.RecordCheck)
	invGroup.Get("/checks", inventoryHandler.ListChecks)

	// Finance: cierres diarios y mensuales (protegido)
	financeGroup := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC, deps.ReportUC)
	financeGroup.Post("/day/recompute", financeHandler.RecomputeDay)
	financeGroup.Get("/day", financeHandler.GetDay)
	financeGroup.Post("/month/recompute", financeHandler.RecomputeMonth)
	financeGroup.Get("/month", financeHandler.GetMonth)
	financeGroup.Get("/month/report", financeHandler.MonthlyReportPDF)
	financeGroup.Get("/week", financeHandler.WeeklySeries)

	// Dashboard (protegido, solo lectura)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/sales-trend", dashboardHandler.SalesTrend)
	dashboard.Get("/top-drugs", dashboardHandler.TopDrugs)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
	dashboard.Get("/inventory-status", dashboardHandler.InventoryStatus)

	// Admin: reinicio y bitácora (solo admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.MaintenanceUC, deps.AuditRecorder)
	admin.Post("/reset", adminHandler.Reset)
	admin.Get("/logs", adminHandler.ListLogs)
}
