package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/audit"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	appfinance "github.com/jhoicas/Farmacia-api/internal/application/finance"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Farmacia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	drugRepo := postgres.NewDrugRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	stockInRepo := postgres.NewStockInRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	supplierReturnRepo := postgres.NewSupplierReturnRepository(pool)
	salesReturnRepo := postgres.NewSalesReturnRepository(pool)
	checkRepo := postgres.NewInventoryCheckRepository(pool)
	financeStatRepo := postgres.NewFinanceStatRepository(pool)
	financeTotalsRepo := postgres.NewFinanceTotalsRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	systemLogRepo := postgres.NewSystemLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditor := audit.NewRecorder(systemLogRepo, log)
	policy := ledger.Policy{
		CumulativeSalesReturnBound: cfg.Ledger.CumulativeSalesReturnBound,
		StrictSalesReturnInventory: cfg.Ledger.StrictSalesReturnInventory,
	}

	ledgerUC := ledger.NewUseCase(txRunner, drugRepo, supplierRepo, customerRepo, warehouseRepo, auditor, policy)
	checkUC := ledger.NewCheckUseCase(txRunner, drugRepo, warehouseRepo, auditor)
	ledgerQueryUC := ledger.NewQueryUseCase(
		inventoryRepo, stockInRepo, saleRepo,
		supplierReturnRepo, salesReturnRepo, checkRepo,
	)

	drugUC := usecase.NewDrugUseCase(drugRepo, auditor)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, auditor)
	customerUC := usecase.NewCustomerUseCase(customerRepo, auditor)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, auditor)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, employeeRepo, auditor)
	maintenanceUC := usecase.NewMaintenanceUseCase(txRunner, financeStatRepo, auditor)

	financeUC := appfinance.NewUseCase(financeTotalsRepo, financeStatRepo)
	reportUC := appfinance.NewReportUseCase(financeUC, infrapdf.NewMarotoReportGenerator())
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)
	authUC := auth.NewUseCase(employeeRepo, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		DrugUC:        drugUC,
		EmployeeUC:    employeeUC,
		CustomerUC:    customerUC,
		SupplierUC:    supplierUC,
		WarehouseUC:   warehouseUC,
		MaintenanceUC: maintenanceUC,
		LedgerUC:      ledgerUC,
		CheckUC:       checkUC,
		LedgerQueryUC: ledgerQueryUC,
		FinanceUC:     financeUC,
		ReportUC:      reportUC,
		DashboardUC:   dashboardUC,
		AuditRecorder: auditor,
		JWTSecret:     cfg.JWT.Secret,
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
