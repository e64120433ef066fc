// seed pobla la base con datos iniciales de desarrollo: un administrador, un
// vendedor, proveedores, clientes, medicamentos, la bodega principal y un
// ingreso de mercancía inicial por medicamento.
//
// Uso: go run ./cmd/seed
// Es idempotente: si el registro ya existe (por cuenta o nombre) lo omite.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/application/audit"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	employeeRepo := postgres.NewEmployeeRepository(pool)
	drugRepo := postgres.NewDrugRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	systemLogRepo := postgres.NewSystemLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	auditor := audit.NewRecorder(systemLogRepo, log)
	engine := ledger.NewUseCase(txRunner, drugRepo, supplierRepo, customerRepo, warehouseRepo, auditor, ledger.Policy{})

	now := time.Now()

	// Empleados
	admin := seedEmployee(log, employeeRepo, &entity.Employee{
		Name:       "Administrador",
		Department: "Gerencia",
		Position:   "Administrador general",
		Account:    "admin",
		Role:       entity.RoleAdmin,
	}, "admin123")
	seedEmployee(log, employeeRepo, &entity.Employee{
		Name:       "Vendedor de mostrador",
		Department: "Ventas",
		Position:   "Vendedor",
		Account:    "vendedor",
		Role:       entity.RoleVendedor,
	}, "vendedor123")

	// Bodega principal
	warehouse := seedWarehouse(log, warehouseRepo, &entity.Warehouse{
		Name:      "Bodega principal",
		Address:   "Local principal",
		ManagerID: admin.ID,
	})

	// Proveedores
	supplier := seedSupplier(log, supplierRepo, &entity.Supplier{
		Name:            "Laboratorios Andinos",
		Contact:         "María Gómez",
		Phone:           "3001234567",
		Address:         "Bogotá",
		QualificationNo: "INVIMA-2020-0045",
	})
	seedSupplier(log, supplierRepo, &entity.Supplier{
		Name:    "Distribuidora Farmacéutica del Sur",
		Contact: "Carlos Pérez",
		Phone:   "3017654321",
		Address: "Cali",
	})

	// Clientes
	seedCustomer(log, customerRepo, &entity.Customer{
		Name: "Cliente de mostrador",
		Type: entity.CustomerTypeRetail,
	})
	seedCustomer(log, customerRepo, &entity.Customer{
		Name:    "Droguería La Esquina",
		Type:    entity.CustomerTypeWholesale,
		Contact: "Ana Ruiz",
		Phone:   "3109876543",
	})

	// Medicamentos con ingreso inicial
	drugs := []*entity.Drug{
		{
			Name:           "Acetaminofén 500mg",
			Spec:           "500mg x 24 tabletas",
			Manufacturer:   "Laboratorios Andinos",
			ApprovalNumber: "INVIMA-M-001234",
			Category:       "venta libre",
			Unit:           "caja",
			PurchasePrice:  decimal.NewFromFloat(3500),
			SalePrice:      decimal.NewFromFloat(5200),
		},
		{
			Name:           "Ibuprofeno 400mg",
			Spec:           "400mg x 20 tabletas",
			Manufacturer:   "Laboratorios Andinos",
			ApprovalNumber: "INVIMA-M-005678",
			Category:       "venta libre",
			Unit:           "caja",
			PurchasePrice:  decimal.NewFromFloat(4200),
			SalePrice:      decimal.NewFromFloat(6500),
		},
		{
			Name:           "Amoxicilina 500mg",
			Spec:           "500mg x 12 cápsulas",
			Manufacturer:   "Distribuidora Farmacéutica del Sur",
			ApprovalNumber: "INVIMA-M-009012",
			Category:       "con receta",
			Unit:           "caja",
			PurchasePrice:  decimal.NewFromFloat(8900),
			SalePrice:      decimal.NewFromFloat(12800),
		},
	}
	for _, d := range drugs {
		drug := seedDrug(log, drugRepo, d, now)
		if drug == nil {
			continue
		}
		_, err := engine.RegisterStockIn(ctx, ledger.StockInInput{
			DrugID:      drug.ID,
			SupplierID:  supplier.ID,
			WarehouseID: warehouse.ID,
			Quantity:    200,
			UnitPrice:   drug.PurchasePrice,
			EmployeeID:  admin.ID,
			Remark:      "ingreso inicial de datos de prueba",
		})
		if err != nil {
			log.Fatal().Err(err).Str("drug", drug.Name).Msg("ingreso inicial")
		}
		log.Info().Str("drug", drug.Name).Msg("ingreso inicial registrado")
	}

	log.Info().Msg("datos iniciales cargados")
}

func seedEmployee(log *logger.Logger, repo *postgres.EmployeeRepository, e *entity.Employee, password string) *entity.Employee {
	existing, err := repo.GetByAccount(e.Account)
	if err != nil {
		log.Fatal().Err(err).Str("account", e.Account).Msg("consultar empleado")
	}
	if existing != nil {
		log.Info().Str("account", e.Account).Msg("empleado ya existe, se omite")
		return existing
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	now := time.Now()
	e.ID = uuid.NewString()
	e.PasswordHash = string(hash)
	e.Status = entity.EmployeeStatusActive
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := repo.Create(e); err != nil {
		log.Fatal().Err(err).Str("account", e.Account).Msg("crear empleado")
	}
	log.Info().Str("account", e.Account).Str("role", e.Role).Msg("empleado creado")
	return e
}

func seedWarehouse(log *logger.Logger, repo *postgres.WarehouseRepository, w *entity.Warehouse) *entity.Warehouse {
	existing, err := repo.GetByName(w.Name)
	if err != nil {
		log.Fatal().Err(err).Str("name", w.Name).Msg("consultar bodega")
	}
	if existing != nil {
		log.Info().Str("name", w.Name).Msg("bodega ya existe, se omite")
		return existing
	}
	now := time.Now()
	w.ID = uuid.NewString()
	w.CreatedAt = now
	w.UpdatedAt = now
	if err := repo.Create(w); err != nil {
		log.Fatal().Err(err).Str("name", w.Name).Msg("crear bodega")
	}
	log.Info().Str("name", w.Name).Msg("bodega creada")
	return w
}

func seedSupplier(log *logger.Logger, repo *postgres.SupplierRepository, s *entity.Supplier) *entity.Supplier {
	existing, err := repo.GetByName(s.Name)
	if err != nil {
		log.Fatal().Err(err).Str("name", s.Name).Msg("consultar proveedor")
	}
	if existing != nil {
		log.Info().Str("name", s.Name).Msg("proveedor ya existe, se omite")
		return existing
	}
	now := time.Now()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	if err := repo.Create(s); err != nil {
		log.Fatal().Err(err).Str("name", s.Name).Msg("crear proveedor")
	}
	log.Info().Str("name", s.Name).Msg("proveedor creado")
	return s
}

func seedCustomer(log *logger.Logger, repo *postgres.CustomerRepository, c *entity.Customer) {
	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := repo.Create(c); err != nil {
		log.Warn().Err(err).Str("name", c.Name).Msg("crear cliente (posible duplicado, se omite)")
		return
	}
	log.Info().Str("name", c.Name).Msg("cliente creado")
}

func seedDrug(log *logger.Logger, repo *postgres.DrugRepository, d *entity.Drug, now time.Time) *entity.Drug {
	existing, err := repo.GetByName(d.Name)
	if err != nil {
		log.Fatal().Err(err).Str("name", d.Name).Msg("consultar medicamento")
	}
	if existing != nil {
		log.Info().Str("name", d.Name).Msg("medicamento ya existe, se omite")
		return nil
	}
	d.ID = uuid.NewString()
	d.Status = entity.DrugStatusOnSale
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := repo.Create(d); err != nil {
		log.Fatal().Err(err).Str("name", d.Name).Msg("crear medicamento")
	}
	log.Info().Str("name", d.Name).Msg("medicamento creado")
	return d
}
