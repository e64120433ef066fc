package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// StockInInput datos para registrar un ingreso de mercancía.
type StockInInput struct {
	DrugID      string
	SupplierID  string
	WarehouseID string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Date        time.Time
	EmployeeID  string
	Remark      string
}

// SaleInput datos para registrar una venta.
type SaleInput struct {
	DrugID      string
	CustomerID  string
	WarehouseID string
	Quantity    int64
	Date        time.Time
	EmployeeID  string
}

// SupplierReturnInput datos para registrar una devolución a proveedor.
type SupplierReturnInput struct {
	DrugID      string
	SupplierID  string
	WarehouseID string
	Quantity    int64
	Reason      string
	Date        time.Time
	EmployeeID  string
}

// SalesReturnInput datos para registrar una devolución de venta. La bodega se
// toma de la venta original.
type SalesReturnInput struct {
	SaleID     string
	Quantity   int64
	Reason     string
	Date       time.Time
	EmployeeID string
}

// UseCase es el motor de eventos de inventario. Cada operación registra un
// evento inmutable y ajusta las existencias en la misma transacción; las
// existencias nunca quedan negativas.
type UseCase struct {
	tx         TxRunner
	drugs      repository.DrugRepository
	suppliers  repository.SupplierRepository
	customers  repository.CustomerRepository
	warehouses repository.WarehouseRepository
	auditor    Auditor
	policy     Policy
}

// NewUseCase crea el motor de eventos con sus dependencias.
func NewUseCase(
	tx TxRunner,
	drugs repository.DrugRepository,
	suppliers repository.SupplierRepository,
	customers repository.CustomerRepository,
	warehouses repository.WarehouseRepository,
	auditor Auditor,
	policy Policy,
) *UseCase {
	return &UseCase{
		tx:         tx,
		drugs:      drugs,
		suppliers:  suppliers,
		customers:  customers,
		warehouses: warehouses,
		auditor:    auditor,
		policy:     policy,
	}
}

// RegisterStockIn registra un ingreso desde proveedor y suma la cantidad a las
// existencias. Si no existe fila de inventario para (medicamento, bodega) la
// crea con la ubicación por defecto.
func (uc *UseCase) RegisterStockIn(ctx context.Context, in StockInInput) (*entity.StockIn, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	if err := uc.requireDrug(in.DrugID); err != nil {
		return nil, err
	}
	if err := uc.requireSupplier(in.SupplierID); err != nil {
		return nil, err
	}
	if err := uc.requireWarehouse(in.WarehouseID); err != nil {
		return nil, err
	}

	now := time.Now()
	stockIn := &entity.StockIn{
		ID:          uuid.NewString(),
		DrugID:      in.DrugID,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TotalPrice:  in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)),
		Date:        eventDate(in.Date, now),
		EmployeeID:  in.EmployeeID,
		Remark:      in.Remark,
		CreatedAt:   now,
	}

	err := uc.tx.Run(ctx, func(r Repos) error {
		inv, err := r.Inventory.GetForUpdate(in.DrugID, in.WarehouseID)
		if err != nil {
			return fmt.Errorf("error al bloquear inventario: %w", err)
		}
		if inv == nil {
			inv = &entity.Inventory{
				ID:          uuid.NewString(),
				DrugID:      in.DrugID,
				WarehouseID: in.WarehouseID,
				Quantity:    in.Quantity,
				Location:    entity.DefaultLocation,
				CreatedAt:   now,
			}
		} else {
			inv.Quantity += in.Quantity
		}
		inv.UpdatedAt = now
		if err := r.Inventory.Upsert(inv); err != nil {
			return fmt.Errorf("error al actualizar inventario: %w", err)
		}
		return r.StockIns.Create(stockIn)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(in.EmployeeID, entity.ActionCreate, "stock_ins",
		fmt.Sprintf("ingreso registrado: medicamento=%s bodega=%s cantidad=%d", in.DrugID, in.WarehouseID, in.Quantity))
	return stockIn, nil
}

// RegisterSale registra una venta y descuenta la cantidad de las existencias.
// Si las existencias son insuficientes no se persiste nada.
func (uc *UseCase) RegisterSale(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if err := uc.requireDrug(in.DrugID); err != nil {
		return nil, err
	}
	if err := uc.requireCustomer(in.CustomerID); err != nil {
		return nil, err
	}
	if err := uc.requireWarehouse(in.WarehouseID); err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.NewString(),
		DrugID:      in.DrugID,
		CustomerID:  in.CustomerID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Date:        eventDate(in.Date, now),
		EmployeeID:  in.EmployeeID,
		CreatedAt:   now,
	}

	err := uc.tx.Run(ctx, func(r Repos) error {
		inv, err := r.Inventory.GetForUpdate(in.DrugID, in.WarehouseID)
		if err != nil {
			return fmt.Errorf("error al bloquear inventario: %w", err)
		}
		if inv == nil || inv.Quantity < in.Quantity {
			return fmt.Errorf("%w: disponible=%d solicitado=%d",
				domain.ErrInsufficientStock, availableQuantity(inv), in.Quantity)
		}
		inv.Quantity -= in.Quantity
		inv.UpdatedAt = now
		if err := r.Inventory.Upsert(inv); err != nil {
			return fmt.Errorf("error al actualizar inventario: %w", err)
		}
		return r.Sales.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(in.EmployeeID, entity.ActionCreate, "sales",
		fmt.Sprintf("venta registrada: medicamento=%s bodega=%s cantidad=%d", in.DrugID, in.WarehouseID, in.Quantity))
	return sale, nil
}

// RegisterSupplierReturn registra una devolución a proveedor y descuenta la
// cantidad de las existencias. La suma histórica de devoluciones por
// (medicamento, proveedor) nunca puede superar la suma de ingresos.
func (uc *UseCase) RegisterSupplierReturn(ctx context.Context, in SupplierReturnInput) (*entity.SupplierReturn, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if err := uc.requireDrug(in.DrugID); err != nil {
		return nil, err
	}
	if err := uc.requireSupplier(in.SupplierID); err != nil {
		return nil, err
	}
	if err := uc.requireWarehouse(in.WarehouseID); err != nil {
		return nil, err
	}

	now := time.Now()
	ret := &entity.SupplierReturn{
		ID:          uuid.NewString(),
		DrugID:      in.DrugID,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Date:        eventDate(in.Date, now),
		EmployeeID:  in.EmployeeID,
		CreatedAt:   now,
	}

	err := uc.tx.Run(ctx, func(r Repos) error {
		inv, err := r.Inventory.GetForUpdate(in.DrugID, in.WarehouseID)
		if err != nil {
			return fmt.Errorf("error al bloquear inventario: %w", err)
		}
		if inv == nil || inv.Quantity < in.Quantity {
			return fmt.Errorf("%w: disponible=%d solicitado=%d",
				domain.ErrInsufficientStock, availableQuantity(inv), in.Quantity)
		}

		purchased, err := r.StockIns.SumQuantityByDrugAndSupplier(in.DrugID, in.SupplierID)
		if err != nil {
			return fmt.Errorf("error al sumar ingresos: %w", err)
		}
		returned, err := r.SupplierReturns.SumQuantityByDrugAndSupplier(in.DrugID, in.SupplierID)
		if err != nil {
			return fmt.Errorf("error al sumar devoluciones: %w", err)
		}
		if returned+in.Quantity > purchased {
			return fmt.Errorf("%w: comprado=%d ya devuelto=%d solicitado=%d",
				domain.ErrOverReturn, purchased, returned, in.Quantity)
		}

		inv.Quantity -= in.Quantity
		inv.UpdatedAt = now
		if err := r.Inventory.Upsert(inv); err != nil {
			return fmt.Errorf("error al actualizar inventario: %w", err)
		}
		return r.SupplierReturns.Create(ret)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(in.EmployeeID, entity.ActionCreate, "supplier_returns",
		fmt.Sprintf("devolución a proveedor registrada: medicamento=%s proveedor=%s cantidad=%d", in.DrugID, in.SupplierID, in.Quantity))
	return ret, nil
}

// RegisterSalesReturn registra una devolución de cliente contra una venta
// concreta y suma la cantidad de vuelta a las existencias de la bodega de la
// venta. La cantidad devuelta está acotada por la cantidad vendida.
func (uc *UseCase) RegisterSalesReturn(ctx context.Context, in SalesReturnInput) (*entity.SalesReturn, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}

	now := time.Now()
	ret := &entity.SalesReturn{
		ID:         uuid.NewString(),
		SaleID:     in.SaleID,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		Date:       eventDate(in.Date, now),
		EmployeeID: in.EmployeeID,
		CreatedAt:  now,
	}

	err := uc.tx.Run(ctx, func(r Repos) error {
		sale, err := r.Sales.GetByID(in.SaleID)
		if err != nil {
			return fmt.Errorf("error al consultar venta: %w", err)
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, in.SaleID)
		}
		ret.WarehouseID = sale.WarehouseID

		limit := sale.Quantity
		if uc.policy.CumulativeSalesReturnBound {
			returned, err := r.SalesReturns.SumQuantityBySale(in.SaleID)
			if err != nil {
				return fmt.Errorf("error al sumar devoluciones de la venta: %w", err)
			}
			limit -= returned
		}
		if in.Quantity > limit {
			return fmt.Errorf("%w: vendido=%d tope=%d solicitado=%d",
				domain.ErrOverReturn, sale.Quantity, limit, in.Quantity)
		}

		inv, err := r.Inventory.GetForUpdate(sale.DrugID, sale.WarehouseID)
		if err != nil {
			return fmt.Errorf("error al bloquear inventario: %w", err)
		}
		if inv == nil {
			if uc.policy.StrictSalesReturnInventory {
				return fmt.Errorf("%w: no existe inventario para medicamento=%s bodega=%s",
					domain.ErrConflict, sale.DrugID, sale.WarehouseID)
			}
			inv = &entity.Inventory{
				ID:          uuid.NewString(),
				DrugID:      sale.DrugID,
				WarehouseID: sale.WarehouseID,
				Quantity:    in.Quantity,
				Location:    entity.DefaultLocation,
				CreatedAt:   now,
			}
		} else {
			inv.Quantity += in.Quantity
		}
		inv.UpdatedAt = now
		if err := r.Inventory.Upsert(inv); err != nil {
			return fmt.Errorf("error al actualizar inventario: %w", err)
		}
		return r.SalesReturns.Create(ret)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(in.EmployeeID, entity.ActionCreate, "sales_returns",
		fmt.Sprintf("devolución de venta registrada: venta=%s cantidad=%d", in.SaleID, in.Quantity))
	return ret, nil
}

func (uc *UseCase) requireDrug(id string) error {
	drug, err := uc.drugs.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al consultar medicamento: %w", err)
	}
	if drug == nil {
		return fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, id)
	}
	return nil
}

func (uc *UseCase) requireSupplier(id string) error {
	s, err := uc.suppliers.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al consultar proveedor: %w", err)
	}
	if s == nil {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return nil
}

func (uc *UseCase) requireCustomer(id string) error {
	c, err := uc.customers.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al consultar cliente: %w", err)
	}
	if c == nil {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return nil
}

func (uc *UseCase) requireWarehouse(id string) error {
	w, err := uc.warehouses.GetByID(id)
	if err != nil {
		return fmt.Errorf("error al consultar bodega: %w", err)
	}
	if w == nil {
		return fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	return nil
}

func availableQuantity(inv *entity.Inventory) int64 {
	if inv == nil {
		return 0
	}
	return inv.Quantity
}

// eventDate devuelve la fecha declarada del evento o, si viene en cero, el
// instante actual.
func eventDate(d, now time.Time) time.Time {
	if d.IsZero() {
		return now
	}
	return d
}
