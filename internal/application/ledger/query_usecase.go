package ledger

import (
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// QueryUseCase expone las lecturas del motor: historiales de eventos y estado
// de existencias. Opera sobre el pool, fuera de transacción.
type QueryUseCase struct {
	inventory       repository.InventoryRepository
	stockIns        repository.StockInRepository
	sales           repository.SaleRepository
	supplierReturns repository.SupplierReturnRepository
	salesReturns    repository.SalesReturnRepository
	checks          repository.InventoryCheckRepository
}

// NewQueryUseCase crea las lecturas del motor de inventario.
func NewQueryUseCase(
	inventory repository.InventoryRepository,
	stockIns repository.StockInRepository,
	sales repository.SaleRepository,
	supplierReturns repository.SupplierReturnRepository,
	salesReturns repository.SalesReturnRepository,
	checks repository.InventoryCheckRepository,
) *QueryUseCase {
	return &QueryUseCase{
		inventory:       inventory,
		stockIns:        stockIns,
		sales:           sales,
		supplierReturns: supplierReturns,
		salesReturns:    salesReturns,
		checks:          checks,
	}
}

// GetInventory devuelve la fila de existencias de (medicamento, bodega) o
// ErrNotFound.
func (uc *QueryUseCase) GetInventory(drugID, warehouseID string) (*entity.Inventory, error) {
	inv, err := uc.inventory.Get(drugID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("error al consultar existencias: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: existencias para medicamento=%s bodega=%s",
			domain.ErrNotFound, drugID, warehouseID)
	}
	return inv, nil
}

// ListInventory devuelve una página de existencias.
func (uc *QueryUseCase) ListInventory(limit, offset int) ([]*entity.Inventory, error) {
	return uc.inventory.List(limit, offset)
}

// GetSale devuelve una venta o ErrNotFound.
func (uc *QueryUseCase) GetSale(id string) (*entity.Sale, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar venta: %w", err)
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
	}
	return sale, nil
}

// ListStockIns devuelve una página del historial de ingresos.
func (uc *QueryUseCase) ListStockIns(limit, offset int) ([]*entity.StockIn, error) {
	return uc.stockIns.List(limit, offset)
}

// ListSales devuelve una página del historial de ventas.
func (uc *QueryUseCase) ListSales(limit, offset int) ([]*entity.Sale, error) {
	return uc.sales.List(limit, offset)
}

// ListSupplierReturns devuelve una página del historial de devoluciones a
// proveedor.
func (uc *QueryUseCase) ListSupplierReturns(limit, offset int) ([]*entity.SupplierReturn, error) {
	return uc.supplierReturns.List(limit, offset)
}

// ListSalesReturns devuelve una página del historial de devoluciones de venta.
func (uc *QueryUseCase) ListSalesReturns(limit, offset int) ([]*entity.SalesReturn, error) {
	return uc.salesReturns.List(limit, offset)
}

// ListChecks devuelve una página del historial de conteos físicos.
func (uc *QueryUseCase) ListChecks(limit, offset int) ([]*entity.InventoryCheck, error) {
	return uc.checks.List(limit, offset)
}
