package ledger

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// Repos agrupa los repositorios con alcance de transacción que el motor de
// eventos necesita. TxRunner los construye sobre la misma tx para que lectura,
// bloqueo y escritura sean atómicos.
type Repos struct {
	Inventory       repository.InventoryRepository
	StockIns        repository.StockInRepository
	Sales           repository.SaleRepository
	SupplierReturns repository.SupplierReturnRepository
	SalesReturns    repository.SalesReturnRepository
	Checks          repository.InventoryCheckRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn retorna error la
// transacción se revierte; si retorna nil se confirma.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// Auditor registra entradas en la bitácora después de confirmar la
// transacción. La implementación es best-effort: un fallo de bitácora nunca
// revierte la operación de negocio.
type Auditor interface {
	Record(employeeID, action, table, detail string)
}

// Policy controla las reglas opcionales del motor. Los ceros reproducen el
// comportamiento histórico del sistema.
type Policy struct {
	// CumulativeSalesReturnBound acota las devoluciones de venta por la
	// cantidad restante de la venta (vendido − ya devuelto) en vez de por la
	// cantidad vendida a secas.
	CumulativeSalesReturnBound bool
	// StrictSalesReturnInventory rechaza la devolución de venta si no existe
	// fila de inventario para (medicamento, bodega), en vez de crearla.
	StrictSalesReturnInventory bool
}
