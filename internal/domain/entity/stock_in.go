package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIn es el evento inmutable de ingreso de mercancía desde un proveedor.
// Una vez creado no se modifica; la única compensación posible es un
// SupplierReturn posterior.
type StockIn struct {
	ID          string
	DrugID      string
	SupplierID  string
	WarehouseID string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Date        time.Time
	EmployeeID  string
	Remark      string
	CreatedAt   time.Time
}
