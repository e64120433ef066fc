package entity

import "time"

// SalesReturn es el evento de devolución de un cliente, referido a una venta
// concreta y acotado por la cantidad vendida en ella.
type SalesReturn struct {
	ID          string
	SaleID      string
	WarehouseID string
	Quantity    int64
	Reason      string
	Date        time.Time
	EmployeeID  string
	CreatedAt   time.Time
}
