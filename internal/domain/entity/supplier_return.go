package entity

import "time"

// SupplierReturn es el evento de devolución de mercancía a un proveedor.
// Está acotado por lo comprado: la suma de devoluciones por
// (medicamento, proveedor) nunca puede superar la suma de ingresos.
type SupplierReturn struct {
	ID          string
	DrugID      string
	SupplierID  string
	WarehouseID string
	Quantity    int64
	Reason      string
	Date        time.Time
	EmployeeID  string
	CreatedAt   time.Time
}
