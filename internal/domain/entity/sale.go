package entity

import "time"

// Sale es el evento inmutable de venta a un cliente. No guarda precio: el
// valor monetario se deriva de Drug.SalePrice en el momento del cálculo
// (evita precios congelados al editar el catálogo).
type Sale struct {
	ID          string
	DrugID      string
	CustomerID  string
	WarehouseID string
	Quantity    int64
	Date        time.Time
	EmployeeID  string
	CreatedAt   time.Time
}
