package entity

import "time"

// InventoryCheck registra un conteo físico contra la cantidad esperada por el
// sistema para un (medicamento, bodega) en una fecha.
type InventoryCheck struct {
	ID              string
	DrugID          string
	WarehouseID     string
	CheckedQuantity int64 // cantidad que el sistema esperaba
	ActualQuantity  int64 // cantidad contada físicamente
	DiffReason      string
	Date            time.Time
	EmployeeID      string
	CreatedAt       time.Time
}
