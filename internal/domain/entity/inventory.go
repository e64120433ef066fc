package entity

import "time"

// DefaultLocation ubicación asignada cuando se crea la fila de inventario
// en el primer ingreso de un medicamento a una bodega.
const DefaultLocation = "A-01"

// Inventory es el agregado mutable de existencias por (medicamento, bodega).
// Quantity nunca puede quedar negativa; la fila se crea perezosamente en el
// primer ingreso y solo la modifica el motor de eventos o un conteo físico.
type Inventory struct {
	ID            string
	DrugID        string
	WarehouseID   string
	Quantity      int64
	Location      string
	LastCheckDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
