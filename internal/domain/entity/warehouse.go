package entity

import "time"

// Warehouse representa una bodega de la farmacia. Name es único y ManagerID
// referencia al empleado responsable.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	ManagerID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
