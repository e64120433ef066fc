package entity

import "time"

// Tipos de cliente.
const (
	CustomerTypeRetail    = "RETAIL"
	CustomerTypeWholesale = "WHOLESALE"
)

// Customer representa un cliente de la farmacia (minorista o mayorista).
type Customer struct {
	ID        string
	Name      string
	Type      string
	Contact   string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
