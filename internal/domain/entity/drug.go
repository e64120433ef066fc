package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un medicamento en el catálogo.
const (
	DrugStatusOnSale       = "ON_SALE"
	DrugStatusDiscontinued = "DISCONTINUED"
)

// Drug representa un medicamento del catálogo de la farmacia.
// PurchasePrice/SalePrice son la fuente canónica de precios: los eventos de
// venta no guardan precio y los cálculos financieros lo derivan de aquí.
type Drug struct {
	ID             string
	Name           string
	Spec           string // presentación, ej. "0.25g x 24 tabletas"
	Manufacturer   string
	ApprovalNumber string
	Category       string // con receta / venta libre
	Unit           string // caja, frasco, blister
	PurchasePrice  decimal.Decimal
	SalePrice      decimal.Decimal
	ExpiryDate     *time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
