package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FinanceTotalsRepository expone las sumas brutas del día que alimentan al
// agregador financiero. El valor se deriva del precio vigente del medicamento
// (join con el catálogo), nunca de precios congelados en el evento.
type FinanceTotalsRepository interface {
	// SalesTotalsByDate devuelve Σ(cantidad × precio_venta) y
	// Σ(cantidad × precio_compra) de las ventas con fecha `date`.
	SalesTotalsByDate(ctx context.Context, date time.Time) (sales, cost decimal.Decimal, err error)
	// SalesReturnTotalsByDate igual, para devoluciones de venta con
	// return_date == date, resolviendo el medicamento vía la venta original.
	SalesReturnTotalsByDate(ctx context.Context, date time.Time) (sales, cost decimal.Decimal, err error)
}
