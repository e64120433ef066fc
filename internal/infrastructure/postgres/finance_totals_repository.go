package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// FinanceTotalsRepository implementación PostgreSQL de las sumas brutas del
// día. El valor monetario se deriva del precio vigente del catálogo mediante
// join; las devoluciones de venta resuelven el medicamento vía la venta
// original.
type FinanceTotalsRepository struct {
	db Querier
}

var _ repository.FinanceTotalsRepository = (*FinanceTotalsRepository)(nil)

// NewFinanceTotalsRepository crea el repositorio de sumas brutas.
func NewFinanceTotalsRepository(db Querier) *FinanceTotalsRepository {
	return &FinanceTotalsRepository{db: db}
}

func (r *FinanceTotalsRepository) SalesTotalsByDate(ctx context.Context, date time.Time) (sales, cost decimal.Decimal, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(s.quantity * d.sale_price), 0),
			COALESCE(SUM(s.quantity * d.purchase_price), 0)
		FROM sales s
		JOIN drugs d ON d.id = s.drug_id
		WHERE s.date = $1`, date).Scan(&sales, &cost)
	return sales, cost, err
}

func (r *FinanceTotalsRepository) SalesReturnTotalsByDate(ctx context.Context, date time.Time) (sales, cost decimal.Decimal, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(sr.quantity * d.sale_price), 0),
			COALESCE(SUM(sr.quantity * d.purchase_price), 0)
		FROM sales_returns sr
		JOIN sales s ON s.id = sr.sale_id
		JOIN drugs d ON d.id = s.drug_id
		WHERE sr.date = $1`, date).Scan(&sales, &cost)
	return sales, cost, err
}
