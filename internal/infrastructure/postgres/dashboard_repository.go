package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// DashboardRepository implementación PostgreSQL de las consultas agregadas del
// tablero. Solo lectura; los valores monetarios se derivan del precio vigente
// del catálogo.
type DashboardRepository struct {
	db Querier
}

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

// NewDashboardRepository crea el repositorio del tablero.
func NewDashboardRepository(db Querier) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// SalesValueByDateRange suma el valor de las ventas con fecha en [from, to).
func (r *DashboardRepository) SalesValueByDateRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(s.quantity * d.sale_price), 0)
		FROM sales s
		JOIN drugs d ON d.id = s.drug_id
		WHERE s.date >= $1 AND s.date < $2`, from, to).Scan(&total)
	return total, err
}

func (r *DashboardRepository) TotalInventoryUnits(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM inventories`).Scan(&total)
	return total, err
}

func (r *DashboardRepository) LowStockCount(ctx context.Context, threshold int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventories WHERE quantity < $1`, threshold).Scan(&count)
	return count, err
}

func (r *DashboardRepository) TotalDrugs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&count)
	return count, err
}

// DailySalesTrend devuelve un punto por día con ventas en [from, to); los días
// sin ventas no aparecen en la serie.
func (r *DashboardRepository) DailySalesTrend(ctx context.Context, from, to time.Time) ([]repository.DailySalesPoint, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.date, COALESCE(SUM(s.quantity * d.sale_price), 0), COUNT(*)
		FROM sales s
		JOIN drugs d ON d.id = s.drug_id
		WHERE s.date >= $1 AND s.date < $2
		GROUP BY s.date
		ORDER BY s.date`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []repository.DailySalesPoint
	for rows.Next() {
		var p repository.DailySalesPoint
		if err := rows.Scan(&p.Date, &p.Value, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *DashboardRepository) TopDrugs(ctx context.Context, from *time.Time, limit int) ([]repository.TopDrugResult, error) {
	query := `
		SELECT s.drug_id, d.name, SUM(s.quantity), SUM(s.quantity * d.sale_price)
		FROM sales s
		JOIN drugs d ON d.id = s.drug_id`
	args := []any{limit}
	if from != nil {
		query += ` WHERE s.date >= $2`
		args = append(args, *from)
	}
	query += `
		GROUP BY s.drug_id, d.name
		ORDER BY SUM(s.quantity) DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []repository.TopDrugResult
	for rows.Next() {
		var t repository.TopDrugResult
		if err := rows.Scan(&t.DrugID, &t.Name, &t.Quantity, &t.Value); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

func (r *DashboardRepository) LowStockItems(ctx context.Context, threshold int64, limit int) ([]repository.LowStockItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.drug_id, d.name, d.unit, w.name, i.quantity, i.location
		FROM inventories i
		JOIN drugs d ON d.id = i.drug_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.quantity < $1
		ORDER BY i.quantity
		LIMIT $2`, threshold, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.DrugID, &item.DrugName, &item.Unit,
			&item.WarehouseName, &item.Quantity, &item.Location); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *DashboardRepository) InventoryStatusBuckets(ctx context.Context) (abundant, normal, low int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE quantity > 500),
			COUNT(*) FILTER (WHERE quantity BETWEEN 100 AND 500),
			COUNT(*) FILTER (WHERE quantity < 100)
		FROM inventories`).Scan(&abundant, &normal, &low)
	return abundant, normal, low, err
}
