package postgres

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SalesReturnRepository implementación PostgreSQL de devoluciones de venta.
type SalesReturnRepository struct {
	db Querier
}

var _ repository.SalesReturnRepository = (*SalesReturnRepository)(nil)

// NewSalesReturnRepository crea el repositorio de devoluciones de venta.
func NewSalesReturnRepository(db Querier) *SalesReturnRepository {
	return &SalesReturnRepository{db: db}
}

func (r *SalesReturnRepository) Create(ret *entity.SalesReturn) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO sales_returns (id, sale_id, warehouse_id, quantity, reason, date, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ret.ID, ret.SaleID, ret.WarehouseID, ret.Quantity, ret.Reason,
		ret.Date, ret.EmployeeID, ret.CreatedAt,
	)
	return err
}

func (r *SalesReturnRepository) List(limit, offset int) ([]*entity.SalesReturn, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, sale_id, warehouse_id, quantity, reason, date, employee_id, created_at
		FROM sales_returns
		ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.SalesReturn
	for rows.Next() {
		var ret entity.SalesReturn
		if err := rows.Scan(&ret.ID, &ret.SaleID, &ret.WarehouseID, &ret.Quantity,
			&ret.Reason, &ret.Date, &ret.EmployeeID, &ret.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &ret)
	}
	return items, rows.Err()
}

func (r *SalesReturnRepository) SumQuantityBySale(saleID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM sales_returns WHERE sale_id = $1`,
		saleID).Scan(&total)
	return total, err
}

func (r *SalesReturnRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM sales_returns`)
	return err
}
