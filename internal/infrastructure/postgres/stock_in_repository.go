package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// StockInRepository implementación PostgreSQL del historial de ingresos.
type StockInRepository struct {
	db Querier
}

var _ repository.StockInRepository = (*StockInRepository)(nil)

// NewStockInRepository crea el repositorio de ingresos.
func NewStockInRepository(db Querier) *StockInRepository {
	return &StockInRepository{db: db}
}

const stockInColumns = `id, drug_id, supplier_id, warehouse_id, quantity,
	unit_price, total_price, date, employee_id, remark, created_at`

func (r *StockInRepository) Create(stockIn *entity.StockIn) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO stock_ins (id, drug_id, supplier_id, warehouse_id, quantity,
			unit_price, total_price, date, employee_id, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		stockIn.ID, stockIn.DrugID, stockIn.SupplierID, stockIn.WarehouseID,
		stockIn.Quantity, stockIn.UnitPrice, stockIn.TotalPrice, stockIn.Date,
		stockIn.EmployeeID, stockIn.Remark, stockIn.CreatedAt,
	)
	return err
}

func (r *StockInRepository) GetByID(id string) (*entity.StockIn, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+stockInColumns+` FROM stock_ins WHERE id = $1`, id)
	return scanStockIn(row)
}

func (r *StockInRepository) List(limit, offset int) ([]*entity.StockIn, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+stockInColumns+` FROM stock_ins
		ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.StockIn
	for rows.Next() {
		stockIn, err := scanStockIn(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, stockIn)
	}
	return items, rows.Err()
}

func (r *StockInRepository) SumQuantityByDrugAndSupplier(drugID, supplierID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_ins
		WHERE drug_id = $1 AND supplier_id = $2`, drugID, supplierID).Scan(&total)
	return total, err
}

func (r *StockInRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM stock_ins`)
	return err
}

func scanStockIn(row pgx.Row) (*entity.StockIn, error) {
	var s entity.StockIn
	err := row.Scan(&s.ID, &s.DrugID, &s.SupplierID, &s.WarehouseID, &s.Quantity,
		&s.UnitPrice, &s.TotalPrice, &s.Date, &s.EmployeeID, &s.Remark, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
