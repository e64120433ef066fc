package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SaleRepository implementación PostgreSQL del historial de ventas.
type SaleRepository struct {
	db Querier
}

var _ repository.SaleRepository = (*SaleRepository)(nil)

// NewSaleRepository crea el repositorio de ventas.
func NewSaleRepository(db Querier) *SaleRepository {
	return &SaleRepository{db: db}
}

const saleColumns = `id, drug_id, customer_id, warehouse_id, quantity, date, employee_id, created_at`

func (r *SaleRepository) Create(sale *entity.Sale) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO sales (id, drug_id, customer_id, warehouse_id, quantity, date, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sale.ID, sale.DrugID, sale.CustomerID, sale.WarehouseID, sale.Quantity,
		sale.Date, sale.EmployeeID, sale.CreatedAt,
	)
	return err
}

func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	return scanSale(row)
}

func (r *SaleRepository) List(limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales
		ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, sale)
	}
	return items, rows.Err()
}

func (r *SaleRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM sales`)
	return err
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.DrugID, &s.CustomerID, &s.WarehouseID, &s.Quantity,
		&s.Date, &s.EmployeeID, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
