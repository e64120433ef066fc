package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// WarehouseRepository implementación PostgreSQL de bodegas.
type WarehouseRepository struct {
	db Querier
}

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// NewWarehouseRepository crea el repositorio de bodegas.
func NewWarehouseRepository(db Querier) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

const warehouseColumns = `id, name, address, manager_id, created_at, updated_at`

func (r *WarehouseRepository) Create(warehouse *entity.Warehouse) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO warehouses (id, name, address, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.ManagerID,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: bodega %q", domain.ErrDuplicate, warehouse.Name)
	}
	return err
}

func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, id)
	return scanWarehouse(row)
}

func (r *WarehouseRepository) GetByName(name string) (*entity.Warehouse, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses WHERE name = $1`, name)
	return scanWarehouse(row)
}

func (r *WarehouseRepository) List(limit, offset int) ([]*entity.Warehouse, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*entity.Warehouse
	for rows.Next() {
		warehouse, err := scanWarehouse(rows)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}

func (r *WarehouseRepository) Update(warehouse *entity.Warehouse) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE warehouses SET name = $2, address = $3, manager_id = $4, updated_at = $5
		WHERE id = $1`,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.ManagerID,
		warehouse.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: bodega %q", domain.ErrDuplicate, warehouse.Name)
	}
	return err
}

func (r *WarehouseRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: la bodega tiene movimientos registrados", domain.ErrConflict)
	}
	return err
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.ManagerID, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}
