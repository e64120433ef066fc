package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// InventoryRepository implementación PostgreSQL de existencias por
// (medicamento, bodega).
type InventoryRepository struct {
	db Querier
}

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

// NewInventoryRepository crea el repositorio de existencias.
func NewInventoryRepository(db Querier) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, drug_id, warehouse_id, quantity, location, last_check_date, created_at, updated_at`

func (r *InventoryRepository) Get(drugID, warehouseID string) (*entity.Inventory, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+inventoryColumns+` FROM inventories WHERE drug_id = $1 AND warehouse_id = $2`,
		drugID, warehouseID)
	return scanInventory(row)
}

func (r *InventoryRepository) GetForUpdate(drugID, warehouseID string) (*entity.Inventory, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+inventoryColumns+` FROM inventories
		WHERE drug_id = $1 AND warehouse_id = $2 FOR UPDATE`,
		drugID, warehouseID)
	return scanInventory(row)
}

func (r *InventoryRepository) Upsert(inv *entity.Inventory) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO inventories (id, drug_id, warehouse_id, quantity, location, last_check_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (drug_id, warehouse_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			location = EXCLUDED.location,
			last_check_date = EXCLUDED.last_check_date,
			updated_at = EXCLUDED.updated_at`,
		inv.ID, inv.DrugID, inv.WarehouseID, inv.Quantity, inv.Location,
		inv.LastCheckDate, inv.CreatedAt, inv.UpdatedAt,
	)
	return err
}

func (r *InventoryRepository) List(limit, offset int) ([]*entity.Inventory, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+inventoryColumns+` FROM inventories
		ORDER BY drug_id, warehouse_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInventories(rows)
}

func (r *InventoryRepository) ListLowStock(threshold int64, limit int) ([]*entity.Inventory, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+inventoryColumns+` FROM inventories
		WHERE quantity < $1 ORDER BY quantity LIMIT $2`, threshold, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInventories(rows)
}

func (r *InventoryRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM inventories`)
	return err
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.DrugID, &inv.WarehouseID, &inv.Quantity,
		&inv.Location, &inv.LastCheckDate, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func collectInventories(rows pgx.Rows) ([]*entity.Inventory, error) {
	var items []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}
