package postgres

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// InventoryCheckRepository implementación PostgreSQL del historial de conteos.
type InventoryCheckRepository struct {
	db Querier
}

var _ repository.InventoryCheckRepository = (*InventoryCheckRepository)(nil)

// NewInventoryCheckRepository crea el repositorio de conteos.
func NewInventoryCheckRepository(db Querier) *InventoryCheckRepository {
	return &InventoryCheckRepository{db: db}
}

func (r *InventoryCheckRepository) Create(check *entity.InventoryCheck) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO inventory_checks (id, drug_id, warehouse_id, checked_quantity,
			actual_quantity, diff_reason, date, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		check.ID, check.DrugID, check.WarehouseID, check.CheckedQuantity,
		check.ActualQuantity, check.DiffReason, check.Date, check.EmployeeID, check.CreatedAt,
	)
	return err
}

func (r *InventoryCheckRepository) List(limit, offset int) ([]*entity.InventoryCheck, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, drug_id, warehouse_id, checked_quantity, actual_quantity,
			diff_reason, date, employee_id, created_at
		FROM inventory_checks
		ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.InventoryCheck
	for rows.Next() {
		var check entity.InventoryCheck
		if err := rows.Scan(&check.ID, &check.DrugID, &check.WarehouseID,
			&check.CheckedQuantity, &check.ActualQuantity, &check.DiffReason,
			&check.Date, &check.EmployeeID, &check.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &check)
	}
	return items, rows.Err()
}

func (r *InventoryCheckRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM inventory_checks`)
	return err
}
