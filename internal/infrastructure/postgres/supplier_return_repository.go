package postgres

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SupplierReturnRepository implementación PostgreSQL de devoluciones a
// proveedor.
type SupplierReturnRepository struct {
	db Querier
}

var _ repository.SupplierReturnRepository = (*SupplierReturnRepository)(nil)

// NewSupplierReturnRepository crea el repositorio de devoluciones a proveedor.
func NewSupplierReturnRepository(db Querier) *SupplierReturnRepository {
	return &SupplierReturnRepository{db: db}
}

func (r *SupplierReturnRepository) Create(ret *entity.SupplierReturn) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO supplier_returns (id, drug_id, supplier_id, warehouse_id, quantity,
			reason, date, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ret.ID, ret.DrugID, ret.SupplierID, ret.WarehouseID, ret.Quantity,
		ret.Reason, ret.Date, ret.EmployeeID, ret.CreatedAt,
	)
	return err
}

func (r *SupplierReturnRepository) List(limit, offset int) ([]*entity.SupplierReturn, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, drug_id, supplier_id, warehouse_id, quantity, reason, date, employee_id, created_at
		FROM supplier_returns
		ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*entity.SupplierReturn
	for rows.Next() {
		var ret entity.SupplierReturn
		if err := rows.Scan(&ret.ID, &ret.DrugID, &ret.SupplierID, &ret.WarehouseID,
			&ret.Quantity, &ret.Reason, &ret.Date, &ret.EmployeeID, &ret.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &ret)
	}
	return items, rows.Err()
}

func (r *SupplierReturnRepository) SumQuantityByDrugAndSupplier(drugID, supplierID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM supplier_returns
		WHERE drug_id = $1 AND supplier_id = $2`, drugID, supplierID).Scan(&total)
	return total, err
}

func (r *SupplierReturnRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM supplier_returns`)
	return err
}
