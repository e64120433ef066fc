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

// SupplierRepository implementación PostgreSQL de proveedores.
type SupplierRepository struct {
	db Querier
}

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// NewSupplierRepository crea el repositorio de proveedores.
func NewSupplierRepository(db Querier) *SupplierRepository {
	return &SupplierRepository{db: db}
}

const supplierColumns = `id, name, contact, phone, address, qualification_no, created_at, updated_at`

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO suppliers (id, name, contact, phone, address, qualification_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		supplier.ID, supplier.Name, supplier.Contact, supplier.Phone,
		supplier.Address, supplier.QualificationNo, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: proveedor %q", domain.ErrDuplicate, supplier.Name)
	}
	return err
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	return scanSupplier(row)
}

func (r *SupplierRepository) GetByName(name string) (*entity.Supplier, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE name = $1`, name)
	return scanSupplier(row)
}

func (r *SupplierRepository) List(limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE suppliers SET name = $2, contact = $3, phone = $4, address = $5,
			qualification_no = $6, updated_at = $7
		WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.Contact, supplier.Phone,
		supplier.Address, supplier.QualificationNo, supplier.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: proveedor %q", domain.ErrDuplicate, supplier.Name)
	}
	return err
}

func (r *SupplierRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: el proveedor tiene movimientos registrados", domain.ErrConflict)
	}
	return err
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.Address,
		&s.QualificationNo, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
