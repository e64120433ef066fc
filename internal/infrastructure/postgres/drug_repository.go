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

// DrugRepository implementación PostgreSQL del catálogo de medicamentos.
type DrugRepository struct {
	db Querier
}

var _ repository.DrugRepository = (*DrugRepository)(nil)

// NewDrugRepository crea el repositorio de medicamentos.
func NewDrugRepository(db Querier) *DrugRepository {
	return &DrugRepository{db: db}
}

const drugColumns = `id, name, spec, manufacturer, approval_number, category, unit,
	purchase_price, sale_price, expiry_date, status, created_at, updated_at`

func (r *DrugRepository) Create(drug *entity.Drug) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO drugs (id, name, spec, manufacturer, approval_number, category, unit,
			purchase_price, sale_price, expiry_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		drug.ID, drug.Name, drug.Spec, drug.Manufacturer, drug.ApprovalNumber,
		drug.Category, drug.Unit, drug.PurchasePrice, drug.SalePrice,
		drug.ExpiryDate, drug.Status, drug.CreatedAt, drug.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: medicamento %q", domain.ErrDuplicate, drug.Name)
	}
	return err
}

func (r *DrugRepository) GetByID(id string) (*entity.Drug, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+drugColumns+` FROM drugs WHERE id = $1`, id)
	return scanDrug(row)
}

func (r *DrugRepository) GetByName(name string) (*entity.Drug, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+drugColumns+` FROM drugs WHERE name = $1`, name)
	return scanDrug(row)
}

func (r *DrugRepository) List(limit, offset int) ([]*entity.Drug, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+drugColumns+` FROM drugs ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drugs []*entity.Drug
	for rows.Next() {
		drug, err := scanDrug(rows)
		if err != nil {
			return nil, err
		}
		drugs = append(drugs, drug)
	}
	return drugs, rows.Err()
}

func (r *DrugRepository) Update(drug *entity.Drug) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE drugs SET name = $2, spec = $3, manufacturer = $4, approval_number = $5,
			category = $6, unit = $7, purchase_price = $8, sale_price = $9,
			expiry_date = $10, status = $11, updated_at = $12
		WHERE id = $1`,
		drug.ID, drug.Name, drug.Spec, drug.Manufacturer, drug.ApprovalNumber,
		drug.Category, drug.Unit, drug.PurchasePrice, drug.SalePrice,
		drug.ExpiryDate, drug.Status, drug.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: medicamento %q", domain.ErrDuplicate, drug.Name)
	}
	return err
}

func (r *DrugRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM drugs WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: el medicamento tiene movimientos registrados", domain.ErrConflict)
	}
	return err
}

func scanDrug(row pgx.Row) (*entity.Drug, error) {
	var d entity.Drug
	err := row.Scan(&d.ID, &d.Name, &d.Spec, &d.Manufacturer, &d.ApprovalNumber,
		&d.Category, &d.Unit, &d.PurchasePrice, &d.SalePrice,
		&d.ExpiryDate, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
