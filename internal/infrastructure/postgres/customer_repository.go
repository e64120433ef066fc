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

// CustomerRepository implementación PostgreSQL de clientes.
type CustomerRepository struct {
	db Querier
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// NewCustomerRepository crea el repositorio de clientes.
func NewCustomerRepository(db Querier) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, type, contact, phone, address, created_at, updated_at`

func (r *CustomerRepository) Create(customer *entity.Customer) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO customers (id, name, type, contact, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		customer.ID, customer.Name, customer.Type, customer.Contact,
		customer.Phone, customer.Address, customer.CreatedAt, customer.UpdatedAt,
	)
	return err
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (r *CustomerRepository) GetByPhone(phone string) (*entity.Customer, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE phone = $1`, phone)
	return scanCustomer(row)
}

func (r *CustomerRepository) List(limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(customer *entity.Customer) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE customers SET name = $2, type = $3, contact = $4, phone = $5,
			address = $6, updated_at = $7
		WHERE id = $1`,
		customer.ID, customer.Name, customer.Type, customer.Contact,
		customer.Phone, customer.Address, customer.UpdatedAt,
	)
	return err
}

func (r *CustomerRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: el cliente tiene ventas registradas", domain.ErrConflict)
	}
	return err
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Contact, &c.Phone, &c.Address,
		&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
