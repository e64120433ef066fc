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

// EmployeeRepository implementación PostgreSQL de empleados.
type EmployeeRepository struct {
	db Querier
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)

// NewEmployeeRepository crea el repositorio de empleados.
func NewEmployeeRepository(db Querier) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, name, department, position, phone, hire_date,
	account, password_hash, role, status, created_at, updated_at`

func (r *EmployeeRepository) Create(employee *entity.Employee) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO employees (id, name, department, position, phone, hire_date,
			account, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		employee.ID, employee.Name, employee.Department, employee.Position,
		employee.Phone, employee.HireDate, employee.Account, employee.PasswordHash,
		employee.Role, employee.Status, employee.CreatedAt, employee.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: cuenta %q", domain.ErrDuplicate, employee.Account)
	}
	return err
}

func (r *EmployeeRepository) GetByID(id string) (*entity.Employee, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	return scanEmployee(row)
}

func (r *EmployeeRepository) GetByAccount(account string) (*entity.Employee, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE account = $1`, account)
	return scanEmployee(row)
}

func (r *EmployeeRepository) List(limit, offset int) ([]*entity.Employee, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM employees ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) Update(employee *entity.Employee) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE employees SET name = $2, department = $3, position = $4, phone = $5,
			hire_date = $6, password_hash = $7, role = $8, status = $9, updated_at = $10
		WHERE id = $1`,
		employee.ID, employee.Name, employee.Department, employee.Position,
		employee.Phone, employee.HireDate, employee.PasswordHash, employee.Role,
		employee.Status, employee.UpdatedAt,
	)
	return err
}

func (r *EmployeeRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: el empleado tiene registros asociados", domain.ErrConflict)
	}
	return err
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Department, &e.Position, &e.Phone,
		&e.HireDate, &e.Account, &e.PasswordHash, &e.Role, &e.Status,
		&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
