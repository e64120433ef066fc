package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia de empleados.
// GetByAccount se usa en login (Account es único).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByAccount(account string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
