package entity

import "time"

// Estados de un empleado.
const (
	EmployeeStatusActive   = "ACTIVE"
	EmployeeStatusInactive = "INACTIVE"
)

// Roles de empleado para autorización.
const (
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleBodeguero = "bodeguero"
	RoleContador  = "contador"
)

// Employee representa un empleado de la farmacia. Account es único y se usa
// para login; PasswordHash es bcrypt.
type Employee struct {
	ID           string
	Name         string
	Department   string
	Position     string
	Phone        string
	HireDate     *time.Time
	Account      string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
