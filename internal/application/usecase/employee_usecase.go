package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// EmployeeUseCase gestiona los empleados y sus credenciales.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	auditor   ledger.Auditor
}

// NewEmployeeUseCase crea el caso de uso de empleados.
func NewEmployeeUseCase(employees repository.EmployeeRepository, auditor ledger.Auditor) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, auditor: auditor}
}

// Create registra un empleado. La cuenta es única; la contraseña se guarda
// como hash bcrypt.
func (uc *EmployeeUseCase) Create(req dto.CreateEmployeeRequest, actorID string) (*entity.Employee, error) {
	if req.Name == "" || req.Account == "" {
		return nil, fmt.Errorf("%w: nombre y cuenta son obligatorios", domain.ErrInvalidInput)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}
	if !validRole(req.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
	}
	hireDate, err := parseOptionalDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error al generar hash de contraseña: %w", err)
	}

	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Department:   req.Department,
		Position:     req.Position,
		Phone:        req.Phone,
		HireDate:     hireDate,
		Account:      req.Account,
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       entity.EmployeeStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.employees.Create(employee); err != nil {
		return nil, fmt.Errorf("error al crear empleado: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionCreate, "employees",
		fmt.Sprintf("empleado creado: %s (%s)", employee.Name, employee.Account))
	return employee, nil
}

// GetByID devuelve un empleado o ErrNotFound.
func (uc *EmployeeUseCase) GetByID(id string) (*entity.Employee, error) {
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar empleado: %w", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, id)
	}
	return employee, nil
}

// List devuelve una página de empleados.
func (uc *EmployeeUseCase) List(q dto.ListQuery) ([]*entity.Employee, error) {
	q.Normalize()
	return uc.employees.List(q.Limit, q.Offset)
}

// Update aplica cambios parciales a un empleado. La cuenta no es editable.
func (uc *EmployeeUseCase) Update(id string, req dto.UpdateEmployeeRequest, actorID string) (*entity.Employee, error) {
	employee, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		employee.Name = *req.Name
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.HireDate != nil {
		hireDate, err := parseOptionalDate(*req.HireDate)
		if err != nil {
			return nil, err
		}
		employee.HireDate = hireDate
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error al generar hash de contraseña: %w", err)
		}
		employee.PasswordHash = string(hash)
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *req.Role)
		}
		employee.Role = *req.Role
	}
	if req.Status != nil {
		if *req.Status != entity.EmployeeStatusActive && *req.Status != entity.EmployeeStatusInactive {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *req.Status)
		}
		employee.Status = *req.Status
	}

	employee.UpdatedAt = time.Now()
	if err := uc.employees.Update(employee); err != nil {
		return nil, fmt.Errorf("error al actualizar empleado: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionUpdate, "employees",
		fmt.Sprintf("empleado actualizado: %s (%s)", employee.Name, employee.Account))
	return employee, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id, actorID string) error {
	employee, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.employees.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar empleado: %w", err)
	}
	uc.auditor.Record(actorID, entity.ActionDelete, "employees",
		fmt.Sprintf("empleado eliminado: %s (%s)", employee.Name, employee.Account))
	return nil
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleVendedor, entity.RoleBodeguero, entity.RoleContador:
		return true
	}
	return false
}
