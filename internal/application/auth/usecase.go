package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// UseCase autentica empleados y emite tokens JWT.
type UseCase struct {
	employees repository.EmployeeRepository
	jwtCfg    config.JWTConfig
}

// NewUseCase crea el caso de uso de autenticación.
func NewUseCase(employees repository.EmployeeRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{employees: employees, jwtCfg: jwtCfg}
}

// Login valida credenciales y devuelve el token y el empleado. Cualquier
// fallo de credenciales devuelve ErrUnauthorized sin distinguir causa.
func (uc *UseCase) Login(account, password string) (string, *entity.Employee, error) {
	if account == "" || password == "" {
		return "", nil, fmt.Errorf("%w: cuenta y contraseña son obligatorias", domain.ErrInvalidInput)
	}

	employee, err := uc.employees.GetByAccount(account)
	if err != nil {
		return "", nil, fmt.Errorf("error al consultar empleado: %w", err)
	}
	if employee == nil || employee.Status != entity.EmployeeStatusActive {
		return "", nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
		}
		return "", nil, fmt.Errorf("error al verificar contraseña: %w", err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return "", nil, fmt.Errorf("error al generar token: %w", err)
	}
	return token, employee, nil
}
