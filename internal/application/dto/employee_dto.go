package dto

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// CreateEmployeeRequest datos para registrar un empleado.
type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hire_date,omitempty"` // YYYY-MM-DD
	Account    string `json:"account"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// UpdateEmployeeRequest datos para actualizar un empleado. La contraseña solo
// cambia si viene en la petición.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// EmployeeResponse representación de un empleado (nunca incluye el hash).
type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hire_date,omitempty"`
	Account    string `json:"account"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

// NewEmployeeResponse convierte la entidad a su representación de API.
func NewEmployeeResponse(e *entity.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		Phone:      e.Phone,
		Account:    e.Account,
		Role:       e.Role,
		Status:     e.Status,
	}
	if e.HireDate != nil {
		resp.HireDate = e.HireDate.Format(DateLayout)
	}
	return resp
}

// NewEmployeeResponseList convierte una lista de entidades.
func NewEmployeeResponseList(employees []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
