package dto

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// CreateCustomerRequest datos para registrar un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"` // RETAIL | WHOLESALE
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest datos para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Type    *string `json:"type,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// CustomerResponse representación de un cliente en la API.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewCustomerResponse convierte la entidad a su representación de API.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Type:    c.Type,
		Contact: c.Contact,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// NewCustomerResponseList convierte una lista de entidades.
func NewCustomerResponseList(customers []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, NewCustomerResponse(c))
	}
	return out
}
