package dto

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// CreateSupplierRequest datos para registrar un proveedor.
type CreateSupplierRequest struct {
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	QualificationNo string `json:"qualification_no"`
}

// UpdateSupplierRequest datos para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name            *string `json:"name,omitempty"`
	Contact         *string `json:"contact,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Address         *string `json:"address,omitempty"`
	QualificationNo *string `json:"qualification_no,omitempty"`
}

// SupplierResponse representación de un proveedor en la API.
type SupplierResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	QualificationNo string `json:"qualification_no"`
}

// NewSupplierResponse convierte la entidad a su representación de API.
func NewSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:              s.ID,
		Name:            s.Name,
		Contact:         s.Contact,
		Phone:           s.Phone,
		Address:         s.Address,
		QualificationNo: s.QualificationNo,
	}
}

// NewSupplierResponseList convierte una lista de entidades.
func NewSupplierResponseList(suppliers []*entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, NewSupplierResponse(s))
	}
	return out
}
