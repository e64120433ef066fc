package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// CreateDrugRequest datos para registrar un medicamento en el catálogo.
type CreateDrugRequest struct {
	Name           string          `json:"name"`
	Spec           string          `json:"spec"`
	Manufacturer   string          `json:"manufacturer"`
	ApprovalNumber string          `json:"approval_number"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	ExpiryDate     string          `json:"expiry_date,omitempty"` // YYYY-MM-DD
}

// UpdateDrugRequest datos para actualizar un medicamento. Los punteros
// distinguen "no enviado" de "enviar en cero".
type UpdateDrugRequest struct {
	Name           *string          `json:"name,omitempty"`
	Spec           *string          `json:"spec,omitempty"`
	Manufacturer   *string          `json:"manufacturer,omitempty"`
	ApprovalNumber *string          `json:"approval_number,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice      *decimal.Decimal `json:"sale_price,omitempty"`
	ExpiryDate     *string          `json:"expiry_date,omitempty"`
	Status         *string          `json:"status,omitempty"`
}

// DrugResponse representación de un medicamento en la API.
type DrugResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Spec           string          `json:"spec"`
	Manufacturer   string          `json:"manufacturer"`
	ApprovalNumber string          `json:"approval_number"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	ExpiryDate     string          `json:"expiry_date,omitempty"`
	Status         string          `json:"status"`
}

// NewDrugResponse convierte la entidad a su representación de API.
func NewDrugResponse(d *entity.Drug) DrugResponse {
	resp := DrugResponse{
		ID:             d.ID,
		Name:           d.Name,
		Spec:           d.Spec,
		Manufacturer:   d.Manufacturer,
		ApprovalNumber: d.ApprovalNumber,
		Category:       d.Category,
		Unit:           d.Unit,
		PurchasePrice:  d.PurchasePrice,
		SalePrice:      d.SalePrice,
		Status:         d.Status,
	}
	if d.ExpiryDate != nil {
		resp.ExpiryDate = d.ExpiryDate.Format(DateLayout)
	}
	return resp
}

// NewDrugResponseList convierte una lista de entidades.
func NewDrugResponseList(drugs []*entity.Drug) []DrugResponse {
	out := make([]DrugResponse, 0, len(drugs))
	for _, d := range drugs {
		out = append(out, NewDrugResponse(d))
	}
	return out
}
