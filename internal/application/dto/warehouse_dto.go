package dto

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// CreateWarehouseRequest datos para registrar una bodega.
type CreateWarehouseRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	ManagerID string `json:"manager_id"`
}

// UpdateWarehouseRequest datos para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
}

// WarehouseResponse representación de una bodega en la API.
type WarehouseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	ManagerID string `json:"manager_id"`
}

// NewWarehouseResponse convierte la entidad a su representación de API.
func NewWarehouseResponse(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		ManagerID: w.ManagerID,
	}
}

// NewWarehouseResponseList convierte una lista de entidades.
func NewWarehouseResponseList(warehouses []*entity.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, NewWarehouseResponse(w))
	}
	return out
}
