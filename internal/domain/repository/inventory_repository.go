package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// InventoryRepository define el puerto para consultar/actualizar existencias
// por (medicamento, bodega). Se usa dentro de transacciones del motor de
// eventos para garantizar consistencia.
//
// Get y GetForUpdate devuelven (nil, nil) cuando no existe fila: el motor
// necesita distinguir "sin inventario" de "inventario en cero".
type InventoryRepository interface {
	Get(drugID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(drugID, warehouseID string) (*entity.Inventory, error)
	Upsert(inv *entity.Inventory) error
	List(limit, offset int) ([]*entity.Inventory, error)
	ListLowStock(threshold int64, limit int) ([]*entity.Inventory, error)
	DeleteAll() error
}
