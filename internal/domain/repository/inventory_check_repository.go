package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// InventoryCheckRepository define el puerto de persistencia de conteos
// físicos.
type InventoryCheckRepository interface {
	Create(check *entity.InventoryCheck) error
	List(limit, offset int) ([]*entity.InventoryCheck, error)
	DeleteAll() error
}
