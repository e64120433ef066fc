package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia de proveedores.
// Name es único: Create debe devolver domain.ErrDuplicate ante duplicado.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
