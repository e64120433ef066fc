package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia de ventas (eventos
// inmutables).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	DeleteAll() error
}
