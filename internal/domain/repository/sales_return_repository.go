package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// SalesReturnRepository define el puerto de persistencia de devoluciones de
// venta.
type SalesReturnRepository interface {
	Create(ret *entity.SalesReturn) error
	List(limit, offset int) ([]*entity.SalesReturn, error)
	// SumQuantityBySale suma lo ya devuelto contra una venta concreta (usado
	// solo con la política de tope acumulado activada).
	SumQuantityBySale(saleID string) (int64, error)
	DeleteAll() error
}
