package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// SupplierReturnRepository define el puerto de persistencia de devoluciones a
// proveedor.
type SupplierReturnRepository interface {
	Create(ret *entity.SupplierReturn) error
	List(limit, offset int) ([]*entity.SupplierReturn, error)
	// SumQuantityByDrugAndSupplier suma lo ya devuelto para un
	// (medicamento, proveedor); junto con la suma de ingresos define el tope.
	SumQuantityByDrugAndSupplier(drugID, supplierID string) (int64, error)
	DeleteAll() error
}
