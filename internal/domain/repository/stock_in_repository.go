package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// StockInRepository define el puerto de persistencia de ingresos (eventos
// inmutables: solo inserción y lectura).
type StockInRepository interface {
	Create(stockIn *entity.StockIn) error
	GetByID(id string) (*entity.StockIn, error)
	List(limit, offset int) ([]*entity.StockIn, error)
	// SumQuantityByDrugAndSupplier suma lo ingresado históricamente para un
	// (medicamento, proveedor); acota las devoluciones a proveedor.
	SumQuantityByDrugAndSupplier(drugID, supplierID string) (int64, error)
	DeleteAll() error
}
