package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// resetState marca qué almacenes operativos fueron vaciados y en qué orden.
type resetState struct {
	cleared []string
}

func (s *resetState) mark(table string) { s.cleared = append(s.cleared, table) }

type resetInventoryRepo struct{ s *resetState }

func (r *resetInventoryRepo) Get(string, string) (*entity.Inventory, error)          { return nil, nil }
func (r *resetInventoryRepo) GetForUpdate(string, string) (*entity.Inventory, error) { return nil, nil }
func (r *resetInventoryRepo) Upsert(*entity.Inventory) error                         { return nil }
func (r *resetInventoryRepo) List(int, int) ([]*entity.Inventory, error)             { return nil, nil }
func (r *resetInventoryRepo) ListLowStock(int64, int) ([]*entity.Inventory, error)   { return nil, nil }
func (r *resetInventoryRepo) DeleteAll() error                                       { r.s.mark("inventories"); return nil }

type resetStockInRepo struct{ s *resetState }

func (r *resetStockInRepo) Create(*entity.StockIn) error                        { return nil }
func (r *resetStockInRepo) GetByID(string) (*entity.StockIn, error)             { return nil, nil }
func (r *resetStockInRepo) List(int, int) ([]*entity.StockIn, error)            { return nil, nil }
func (r *resetStockInRepo) SumQuantityByDrugAndSupplier(string, string) (int64, error) {
	return 0, nil
}
func (r *resetStockInRepo) DeleteAll() error { r.s.mark("stock_ins"); return nil }

type resetSaleRepo struct{ s *resetState }

func (r *resetSaleRepo) Create(*entity.Sale) error             { return nil }
func (r *resetSaleRepo) GetByID(string) (*entity.Sale, error)  { return nil, nil }
func (r *resetSaleRepo) List(int, int) ([]*entity.Sale, error) { return nil, nil }
func (r *resetSaleRepo) DeleteAll() error                      { r.s.mark("sales"); return nil }

type resetSupplierReturnRepo struct{ s *resetState }

func (r *resetSupplierReturnRepo) Create(*entity.SupplierReturn) error { return nil }
func (r *resetSupplierReturnRepo) List(int, int) ([]*entity.SupplierReturn, error) {
	return nil, nil
}
func (r *resetSupplierReturnRepo) SumQuantityByDrugAndSupplier(string, string) (int64, error) {
	return 0, nil
}
func (r *resetSupplierReturnRepo) DeleteAll() error { r.s.mark("supplier_returns"); return nil }

type resetSalesReturnRepo struct{ s *resetState }

func (r *resetSalesReturnRepo) Create(*entity.SalesReturn) error             { return nil }
func (r *resetSalesReturnRepo) List(int, int) ([]*entity.SalesReturn, error) { return nil, nil }
func (r *resetSalesReturnRepo) SumQuantityBySale(string) (int64, error)      { return 0, nil }
func (r *resetSalesReturnRepo) DeleteAll() error                             { r.s.mark("sales_returns"); return nil }

type resetCheckRepo struct{ s *resetState }

func (r *resetCheckRepo) Create(*entity.InventoryCheck) error             { return nil }
func (r *resetCheckRepo) List(int, int) ([]*entity.InventoryCheck, error) { return nil, nil }
func (r *resetCheckRepo) DeleteAll() error                                { r.s.mark("inventory_checks"); return nil }

type resetStatRepo struct{ s *resetState }

func (r *resetStatRepo) Upsert(*entity.FinanceStat) error { return nil }
func (r *resetStatRepo) GetByTypeAndDate(string, time.Time) (*entity.FinanceStat, error) {
	return nil, nil
}
func (r *resetStatRepo) ListByTypeAndRange(string, time.Time, time.Time) ([]*entity.FinanceStat, error) {
	return nil, nil
}
func (r *resetStatRepo) SumDailyRange(time.Time, time.Time) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	return decimal.Zero, decimal.Zero, decimal.Zero, nil
}
func (r *resetStatRepo) DeleteAll() error { r.s.mark("finance_stats"); return nil }

type resetTxRunner struct{ s *resetState }

func (tx *resetTxRunner) Run(_ context.Context, fn func(r ledger.Repos) error) error {
	return fn(ledger.Repos{
		Inventory:       &resetInventoryRepo{s: tx.s},
		StockIns:        &resetStockInRepo{s: tx.s},
		Sales:           &resetSaleRepo{s: tx.s},
		SupplierReturns: &resetSupplierReturnRepo{s: tx.s},
		SalesReturns:    &resetSalesReturnRepo{s: tx.s},
		Checks:          &resetCheckRepo{s: tx.s},
	})
}

func TestResetOperationalData_BorraEventosYExistencias(t *testing.T) {
	state := &resetState{}
	uc := usecase.NewMaintenanceUseCase(&resetTxRunner{s: state}, &resetStatRepo{s: state}, noopAuditor{})

	err := uc.ResetOperationalData(context.Background(), "admin-1")
	require.NoError(t, err)

	// Los dependientes se borran antes que sus referenciados; los cierres
	// financieros al final, fuera de la transacción de eventos.
	assert.Equal(t, []string{
		"inventory_checks",
		"sales_returns",
		"supplier_returns",
		"sales",
		"stock_ins",
		"inventories",
		"finance_stats",
	}, state.cleared)
}
