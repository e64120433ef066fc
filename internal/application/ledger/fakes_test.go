package ledger_test

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memState reproduce el comportamiento observable de los repositorios
// PostgreSQL: el TxRunner falso toma una copia del estado antes de ejecutar fn
// y la restaura si fn falla, igual que un ROLLBACK real. Así los tests pueden
// afirmar que una operación rechazada no deja rastro.
// ──────────────────────────────────────────────────────────────────────────────

func invKey(drugID, warehouseID string) string { return drugID + "|" + warehouseID }

type memState struct {
	inventories     map[string]*entity.Inventory
	stockIns        []*entity.StockIn
	sales           map[string]*entity.Sale
	supplierReturns []*entity.SupplierReturn
	salesReturns    []*entity.SalesReturn
	checks          []*entity.InventoryCheck
}

func newMemState() *memState {
	return &memState{
		inventories: make(map[string]*entity.Inventory),
		sales:       make(map[string]*entity.Sale),
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.inventories {
		inv := *v
		c.inventories[k] = &inv
	}
	for k, v := range s.sales {
		sale := *v
		c.sales[k] = &sale
	}
	c.stockIns = append([]*entity.StockIn(nil), s.stockIns...)
	c.supplierReturns = append([]*entity.SupplierReturn(nil), s.supplierReturns...)
	c.salesReturns = append([]*entity.SalesReturn(nil), s.salesReturns...)
	c.checks = append([]*entity.InventoryCheck(nil), s.checks...)
	return c
}

func (s *memState) restore(from *memState) {
	s.inventories = from.inventories
	s.sales = from.sales
	s.stockIns = from.stockIns
	s.supplierReturns = from.supplierReturns
	s.salesReturns = from.salesReturns
	s.checks = from.checks
}

// fakeTxRunner ejecuta fn sobre el estado compartido y revierte ante error.
type fakeTxRunner struct {
	state *memState
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(r ledger.Repos) error) error {
	snapshot := tx.state.clone()
	err := fn(ledger.Repos{
		Inventory:       &memInventoryRepo{s: tx.state},
		StockIns:        &memStockInRepo{s: tx.state},
		Sales:           &memSaleRepo{s: tx.state},
		SupplierReturns: &memSupplierReturnRepo{s: tx.state},
		SalesReturns:    &memSalesReturnRepo{s: tx.state},
		Checks:          &memCheckRepo{s: tx.state},
	})
	if err != nil {
		tx.state.restore(snapshot)
	}
	return err
}

type memInventoryRepo struct{ s *memState }

func (r *memInventoryRepo) Get(drugID, warehouseID string) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[invKey(drugID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInventoryRepo) GetForUpdate(drugID, warehouseID string) (*entity.Inventory, error) {
	return r.Get(drugID, warehouseID)
}

func (r *memInventoryRepo) Upsert(inv *entity.Inventory) error {
	cp := *inv
	r.s.inventories[invKey(inv.DrugID, inv.WarehouseID)] = &cp
	return nil
}

func (r *memInventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	out := make([]*entity.Inventory, 0, len(r.s.inventories))
	for _, inv := range r.s.inventories {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memInventoryRepo) ListLowStock(threshold int64, limit int) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.s.inventories {
		if inv.Quantity < threshold {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memInventoryRepo) DeleteAll() error {
	r.s.inventories = make(map[string]*entity.Inventory)
	return nil
}

type memStockInRepo struct{ s *memState }

func (r *memStockInRepo) Create(stockIn *entity.StockIn) error {
	r.s.stockIns = append(r.s.stockIns, stockIn)
	return nil
}

func (r *memStockInRepo) GetByID(id string) (*entity.StockIn, error) {
	for _, si := range r.s.stockIns {
		if si.ID == id {
			return si, nil
		}
	}
	return nil, nil
}

func (r *memStockInRepo) List(limit, offset int) ([]*entity.StockIn, error) {
	return r.s.stockIns, nil
}

func (r *memStockInRepo) SumQuantityByDrugAndSupplier(drugID, supplierID string) (int64, error) {
	var sum int64
	for _, si := range r.s.stockIns {
		if si.DrugID == drugID && si.SupplierID == supplierID {
			sum += si.Quantity
		}
	}
	return sum, nil
}

func (r *memStockInRepo) DeleteAll() error {
	r.s.stockIns = nil
	return nil
}

type memSaleRepo struct{ s *memState }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales[sale.ID] = sale
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return sale, nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		out = append(out, sale)
	}
	return out, nil
}

func (r *memSaleRepo) DeleteAll() error {
	r.s.sales = make(map[string]*entity.Sale)
	return nil
}

type memSupplierReturnRepo struct{ s *memState }

func (r *memSupplierReturnRepo) Create(ret *entity.SupplierReturn) error {
	r.s.supplierReturns = append(r.s.supplierReturns, ret)
	return nil
}

func (r *memSupplierReturnRepo) List(limit, offset int) ([]*entity.SupplierReturn, error) {
	return r.s.supplierReturns, nil
}

func (r *memSupplierReturnRepo) SumQuantityByDrugAndSupplier(drugID, supplierID string) (int64, error) {
	var sum int64
	for _, ret := range r.s.supplierReturns {
		if ret.DrugID == drugID && ret.SupplierID == supplierID {
			sum += ret.Quantity
		}
	}
	return sum, nil
}

func (r *memSupplierReturnRepo) DeleteAll() error {
	r.s.supplierReturns = nil
	return nil
}

type memSalesReturnRepo struct{ s *memState }

func (r *memSalesReturnRepo) Create(ret *entity.SalesReturn) error {
	r.s.salesReturns = append(r.s.salesReturns, ret)
	return nil
}

func (r *memSalesReturnRepo) List(limit, offset int) ([]*entity.SalesReturn, error) {
	return r.s.salesReturns, nil
}

func (r *memSalesReturnRepo) SumQuantityBySale(saleID string) (int64, error) {
	var sum int64
	for _, ret := range r.s.salesReturns {
		if ret.SaleID == saleID {
			sum += ret.Quantity
		}
	}
	return sum, nil
}

func (r *memSalesReturnRepo) DeleteAll() error {
	r.s.salesReturns = nil
	return nil
}

type memCheckRepo struct{ s *memState }

func (r *memCheckRepo) Create(check *entity.InventoryCheck) error {
	r.s.checks = append(r.s.checks, check)
	return nil
}

func (r *memCheckRepo) List(limit, offset int) ([]*entity.InventoryCheck, error) {
	return r.s.checks, nil
}

func (r *memCheckRepo) DeleteAll() error {
	r.s.checks = nil
	return nil
}

// ── Fakes del catálogo ────────────────────────────────────────────────────────

type fakeDrugRepo struct{ byID map[string]*entity.Drug }

func (r *fakeDrugRepo) Create(d *entity.Drug) error { r.byID[d.ID] = d; return nil }
func (r *fakeDrugRepo) GetByID(id string) (*entity.Drug, error) { return r.byID[id], nil }
func (r *fakeDrugRepo) GetByName(string) (*entity.Drug, error) { return nil, nil }
func (r *fakeDrugRepo) List(int, int) ([]*entity.Drug, error) { return nil, nil }
func (r *fakeDrugRepo) Update(*entity.Drug) error { return nil }
func (r *fakeDrugRepo) Delete(string) error { return nil }

type fakeSupplierRepo struct{ byID map[string]*entity.Supplier }

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.byID[id], nil }
func (r *fakeSupplierRepo) GetByName(string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(string) error { return nil }

type fakeCustomerRepo struct{ byID map[string]*entity.Customer }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.byID[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) { return r.byID[id], nil }
func (r *fakeCustomerRepo) GetByPhone(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(string) error { return nil }

type fakeWarehouseRepo struct{ byID map[string]*entity.Warehouse }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.byID[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.byID[id], nil }
func (r *fakeWarehouseRepo) GetByName(string) (*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) Delete(string) error { return nil }

// fakeAuditor acumula las entradas registradas para poder afirmarlas.
type fakeAuditor struct {
	entries []string
}

func (a *fakeAuditor) Record(employeeID, action, table, detail string) {
	a.entries = append(a.entries, action+" "+table)
}

// ── Armado del entorno de prueba ─────────────────────────────────────────────

const (
	testDrugID      = "drug-1"
	testSupplierID  = "supplier-1"
	testSupplier2ID = "supplier-2"
	testCustomerID  = "customer-1"
	testWarehouseID = "warehouse-1"
	testEmployeeID  = "employee-1"
)

type testEnv struct {
	state   *memState
	engine  *ledger.UseCase
	checks  *ledger.CheckUseCase
	auditor *fakeAuditor
}

func newTestEnv(policy ledger.Policy) *testEnv {
	state := newMemState()
	tx := &fakeTxRunner{state: state}
	auditor := &fakeAuditor{}

	drugs := &fakeDrugRepo{byID: map[string]*entity.Drug{
		testDrugID: {ID: testDrugID, Name: "Acetaminofén 500mg"},
	}}
	suppliers := &fakeSupplierRepo{byID: map[string]*entity.Supplier{
		testSupplierID:  {ID: testSupplierID, Name: "Laboratorios Andinos"},
		testSupplier2ID: {ID: testSupplier2ID, Name: "Distribuidora del Sur"},
	}}
	customers := &fakeCustomerRepo{byID: map[string]*entity.Customer{
		testCustomerID: {ID: testCustomerID, Name: "Cliente de mostrador"},
	}}
	warehouses := &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{
		testWarehouseID: {ID: testWarehouseID, Name: "Bodega principal"},
	}}

	return &testEnv{
		state:   state,
		engine:  ledger.NewUseCase(tx, drugs, suppliers, customers, warehouses, auditor, policy),
		checks:  ledger.NewCheckUseCase(tx, drugs, warehouses, auditor),
		auditor: auditor,
	}
}

func (e *testEnv) inventory(drugID, warehouseID string) *entity.Inventory {
	return e.state.inventories[invKey(drugID, warehouseID)]
}

func (e *testEnv) stockIn(ctx context.Context, supplierID string, qty int64) (*entity.StockIn, error) {
	return e.engine.RegisterStockIn(ctx, ledger.StockInInput{
		DrugID:      testDrugID,
		SupplierID:  supplierID,
		WarehouseID: testWarehouseID,
		Quantity:    qty,
		EmployeeID:  testEmployeeID,
	})
}

func (e *testEnv) sell(ctx context.Context, qty int64) (*entity.Sale, error) {
	return e.engine.RegisterSale(ctx, ledger.SaleInput{
		DrugID:      testDrugID,
		CustomerID:  testCustomerID,
		WarehouseID: testWarehouseID,
		Quantity:    qty,
		EmployeeID:  testEmployeeID,
	})
}
