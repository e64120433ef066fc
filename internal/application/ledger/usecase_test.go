package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos de mercancía
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterStockIn_CreaFilaDeInventario(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	stockIn, err := env.engine.RegisterStockIn(ctx, ledger.StockInInput{
		DrugID:      testDrugID,
		SupplierID:  testSupplierID,
		WarehouseID: testWarehouseID,
		Quantity:    100,
		UnitPrice:   decimal.NewFromFloat(3500),
		EmployeeID:  testEmployeeID,
	})
	require.NoError(t, err)

	inv := env.inventory(testDrugID, testWarehouseID)
	require.NotNil(t, inv, "el primer ingreso debe crear la fila de inventario")
	assert.Equal(t, int64(100), inv.Quantity)
	assert.Equal(t, entity.DefaultLocation, inv.Location,
		"la fila nueva debe nacer con la ubicación por defecto")

	assert.True(t, stockIn.TotalPrice.Equal(decimal.NewFromFloat(350000)),
		"el total debe ser cantidad × precio unitario")
	assert.False(t, stockIn.Date.IsZero(), "sin fecha declarada se usa la actual")
}

func TestRegisterStockIn_SumaSobreExistencias(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	_, err = env.stockIn(ctx, testSupplierID, 50)
	require.NoError(t, err)

	assert.Equal(t, int64(150), env.inventory(testDrugID, testWarehouseID).Quantity)
}

func TestRegisterStockIn_RespetaFechaDeclarada(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	declared := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	stockIn, err := env.engine.RegisterStockIn(context.Background(), ledger.StockInInput{
		DrugID:      testDrugID,
		SupplierID:  testSupplierID,
		WarehouseID: testWarehouseID,
		Quantity:    10,
		Date:        declared,
		EmployeeID:  testEmployeeID,
	})
	require.NoError(t, err)
	assert.True(t, stockIn.Date.Equal(declared))
}

func TestRegisterStockIn_CantidadInvalida(t *testing.T) {
	env := newTestEnv(ledger.Policy{})

	_, err := env.stockIn(context.Background(), testSupplierID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = env.stockIn(context.Background(), testSupplierID, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")
	assert.Nil(t, env.inventory(testDrugID, testWarehouseID))
}

func TestRegisterStockIn_PrecioNegativo(t *testing.T) {
	env := newTestEnv(ledger.Policy{})

	_, err := env.engine.RegisterStockIn(context.Background(), ledger.StockInInput{
		DrugID:      testDrugID,
		SupplierID:  testSupplierID,
		WarehouseID: testWarehouseID,
		Quantity:    10,
		UnitPrice:   decimal.NewFromFloat(-1),
		EmployeeID:  testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterStockIn_MedicamentoInexistente(t *testing.T) {
	env := newTestEnv(ledger.Policy{})

	_, err := env.engine.RegisterStockIn(context.Background(), ledger.StockInInput{
		DrugID:      "no-existe",
		SupplierID:  testSupplierID,
		WarehouseID: testWarehouseID,
		Quantity:    10,
		EmployeeID:  testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_DescuentaExistencias(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)

	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)

	assert.Equal(t, int64(70), env.inventory(testDrugID, testWarehouseID).Quantity)
	assert.Equal(t, testWarehouseID, sale.WarehouseID)
	assert.Len(t, env.state.sales, 1)
}

func TestRegisterSale_ExistenciasInsuficientes(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	_, err = env.sell(ctx, 70)
	require.NoError(t, err)

	// Quedan 30: vender 50 debe fallar sin tocar nada.
	_, err = env.sell(ctx, 50)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponible=30",
		"el error debe informar lo disponible")

	assert.Equal(t, int64(30), env.inventory(testDrugID, testWarehouseID).Quantity,
		"la venta rechazada no debe descontar existencias")
	assert.Len(t, env.state.sales, 1, "la venta rechazada no debe quedar en el historial")
}

func TestRegisterSale_SinFilaDeInventario(t *testing.T) {
	env := newTestEnv(ledger.Policy{})

	_, err := env.sell(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"sin fila de inventario la venta se trata como stock cero")
}

func TestRegisterSale_AgotarExistenciasExactas(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 25)
	require.NoError(t, err)

	_, err = env.sell(ctx, 25)
	require.NoError(t, err, "vender exactamente lo disponible es válido")
	assert.Equal(t, int64(0), env.inventory(testDrugID, testWarehouseID).Quantity)
}

func TestRegisterSale_ClienteInexistente(t *testing.T) {
	env := newTestEnv(ledger.Policy{})

	_, err := env.engine.RegisterSale(context.Background(), ledger.SaleInput{
		DrugID:      testDrugID,
		CustomerID:  "no-existe",
		WarehouseID: testWarehouseID,
		Quantity:    1,
		EmployeeID:  testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Devoluciones a proveedor
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSupplierReturn_DescuentaExistencias(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)

	_, err = env.engine.RegisterSupplierReturn(ctx, ledger.SupplierReturnInput{
		DrugID:      testDrugID,
		SupplierID:  testSupplierID,
		WarehouseID: testWarehouseID,
		Quantity:    40,
		Reason:      "lote vencido",
		EmployeeID:  testEmployeeID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(60), env.inventory(testDrugID, testWarehouseID).Quantity)
}

func TestRegisterSupplierReturn_TopeHistoricoPorProveedor(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	// 100 del proveedor 1 y 100 del proveedor 2: existencias no son el límite.
	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	_, err = env.stockIn(ctx, testSupplier2ID, 100)
	require.NoError(t, err)

	ret := func(qty int64) error {
		_, err := env.engine.RegisterSupplierReturn(ctx, ledger.SupplierReturnInput{
			DrugID:      testDrugID,
			SupplierID:  testSupplierID,
			WarehouseID: testWarehouseID,
			Quantity:    qty,
			EmployeeID:  testEmployeeID,
		})
		return err
	}

	require.NoError(t, ret(60))

	// 60 + 50 = 110 > 100 comprados al proveedor 1, aunque haya 140 en bodega.
	err = ret(50)
	assert.ErrorIs(t, err, domain.ErrOverReturn,
		"la suma histórica de devoluciones no puede superar lo comprado al proveedor")
	assert.Equal(t, int64(140), env.inventory(testDrugID, testWarehouseID).Quantity,
		"la devolución rechazada no debe descontar existencias")
	assert.Len(t, env.state.supplierReturns, 1)

	// 60 + 40 = 100 queda exactamente en el tope.
	require.NoError(t, ret(40))
}

func TestRegisterSupplierReturn_ExistenciasInsuficientes(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	_, err = env.sell(ctx, 80)
	require.NoError(t, err)

	// Compradas 100 pero solo quedan 20 en bodega.
	_, err = env.engine.RegisterSupplierReturn(ctx, ledger.SupplierReturnInput{
		DrugID:      testDrugID,
		SupplierID:  testSupplierID,
		WarehouseID: testWarehouseID,
		Quantity:    50,
		EmployeeID:  testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Devoluciones de venta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSalesReturn_RestauraExistencias(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)

	ret, err := env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
		SaleID:     sale.ID,
		Quantity:   30,
		Reason:     "producto equivocado",
		EmployeeID: testEmployeeID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), env.inventory(testDrugID, testWarehouseID).Quantity)
	assert.Equal(t, sale.WarehouseID, ret.WarehouseID,
		"la bodega de la devolución se toma de la venta original")
}

func TestRegisterSalesReturn_ExcedeLoVendido(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)

	_, err = env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
		SaleID:     sale.ID,
		Quantity:   40,
		EmployeeID: testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrOverReturn)
	assert.Equal(t, int64(70), env.inventory(testDrugID, testWarehouseID).Quantity)
}

func TestRegisterSalesReturn_TopeSimplePermiteDobleReembolso(t *testing.T) {
	// Comportamiento histórico (política apagada): cada devolución se compara
	// contra la cantidad vendida a secas, sin descontar devoluciones previas.
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
			SaleID:     sale.ID,
			Quantity:   20,
			EmployeeID: testEmployeeID,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(110), env.inventory(testDrugID, testWarehouseID).Quantity)
}

func TestRegisterSalesReturn_TopeAcumulado(t *testing.T) {
	env := newTestEnv(ledger.Policy{CumulativeSalesReturnBound: true})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)

	_, err = env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
		SaleID:     sale.ID,
		Quantity:   20,
		EmployeeID: testEmployeeID,
	})
	require.NoError(t, err)

	// Ya se devolvieron 20 de 30: solo quedan 10 devolvibles.
	_, err = env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
		SaleID:     sale.ID,
		Quantity:   20,
		EmployeeID: testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrOverReturn,
		"con tope acumulado la segunda devolución debe rechazarse")
	assert.Len(t, env.state.salesReturns, 1)
}

func TestRegisterSalesReturn_SinInventarioRevive(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 30)
	require.NoError(t, err)
	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)

	// Simular que la fila de inventario desapareció (p. ej. reinicio parcial).
	delete(env.state.inventories, invKey(testDrugID, testWarehouseID))

	_, err = env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
		SaleID:     sale.ID,
		Quantity:   10,
		EmployeeID: testEmployeeID,
	})
	require.NoError(t, err)

	inv := env.inventory(testDrugID, testWarehouseID)
	require.NotNil(t, inv, "sin política estricta la fila se recrea")
	assert.Equal(t, int64(10), inv.Quantity)
}

func TestRegisterSalesReturn_SinInventarioEstricto(t *testing.T) {
	env := newTestEnv(ledger.Policy{StrictSalesReturnInventory: true})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 30)
	require.NoError(t, err)
	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)

	delete(env.state.inventories, invKey(testDrugID, testWarehouseID))

	_, err = env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
		SaleID:     sale.ID,
		Quantity:   10,
		EmployeeID: testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"con política estricta la devolución sin inventario debe rechazarse")
}

func TestRegisterSalesReturn_VentaInexistente(t *testing.T) {
	env := newTestEnv(ledger.Policy{})

	_, err := env.engine.RegisterSalesReturn(context.Background(), ledger.SalesReturnInput{
		SaleID:     "no-existe",
		Quantity:   1,
		EmployeeID: testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bitácora
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_RegistraBitacoraTrasConfirmar(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"CREATE stock_ins"}, env.auditor.entries)

	// Una operación rechazada no debe dejar entrada de bitácora.
	_, err = env.sell(ctx, 99)
	require.Error(t, err)
	assert.Len(t, env.auditor.entries, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reenvíos
// ──────────────────────────────────────────────────────────────────────────────

// El motor no tiene clave de deduplicación: un reenvío idéntico registra un
// segundo evento y aplica el ajuste otra vez.
func TestEngine_ReenvioIdenticoDuplicaElAjuste(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)

	first, err := env.sell(ctx, 10)
	require.NoError(t, err)
	second, err := env.sell(ctx, 10)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "cada reenvío crea un evento propio")
	assert.Len(t, env.state.sales, 2)
	assert.Equal(t, int64(80), env.inventory(testDrugID, testWarehouseID).Quantity,
		"el descuento se aplica una vez por evento registrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconstrucción desde el historial
// ──────────────────────────────────────────────────────────────────────────────

// replayQuantity reconstruye la cantidad a partir del historial de eventos:
// ingresos − ventas + devoluciones de venta − devoluciones a proveedor,
// partiendo de la base dada.
func replayQuantity(env *testEnv, base int64) int64 {
	q := base
	for _, s := range env.state.stockIns {
		q += s.Quantity
	}
	for _, s := range env.state.sales {
		q -= s.Quantity
	}
	for _, r := range env.state.salesReturns {
		q += r.Quantity
	}
	for _, r := range env.state.supplierReturns {
		q -= r.Quantity
	}
	return q
}

// La cantidad en inventario siempre debe coincidir con la que se obtiene
// repitiendo los eventos del historial. Un conteo con discrepancia fija una
// nueva base; los eventos posteriores se acumulan sobre ella.
func TestMotor_InvarianteDeReconstruccion(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)
	sale, err := env.sell(ctx, 30)
	require.NoError(t, err)
	_, err = env.stockIn(ctx, testSupplier2ID, 50)
	require.NoError(t, err)
	_, err = env.engine.RegisterSupplierReturn(ctx, ledger.SupplierReturnInput{
		DrugID:      testDrugID,
		SupplierID:  testSupplierID,
		WarehouseID: testWarehouseID,
		Quantity:    20,
		Reason:      "lote vencido",
		EmployeeID:  testEmployeeID,
	})
	require.NoError(t, err)
	_, err = env.engine.RegisterSalesReturn(ctx, ledger.SalesReturnInput{
		SaleID:     sale.ID,
		Quantity:   10,
		EmployeeID: testEmployeeID,
	})
	require.NoError(t, err)

	// 100 − 30 + 50 − 20 + 10 = 110, y coincide con repetir el historial.
	inv := env.inventory(testDrugID, testWarehouseID)
	assert.Equal(t, int64(110), inv.Quantity)
	assert.Equal(t, replayQuantity(env, 0), inv.Quantity,
		"la cantidad debe reconstruirse desde el historial de eventos")

	// Un conteo con discrepancia corta el historial: desde aquí la base es lo
	// contado, no lo acumulado.
	_, err = env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 110,
		ActualQuantity:  95,
		DiffReason:      "faltante en estantería",
		EmployeeID:      testEmployeeID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(95), env.inventory(testDrugID, testWarehouseID).Quantity)

	preCheck := replayQuantity(env, 0)
	_, err = env.sell(ctx, 5)
	require.NoError(t, err)
	_, err = env.stockIn(ctx, testSupplierID, 10)
	require.NoError(t, err)

	inv = env.inventory(testDrugID, testWarehouseID)
	assert.Equal(t, int64(100), inv.Quantity, "95 − 5 + 10")
	assert.Equal(t, int64(95)+(replayQuantity(env, 0)-preCheck), inv.Quantity,
		"tras el conteo la reconstrucción parte de lo contado más los eventos posteriores")
}
