package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

func TestRecordCheck_DiscrepanciaSobrescribeCantidad(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 100)
	require.NoError(t, err)

	check, err := env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 100,
		ActualQuantity:  92,
		DiffReason:      "merma por rotura",
		EmployeeID:      testEmployeeID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), check.CheckedQuantity,
		"el conteo debe conservar la cantidad que se esperaba encontrar")
	assert.Equal(t, int64(92), check.ActualQuantity)

	inv := env.inventory(testDrugID, testWarehouseID)
	assert.Equal(t, int64(92), inv.Quantity, "el conteo físico manda sobre el sistema")
	require.NotNil(t, inv.LastCheckDate)
}

func TestRecordCheck_SinDiscrepanciaActualizaFecha(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 50)
	require.NoError(t, err)

	checkDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	_, err = env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 50,
		ActualQuantity:  50,
		Date:            checkDate,
		EmployeeID:      testEmployeeID,
	})
	require.NoError(t, err)

	inv := env.inventory(testDrugID, testWarehouseID)
	assert.Equal(t, int64(50), inv.Quantity, "sin discrepancia la cantidad no cambia")
	require.NotNil(t, inv.LastCheckDate,
		"la fecha de último conteo se actualiza aunque no haya discrepancia")
	assert.True(t, inv.LastCheckDate.Equal(checkDate))
}

// Las cantidades del conteo las declara quien cuenta: si declara que esperado
// y contado coinciden, la cantidad del sistema se respeta aunque difiera de lo
// declarado.
func TestRecordCheck_ConteoDeclaradoSinDiscrepanciaRespetaElSistema(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 80)
	require.NoError(t, err)

	check, err := env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 70,
		ActualQuantity:  70,
		EmployeeID:      testEmployeeID,
	})
	require.NoError(t, err)

	inv := env.inventory(testDrugID, testWarehouseID)
	assert.Equal(t, int64(80), inv.Quantity,
		"un conteo que no declara discrepancia no toca la cantidad del sistema")
	require.NotNil(t, inv.LastCheckDate)
	assert.Equal(t, int64(70), check.CheckedQuantity)
	assert.Equal(t, int64(70), check.ActualQuantity)
}

func TestRecordCheck_ConteoEnCeroEsValido(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 15)
	require.NoError(t, err)

	_, err = env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 15,
		ActualQuantity:  0,
		DiffReason:      "faltante total",
		EmployeeID:      testEmployeeID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), env.inventory(testDrugID, testWarehouseID).Quantity)
}

func TestRecordCheck_CantidadNegativa(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 10,
		ActualQuantity:  -1,
		EmployeeID:      testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: -1,
		ActualQuantity:  10,
		EmployeeID:      testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la cantidad esperada también debe ser no negativa")
}

func TestRecordCheck_SinFilaDeInventario(t *testing.T) {
	env := newTestEnv(ledger.Policy{})

	_, err := env.checks.RecordCheck(context.Background(), ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 10,
		ActualQuantity:  10,
		EmployeeID:      testEmployeeID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"no se puede contar lo que nunca ha ingresado")
	assert.Empty(t, env.state.checks)
}

func TestRecordCheck_QuedaEnHistorial(t *testing.T) {
	env := newTestEnv(ledger.Policy{})
	ctx := context.Background()

	_, err := env.stockIn(ctx, testSupplierID, 20)
	require.NoError(t, err)

	_, err = env.checks.RecordCheck(ctx, ledger.CheckInput{
		DrugID:          testDrugID,
		WarehouseID:     testWarehouseID,
		CheckedQuantity: 20,
		ActualQuantity:  18,
		EmployeeID:      testEmployeeID,
	})
	require.NoError(t, err)

	require.Len(t, env.state.checks, 1)
	assert.Equal(t, int64(20), env.state.checks[0].CheckedQuantity)
	assert.Equal(t, int64(18), env.state.checks[0].ActualQuantity)
}
