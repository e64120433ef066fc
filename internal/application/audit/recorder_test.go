package audit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/audit"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

type fakeLogRepo struct {
	entries   []*entity.SystemLog
	appendErr error
	lastLimit int
}

func (r *fakeLogRepo) Append(log *entity.SystemLog) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, log)
	return nil
}

func (r *fakeLogRepo) List(limit int) ([]*entity.SystemLog, error) {
	r.lastLimit = limit
	return r.entries, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestRecord_GuardaEntradaConEmpleado(t *testing.T) {
	repo := &fakeLogRepo{}
	rec := audit.NewRecorder(repo, testLogger())

	rec.Record("emp-1", entity.ActionCreate, "drugs", "medicamento creado: Acetaminofén 500mg")

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	require.NotNil(t, entry.EmployeeID)
	assert.Equal(t, "emp-1", *entry.EmployeeID)
	assert.Equal(t, entity.ActionCreate, entry.ActionType)
	assert.Equal(t, "drugs", entry.TableName)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.ActionTime.IsZero())
}

func TestRecord_EmpleadoVacioQuedaComoSistema(t *testing.T) {
	repo := &fakeLogRepo{}
	rec := audit.NewRecorder(repo, testLogger())

	rec.Record("", entity.ActionReset, "system", "datos operativos reiniciados")

	require.Len(t, repo.entries, 1)
	assert.Nil(t, repo.entries[0].EmployeeID, "acción de sistema se registra sin empleado")
}

// Un fallo al escribir la bitácora no debe propagarse: la operación de negocio
// ya se confirmó.
func TestRecord_FalloDePersistenciaNoPanic(t *testing.T) {
	repo := &fakeLogRepo{appendErr: errors.New("conexión perdida")}
	rec := audit.NewRecorder(repo, testLogger())

	assert.NotPanics(t, func() {
		rec.Record("emp-1", entity.ActionDelete, "drugs", "medicamento eliminado")
	})
	assert.Empty(t, repo.entries)
}

func TestList_AcotaElLimite(t *testing.T) {
	repo := &fakeLogRepo{}
	rec := audit.NewRecorder(repo, testLogger())

	_, err := rec.List(0)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit, "límite no positivo cae al valor por defecto")

	_, err = rec.List(9999)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit, "límite excesivo cae al valor por defecto")

	_, err = rec.List(25)
	require.NoError(t, err)
	assert.Equal(t, 25, repo.lastLimit)
}
