package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

// Recorder escribe entradas de bitácora best-effort: se invoca después de
// confirmar la transacción de negocio y un fallo aquí solo deja un warn en el
// log, nunca afecta la operación que lo originó.
type Recorder struct {
	logs repository.SystemLogRepository
	log  *logger.Logger
}

// NewRecorder crea el registrador de bitácora.
func NewRecorder(logs repository.SystemLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{logs: logs, log: log}
}

// Record agrega una entrada a la bitácora. employeeID vacío se registra como
// acción del sistema (NULL).
func (r *Recorder) Record(employeeID, action, table, detail string) {
	var empID *string
	if employeeID != "" {
		empID = &employeeID
	}
	entry := &entity.SystemLog{
		ID:         uuid.NewString(),
		EmployeeID: empID,
		ActionType: action,
		TableName:  table,
		Content:    detail,
		ActionTime: time.Now(),
	}
	if err := r.logs.Append(entry); err != nil {
		r.log.Warn().
			Err(err).
			Str("action", action).
			Str("table", table).
			Msg("no se pudo registrar la entrada de bitácora")
	}
}

// List devuelve las últimas entradas de la bitácora (más recientes primero).
func (r *Recorder) List(limit int) ([]*entity.SystemLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return r.logs.List(limit)
}
