package postgres

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SystemLogRepository implementación PostgreSQL de la bitácora append-only.
type SystemLogRepository struct {
	db Querier
}

var _ repository.SystemLogRepository = (*SystemLogRepository)(nil)

// NewSystemLogRepository crea el repositorio de bitácora.
func NewSystemLogRepository(db Querier) *SystemLogRepository {
	return &SystemLogRepository{db: db}
}

func (r *SystemLogRepository) Append(log *entity.SystemLog) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO system_logs (id, employee_id, action_type, table_name, content, action_time)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.EmployeeID, log.ActionType, log.TableName, log.Content, log.ActionTime,
	)
	return err
}

func (r *SystemLogRepository) List(limit int) ([]*entity.SystemLog, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, employee_id, action_type, table_name, content, action_time
		FROM system_logs
		ORDER BY action_time DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*entity.SystemLog
	for rows.Next() {
		var l entity.SystemLog
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.ActionType, &l.TableName,
			&l.Content, &l.ActionTime); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
