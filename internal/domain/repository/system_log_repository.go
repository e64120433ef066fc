package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// SystemLogRepository define el puerto de la bitácora append-only.
type SystemLogRepository interface {
	Append(log *entity.SystemLog) error
	List(limit int) ([]*entity.SystemLog, error)
}
