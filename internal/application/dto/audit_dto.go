package dto

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// SystemLogResponse una entrada de la bitácora.
type SystemLogResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	ActionType string `json:"action_type"`
	TableName  string `json:"table_name"`
	Content    string `json:"content"`
	ActionTime string `json:"action_time"`
}

// NewSystemLogResponse convierte la entidad a su representación de API.
func NewSystemLogResponse(l *entity.SystemLog) SystemLogResponse {
	resp := SystemLogResponse{
		ID:         l.ID,
		ActionType: l.ActionType,
		TableName:  l.TableName,
		Content:    l.Content,
		ActionTime: l.ActionTime.Format(time.RFC3339),
	}
	if l.EmployeeID != nil {
		resp.EmployeeID = *l.EmployeeID
	}
	return resp
}

// NewSystemLogResponseList convierte una lista de entidades.
func NewSystemLogResponseList(logs []*entity.SystemLog) []SystemLogResponse {
	out := make([]SystemLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, NewSystemLogResponse(l))
	}
	return out
}
