package entity

import "time"

// Tipos de acción registrados en la bitácora.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionReset  = "RESET"
)

// SystemLog es una entrada de bitácora append-only. EmployeeID es nil para
// acciones del sistema. Ningún componente de negocio la lee.
type SystemLog struct {
	ID         string
	EmployeeID *string
	ActionType string
	TableName  string
	Content    string
	ActionTime time.Time
}
