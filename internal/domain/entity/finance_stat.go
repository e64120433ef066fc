package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de período de un cierre financiero.
const (
	StatTypeDay   = "DAY"
	StatTypeMonth = "MONTH"
)

// FinanceStat es el cierre financiero de un período: una fila única por
// (StatType, StatDate), recalculable de forma idempotente desde los eventos.
type FinanceStat struct {
	ID          string
	StatType    string
	StatDate    time.Time
	TotalSales  decimal.Decimal
	TotalCost   decimal.Decimal
	TotalProfit decimal.Decimal
	EmployeeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
