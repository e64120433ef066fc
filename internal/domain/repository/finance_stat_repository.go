package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// FinanceStatRepository define el puerto de persistencia de cierres
// financieros. Upsert sobreescribe la fila (stat_type, stat_date) si ya
// existe: el recálculo debe ser idempotente.
type FinanceStatRepository interface {
	Upsert(stat *entity.FinanceStat) error
	GetByTypeAndDate(statType string, statDate time.Time) (*entity.FinanceStat, error)
	ListByTypeAndRange(statType string, from, to time.Time) ([]*entity.FinanceStat, error)
	// SumDailyRange suma los totales de las filas diarias en [from, to].
	SumDailyRange(from, to time.Time) (sales, cost, profit decimal.Decimal, err error)
	DeleteAll() error
}
