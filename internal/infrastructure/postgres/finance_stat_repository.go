package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// FinanceStatRepository implementación PostgreSQL de cierres financieros.
type FinanceStatRepository struct {
	db Querier
}

var _ repository.FinanceStatRepository = (*FinanceStatRepository)(nil)

// NewFinanceStatRepository crea el repositorio de cierres financieros.
func NewFinanceStatRepository(db Querier) *FinanceStatRepository {
	return &FinanceStatRepository{db: db}
}

const financeStatColumns = `id, stat_type, stat_date, total_sales, total_cost,
	total_profit, employee_id, created_at, updated_at`

func (r *FinanceStatRepository) Upsert(stat *entity.FinanceStat) error {
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO finance_stats (id, stat_type, stat_date, total_sales, total_cost,
			total_profit, employee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (stat_type, stat_date) DO UPDATE SET
			total_sales = EXCLUDED.total_sales,
			total_cost = EXCLUDED.total_cost,
			total_profit = EXCLUDED.total_profit,
			employee_id = EXCLUDED.employee_id,
			updated_at = EXCLUDED.updated_at`,
		stat.ID, stat.StatType, stat.StatDate, stat.TotalSales, stat.TotalCost,
		stat.TotalProfit, stat.EmployeeID, stat.CreatedAt, stat.UpdatedAt,
	)
	return err
}

func (r *FinanceStatRepository) GetByTypeAndDate(statType string, statDate time.Time) (*entity.FinanceStat, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+financeStatColumns+` FROM finance_stats
		WHERE stat_type = $1 AND stat_date = $2`, statType, statDate)
	return scanFinanceStat(row)
}

func (r *FinanceStatRepository) ListByTypeAndRange(statType string, from, to time.Time) ([]*entity.FinanceStat, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT `+financeStatColumns+` FROM finance_stats
		WHERE stat_type = $1 AND stat_date BETWEEN $2 AND $3
		ORDER BY stat_date`, statType, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*entity.FinanceStat
	for rows.Next() {
		stat, err := scanFinanceStat(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (r *FinanceStatRepository) SumDailyRange(from, to time.Time) (sales, cost, profit decimal.Decimal, err error) {
	err = r.db.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(total_sales), 0), COALESCE(SUM(total_cost), 0), COALESCE(SUM(total_profit), 0)
		FROM finance_stats
		WHERE stat_type = $1 AND stat_date BETWEEN $2 AND $3`,
		entity.StatTypeDay, from, to).Scan(&sales, &cost, &profit)
	return sales, cost, profit, err
}

func (r *FinanceStatRepository) DeleteAll() error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM finance_stats`)
	return err
}

func scanFinanceStat(row pgx.Row) (*entity.FinanceStat, error) {
	var s entity.FinanceStat
	err := row.Scan(&s.ID, &s.StatType, &s.StatDate, &s.TotalSales, &s.TotalCost,
		&s.TotalProfit, &s.EmployeeID, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
