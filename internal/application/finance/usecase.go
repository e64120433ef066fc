package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	domfinance "github.com/jhoicas/Farmacia-api/internal/domain/finance"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// UseCase es el agregador financiero: recalcula cierres diarios y mensuales a
// partir de los eventos de venta y devolución. El recálculo es idempotente;
// la fila (tipo, fecha) se sobreescribe completa en cada corrida.
type UseCase struct {
	totals repository.FinanceTotalsRepository
	stats  repository.FinanceStatRepository
}

// NewUseCase crea el agregador financiero.
func NewUseCase(totals repository.FinanceTotalsRepository, stats repository.FinanceStatRepository) *UseCase {
	return &UseCase{totals: totals, stats: stats}
}

// RecomputeDay recalcula el cierre de un día desde los eventos:
// neto = bruto de ventas − devoluciones de venta del día.
func (uc *UseCase) RecomputeDay(ctx context.Context, date time.Time, employeeID string) (*entity.FinanceStat, error) {
	day := truncateToDay(date)

	grossSales, grossCost, err := uc.totals.SalesTotalsByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("error al sumar ventas del día: %w", err)
	}
	retSales, retCost, err := uc.totals.SalesReturnTotalsByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("error al sumar devoluciones del día: %w", err)
	}
	net := domfinance.NetCalculator(grossSales, grossCost, retSales, retCost)

	stat := uc.newStat(entity.StatTypeDay, day, net, employeeID)
	if err := uc.stats.Upsert(stat); err != nil {
		return nil, fmt.Errorf("error al guardar cierre diario: %w", err)
	}
	return stat, nil
}

// RecomputeMonth recalcula cada día del mes y después el cierre mensual como
// la suma de los cierres diarios. Devuelve la fila mensual.
func (uc *UseCase) RecomputeMonth(ctx context.Context, year int, month time.Month, employeeID string) (*entity.FinanceStat, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: mes fuera de rango", domain.ErrInvalidInput)
	}
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("%w: año fuera de rango", domain.ErrInvalidInput)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if _, err := uc.RecomputeDay(ctx, d, employeeID); err != nil {
			return nil, err
		}
	}

	sales, cost, profit, err := uc.stats.SumDailyRange(first, last)
	if err != nil {
		return nil, fmt.Errorf("error al sumar cierres diarios: %w", err)
	}

	stat := uc.newStat(entity.StatTypeMonth, first, domfinance.NetFigures{Sales: sales, Cost: cost, Profit: profit}, employeeID)
	if err := uc.stats.Upsert(stat); err != nil {
		return nil, fmt.Errorf("error al guardar cierre mensual: %w", err)
	}
	return stat, nil
}

// GetDay devuelve el cierre diario almacenado o ErrNotFound si nunca se
// calculó.
func (uc *UseCase) GetDay(ctx context.Context, date time.Time) (*entity.FinanceStat, error) {
	stat, err := uc.stats.GetByTypeAndDate(entity.StatTypeDay, truncateToDay(date))
	if err != nil {
		return nil, fmt.Errorf("error al consultar cierre diario: %w", err)
	}
	if stat == nil {
		return nil, fmt.Errorf("%w: cierre diario %s", domain.ErrNotFound, truncateToDay(date).Format("2006-01-02"))
	}
	return stat, nil
}

// GetMonth devuelve el cierre mensual almacenado o ErrNotFound si nunca se
// calculó.
func (uc *UseCase) GetMonth(ctx context.Context, year int, month time.Month) (*entity.FinanceStat, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	stat, err := uc.stats.GetByTypeAndDate(entity.StatTypeMonth, first)
	if err != nil {
		return nil, fmt.Errorf("error al consultar cierre mensual: %w", err)
	}
	if stat == nil {
		return nil, fmt.Errorf("%w: cierre mensual %s", domain.ErrNotFound, first.Format("2006-01"))
	}
	return stat, nil
}

// WeeklySeries recalcula y devuelve los últimos siete cierres diarios
// terminando en end (incluido), para la serie de tendencia.
func (uc *UseCase) WeeklySeries(ctx context.Context, end time.Time, employeeID string) ([]*entity.FinanceStat, error) {
	endDay := truncateToDay(end)
	series := make([]*entity.FinanceStat, 0, 7)
	for d := endDay.AddDate(0, 0, -6); !d.After(endDay); d = d.AddDate(0, 0, 1) {
		stat, err := uc.RecomputeDay(ctx, d, employeeID)
		if err != nil {
			return nil, err
		}
		series = append(series, stat)
	}
	return series, nil
}

func (uc *UseCase) newStat(statType string, date time.Time, net domfinance.NetFigures, employeeID string) *entity.FinanceStat {
	var empID *string
	if employeeID != "" {
		empID = &employeeID
	}
	now := time.Now()
	return &entity.FinanceStat{
		ID:          uuid.NewString(),
		StatType:    statType,
		StatDate:    date,
		TotalSales:  net.Sales,
		TotalCost:   net.Cost,
		TotalProfit: net.Profit,
		EmployeeID:  empID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
