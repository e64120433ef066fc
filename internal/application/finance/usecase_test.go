package finance_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/finance"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type dayTotals struct {
	sales, cost decimal.Decimal
}

// fakeTotalsRepo simula las sumas brutas por fecha que en producción salen del
// join eventos × catálogo.
type fakeTotalsRepo struct {
	salesByDay   map[string]dayTotals
	returnsByDay map[string]dayTotals
}

func newFakeTotalsRepo() *fakeTotalsRepo {
	return &fakeTotalsRepo{
		salesByDay:   make(map[string]dayTotals),
		returnsByDay: make(map[string]dayTotals),
	}
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func (r *fakeTotalsRepo) SalesTotalsByDate(_ context.Context, date time.Time) (decimal.Decimal, decimal.Decimal, error) {
	t := r.salesByDay[dayKey(date)]
	return t.sales, t.cost, nil
}

func (r *fakeTotalsRepo) SalesReturnTotalsByDate(_ context.Context, date time.Time) (decimal.Decimal, decimal.Decimal, error) {
	t := r.returnsByDay[dayKey(date)]
	return t.sales, t.cost, nil
}

// fakeStatRepo guarda los cierres con unicidad (tipo, fecha), igual que el
// UNIQUE de la tabla real.
type fakeStatRepo struct {
	stats map[string]*entity.FinanceStat
}

func newFakeStatRepo() *fakeStatRepo {
	return &fakeStatRepo{stats: make(map[string]*entity.FinanceStat)}
}

func statKey(statType string, date time.Time) string { return statType + "|" + dayKey(date) }

func (r *fakeStatRepo) Upsert(stat *entity.FinanceStat) error {
	r.stats[statKey(stat.StatType, stat.StatDate)] = stat
	return nil
}

func (r *fakeStatRepo) GetByTypeAndDate(statType string, statDate time.Time) (*entity.FinanceStat, error) {
	return r.stats[statKey(statType, statDate)], nil
}

func (r *fakeStatRepo) ListByTypeAndRange(statType string, from, to time.Time) ([]*entity.FinanceStat, error) {
	var out []*entity.FinanceStat
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if stat, ok := r.stats[statKey(statType, d)]; ok {
			out = append(out, stat)
		}
	}
	return out, nil
}

func (r *fakeStatRepo) SumDailyRange(from, to time.Time) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	sales, cost, profit := decimal.Zero, decimal.Zero, decimal.Zero
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if stat, ok := r.stats[statKey(entity.StatTypeDay, d)]; ok {
			sales = sales.Add(stat.TotalSales)
			cost = cost.Add(stat.TotalCost)
			profit = profit.Add(stat.TotalProfit)
		}
	}
	return sales, cost, profit, nil
}

func (r *fakeStatRepo) DeleteAll() error {
	r.stats = make(map[string]*entity.FinanceStat)
	return nil
}

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Cierre diario
// ──────────────────────────────────────────────────────────────────────────────

func TestRecomputeDay_NetoDescuentaDevoluciones(t *testing.T) {
	totals := newFakeTotalsRepo()
	stats := newFakeStatRepo()
	uc := finance.NewUseCase(totals, stats)

	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	totals.salesByDay[dayKey(day)] = dayTotals{sales: d(1000), cost: d(600)}
	totals.returnsByDay[dayKey(day)] = dayTotals{sales: d(100), cost: d(60)}

	stat, err := uc.RecomputeDay(context.Background(), day, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatTypeDay, stat.StatType)
	assert.True(t, stat.TotalSales.Equal(d(900)), "ventas netas: %s", stat.TotalSales)
	assert.True(t, stat.TotalCost.Equal(d(540)), "costo neto: %s", stat.TotalCost)
	assert.True(t, stat.TotalProfit.Equal(d(360)), "utilidad neta: %s", stat.TotalProfit)
	require.NotNil(t, stat.EmployeeID)
	assert.Equal(t, "emp-1", *stat.EmployeeID)
}

func TestRecomputeDay_EsIdempotente(t *testing.T) {
	totals := newFakeTotalsRepo()
	stats := newFakeStatRepo()
	uc := finance.NewUseCase(totals, stats)

	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	totals.salesByDay[dayKey(day)] = dayTotals{sales: d(500), cost: d(200)}

	_, err := uc.RecomputeDay(context.Background(), day, "")
	require.NoError(t, err)

	// Llega un evento tardío: el recálculo sobreescribe la fila, no duplica.
	totals.salesByDay[dayKey(day)] = dayTotals{sales: d(800), cost: d(300)}
	stat, err := uc.RecomputeDay(context.Background(), day, "")
	require.NoError(t, err)

	assert.Len(t, stats.stats, 1, "debe existir una única fila por (tipo, fecha)")
	assert.True(t, stat.TotalSales.Equal(d(800)))
	assert.Nil(t, stat.EmployeeID, "sin empleado el recálculo queda como acción del sistema")
}

func TestRecomputeDay_TruncaLaHora(t *testing.T) {
	totals := newFakeTotalsRepo()
	stats := newFakeStatRepo()
	uc := finance.NewUseCase(totals, stats)

	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	totals.salesByDay[dayKey(day)] = dayTotals{sales: d(100), cost: d(40)}

	withHour := time.Date(2026, 4, 10, 17, 45, 3, 0, time.UTC)
	stat, err := uc.RecomputeDay(context.Background(), withHour, "")
	require.NoError(t, err)
	assert.True(t, stat.StatDate.Equal(day), "la fecha del cierre debe truncarse al día")
	assert.True(t, stat.TotalSales.Equal(d(100)))
}

func TestGetDay_SinCierreCalculado(t *testing.T) {
	uc := finance.NewUseCase(newFakeTotalsRepo(), newFakeStatRepo())

	_, err := uc.GetDay(context.Background(), time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cierre mensual
// ──────────────────────────────────────────────────────────────────────────────

func TestRecomputeMonth_SumaLosCierresDiarios(t *testing.T) {
	totals := newFakeTotalsRepo()
	stats := newFakeStatRepo()
	uc := finance.NewUseCase(totals, stats)

	// Tres días con movimiento en abril 2026; el resto del mes en cero.
	for day, tot := range map[int]dayTotals{
		3:  {sales: d(1000), cost: d(600)},
		15: {sales: d(2000), cost: d(1100)},
		28: {sales: d(500), cost: d(250)},
	} {
		totals.salesByDay[dayKey(time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC))] = tot
	}

	stat, err := uc.RecomputeMonth(context.Background(), 2026, time.April, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatTypeMonth, stat.StatType)
	assert.True(t, stat.StatDate.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
		"el cierre mensual se ancla al primer día del mes")
	assert.True(t, stat.TotalSales.Equal(d(3500)), "ventas del mes: %s", stat.TotalSales)
	assert.True(t, stat.TotalCost.Equal(d(1950)))
	assert.True(t, stat.TotalProfit.Equal(d(1550)))

	// 30 cierres diarios + 1 mensual.
	assert.Len(t, stats.stats, 31)

	got, err := uc.GetMonth(context.Background(), 2026, time.April)
	require.NoError(t, err)
	assert.True(t, got.TotalSales.Equal(d(3500)))
}

func TestRecomputeMonth_ParametrosInvalidos(t *testing.T) {
	uc := finance.NewUseCase(newFakeTotalsRepo(), newFakeStatRepo())
	ctx := context.Background()

	_, err := uc.RecomputeMonth(ctx, 2026, time.Month(13), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecomputeMonth(ctx, 1999, time.January, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie semanal
// ──────────────────────────────────────────────────────────────────────────────

func TestWeeklySeries_SieteDiasAscendentes(t *testing.T) {
	totals := newFakeTotalsRepo()
	stats := newFakeStatRepo()
	uc := finance.NewUseCase(totals, stats)

	end := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	totals.salesByDay[dayKey(end)] = dayTotals{sales: d(700), cost: d(300)}

	series, err := uc.WeeklySeries(context.Background(), end, "")
	require.NoError(t, err)
	require.Len(t, series, 7)

	assert.True(t, series[0].StatDate.Equal(end.AddDate(0, 0, -6)),
		"la serie empieza seis días antes del final")
	assert.True(t, series[6].StatDate.Equal(end), "la serie termina en el día pedido")
	assert.True(t, series[6].TotalSales.Equal(d(700)))
	assert.True(t, series[0].TotalSales.IsZero(), "día sin ventas aparece en cero, no se omite")
}
