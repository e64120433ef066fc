package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// LowStockThreshold umbral por debajo del cual una fila de inventario cuenta
// como existencia baja.
const LowStockThreshold = 100

// DashboardUseCase arma las vistas de solo lectura del tablero. Los valores
// monetarios se derivan del precio vigente del catálogo.
type DashboardUseCase struct {
	dashboard repository.DashboardRepository
}

// NewDashboardUseCase crea el caso de uso del tablero.
func NewDashboardUseCase(dashboard repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboard: dashboard}
}

// Summary devuelve las cifras de cabecera: ventas de hoy, ventas del mes,
// unidades totales en inventario, filas con existencias bajas y total de
// medicamentos en catálogo.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)

	todaySales, err := uc.dashboard.SalesValueByDateRange(ctx, todayStart, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("error al sumar ventas de hoy: %w", err)
	}
	monthSales, err := uc.dashboard.SalesValueByDateRange(ctx, monthStart, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("error al sumar ventas del mes: %w", err)
	}
	totalUnits, err := uc.dashboard.TotalInventoryUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al sumar unidades de inventario: %w", err)
	}
	lowStock, err := uc.dashboard.LowStockCount(ctx, LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("error al contar existencias bajas: %w", err)
	}
	totalDrugs, err := uc.dashboard.TotalDrugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al contar medicamentos: %w", err)
	}

	return &dto.DashboardSummaryResponse{
		TodaySales:          todaySales,
		MonthSales:          monthSales,
		TotalInventoryUnits: totalUnits,
		LowStockCount:       lowStock,
		TotalDrugs:          totalDrugs,
	}, nil
}

// SalesTrend devuelve la serie de ventas diarias de los últimos `days` días,
// terminando hoy.
func (uc *DashboardUseCase) SalesTrend(ctx context.Context, days int) ([]dto.TrendPointResponse, error) {
	if days <= 0 || days > 90 {
		days = 7
	}
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := todayStart.AddDate(0, 0, -(days - 1))
	to := todayStart.AddDate(0, 0, 1)

	points, err := uc.dashboard.DailySalesTrend(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("error al consultar tendencia de ventas: %w", err)
	}
	return dto.NewTrendPointResponseList(points), nil
}

// TopDrugs devuelve el ranking de los medicamentos más vendidos. Si
// monthOnly es true restringe al mes en curso.
func (uc *DashboardUseCase) TopDrugs(ctx context.Context, monthOnly bool, limit int) ([]dto.TopDrugResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	var from *time.Time
	if monthOnly {
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = &monthStart
	}
	items, err := uc.dashboard.TopDrugs(ctx, from, limit)
	if err != nil {
		return nil, fmt.Errorf("error al consultar más vendidos: %w", err)
	}
	return dto.NewTopDrugResponseList(items), nil
}

// LowStock devuelve el detalle de filas con existencias por debajo del umbral.
func (uc *DashboardUseCase) LowStock(ctx context.Context, limit int) ([]dto.LowStockItemResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := uc.dashboard.LowStockItems(ctx, LowStockThreshold, limit)
	if err != nil {
		return nil, fmt.Errorf("error al consultar existencias bajas: %w", err)
	}
	return dto.NewLowStockItemResponseList(items), nil
}

// InventoryStatus devuelve la distribución de filas de inventario por nivel:
// abundante (>500), normal (100–500) y bajo (<100).
func (uc *DashboardUseCase) InventoryStatus(ctx context.Context) (*dto.InventoryStatusResponse, error) {
	abundant, normal, low, err := uc.dashboard.InventoryStatusBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al clasificar existencias: %w", err)
	}
	return &dto.InventoryStatusResponse{Abundant: abundant, Normal: normal, Low: low}, nil
}
