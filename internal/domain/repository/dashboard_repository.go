package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesPoint es un punto de la serie de ventas diarias.
type DailySalesPoint struct {
	Date  time.Time
	Value decimal.Decimal
	Count int64
}

// TopDrugResult es una fila del ranking de medicamentos más vendidos.
type TopDrugResult struct {
	DrugID   string
	Name     string
	Quantity int64
	Value    decimal.Decimal
}

// LowStockItem es una fila del listado de existencias bajas.
type LowStockItem struct {
	DrugID        string
	DrugName      string
	Unit          string
	WarehouseName string
	Quantity      int64
	Location      string
}

// DashboardRepository agrupa las consultas de solo lectura del tablero.
// El valor de venta se calcula con el precio vigente del catálogo.
type DashboardRepository interface {
	SalesValueByDateRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	TotalInventoryUnits(ctx context.Context) (int64, error)
	LowStockCount(ctx context.Context, threshold int64) (int64, error)
	TotalDrugs(ctx context.Context) (int64, error)
	DailySalesTrend(ctx context.Context, from, to time.Time) ([]DailySalesPoint, error)
	TopDrugs(ctx context.Context, from *time.Time, limit int) ([]TopDrugResult, error)
	LowStockItems(ctx context.Context, threshold int64, limit int) ([]LowStockItem, error)
	// InventoryStatusBuckets clasifica filas de inventario en
	// abundante (>500), normal (100–500) y bajo (<100).
	InventoryStatusBuckets(ctx context.Context) (abundant, normal, low int64, err error)
}
