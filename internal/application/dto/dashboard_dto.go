package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// DashboardSummaryResponse cifras de cabecera del tablero.
type DashboardSummaryResponse struct {
	TodaySales          decimal.Decimal `json:"today_sales"`
	MonthSales          decimal.Decimal `json:"month_sales"`
	TotalInventoryUnits int64           `json:"total_inventory_units"`
	LowStockCount       int64           `json:"low_stock_count"`
	TotalDrugs          int64           `json:"total_drugs"`
}

// TrendPointResponse un punto de la serie de ventas diarias.
type TrendPointResponse struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
	Count int64           `json:"count"`
}

// NewTrendPointResponseList convierte la serie del repositorio.
func NewTrendPointResponseList(points []repository.DailySalesPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPointResponse{
			Date:  p.Date.Format(DateLayout),
			Value: p.Value,
			Count: p.Count,
		})
	}
	return out
}

// TopDrugResponse una fila del ranking de más vendidos.
type TopDrugResponse struct {
	DrugID   string          `json:"drug_id"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// NewTopDrugResponseList convierte el ranking del repositorio.
func NewTopDrugResponseList(items []repository.TopDrugResult) []TopDrugResponse {
	out := make([]TopDrugResponse, 0, len(items))
	for _, t := range items {
		out = append(out, TopDrugResponse{
			DrugID:   t.DrugID,
			Name:     t.Name,
			Quantity: t.Quantity,
			Value:    t.Value,
		})
	}
	return out
}

// LowStockItemResponse una fila del listado de existencias bajas.
type LowStockItemResponse struct {
	DrugID        string `json:"drug_id"`
	DrugName      string `json:"drug_name"`
	Unit          string `json:"unit"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int64  `json:"quantity"`
	Location      string `json:"location"`
}

// NewLowStockItemResponseList convierte el listado del repositorio.
func NewLowStockItemResponseList(items []repository.LowStockItem) []LowStockItemResponse {
	out := make([]LowStockItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, LowStockItemResponse{
			DrugID:        i.DrugID,
			DrugName:      i.DrugName,
			Unit:          i.Unit,
			WarehouseName: i.WarehouseName,
			Quantity:      i.Quantity,
			Location:      i.Location,
		})
	}
	return out
}

// InventoryStatusResponse distribución de filas de inventario por nivel de
// existencias.
type InventoryStatusResponse struct {
	Abundant int64 `json:"abundant"` // > 500
	Normal   int64 `json:"normal"`   // 100–500
	Low      int64 `json:"low"`      // < 100
}
