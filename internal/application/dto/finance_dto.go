package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// FinanceStatResponse representación de un cierre financiero.
type FinanceStatResponse struct {
	ID          string          `json:"id"`
	StatType    string          `json:"stat_type"`
	StatDate    string          `json:"stat_date"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

// NewFinanceStatResponse convierte la entidad a su representación de API.
func NewFinanceStatResponse(s *entity.FinanceStat) FinanceStatResponse {
	layout := DateLayout
	if s.StatType == entity.StatTypeMonth {
		layout = "2006-01"
	}
	return FinanceStatResponse{
		ID:          s.ID,
		StatType:    s.StatType,
		StatDate:    s.StatDate.Format(layout),
		TotalSales:  s.TotalSales,
		TotalCost:   s.TotalCost,
		TotalProfit: s.TotalProfit,
	}
}

// NewFinanceStatResponseList convierte una lista de entidades.
func NewFinanceStatResponseList(stats []*entity.FinanceStat) []FinanceStatResponse {
	out := make([]FinanceStatResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, NewFinanceStatResponse(s))
	}
	return out
}
