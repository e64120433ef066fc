package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/finance"
)

func TestNetCalculator(t *testing.T) {
	d := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

	cases := []struct {
		name          string
		grossSales    decimal.Decimal
		grossCost     decimal.Decimal
		returnedSales decimal.Decimal
		returnedCost  decimal.Decimal
		wantSales     decimal.Decimal
		wantCost      decimal.Decimal
		wantProfit    decimal.Decimal
	}{
		{
			name:       "día sin movimientos",
			grossSales: decimal.Zero, grossCost: decimal.Zero,
			returnedSales: decimal.Zero, returnedCost: decimal.Zero,
			wantSales: decimal.Zero, wantCost: decimal.Zero, wantProfit: decimal.Zero,
		},
		{
			name:       "ventas sin devoluciones",
			grossSales: d(1000), grossCost: d(600),
			returnedSales: decimal.Zero, returnedCost: decimal.Zero,
			wantSales: d(1000), wantCost: d(600), wantProfit: d(400),
		},
		{
			name:       "ventas con devoluciones",
			grossSales: d(1000), grossCost: d(600),
			returnedSales: d(100), returnedCost: d(60),
			wantSales: d(900), wantCost: d(540), wantProfit: d(360),
		},
		{
			name:       "devolución total deja el día en cero",
			grossSales: d(500), grossCost: d(300),
			returnedSales: d(500), returnedCost: d(300),
			wantSales: decimal.Zero, wantCost: decimal.Zero, wantProfit: decimal.Zero,
		},
		{
			name:       "utilidad negativa cuando el costo supera la venta",
			grossSales: d(100), grossCost: d(150),
			returnedSales: decimal.Zero, returnedCost: decimal.Zero,
			wantSales: d(100), wantCost: d(150), wantProfit: d(-50),
		},
		{
			name:       "centavos exactos sin deriva de redondeo",
			grossSales: d(10.10), grossCost: d(3.33),
			returnedSales: d(0.10), returnedCost: d(0.03),
			wantSales: d(10.00), wantCost: d(3.30), wantProfit: d(6.70),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := finance.NetCalculator(tc.grossSales, tc.grossCost, tc.returnedSales, tc.returnedCost)
			assert.True(t, got.Sales.Equal(tc.wantSales), "ventas netas: esperado %s, obtenido %s", tc.wantSales, got.Sales)
			assert.True(t, got.Cost.Equal(tc.wantCost), "costo neto: esperado %s, obtenido %s", tc.wantCost, got.Cost)
			assert.True(t, got.Profit.Equal(tc.wantProfit), "utilidad neta: esperado %s, obtenido %s", tc.wantProfit, got.Profit)
		})
	}
}
