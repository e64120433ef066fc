package finance

import "github.com/shopspring/decimal"

// NetFigures agrupa los totales netos de un período (servicio de dominio).
type NetFigures struct {
	Sales  decimal.Decimal
	Cost   decimal.Decimal
	Profit decimal.Decimal
}

// NetCalculator calcula las cifras netas de un período:
// NetSales = VentasBrutas - VentasDevueltas
// NetCost  = CostoBruto   - CostoDevuelto
// NetProfit = NetSales - NetCost
// Toda la aritmética es decimal exacta (nunca float) para evitar deriva de
// redondeo en moneda.
func NetCalculator(grossSales, grossCost, returnedSales, returnedCost decimal.Decimal) NetFigures {
	netSales := grossSales.Sub(returnedSales)
	netCost := grossCost.Sub(returnedCost)
	return NetFigures{
		Sales:  netSales,
		Cost:   netCost,
		Profit: netSales.Sub(netCost),
	}
}
