package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// validateDrugPrices aplica la regla de catálogo: precios no negativos y
// precio de venta mayor o igual al de compra.
func validateDrugPrices(purchase, sale decimal.Decimal) error {
	if purchase.IsNegative() || sale.IsNegative() {
		return fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	if sale.LessThan(purchase) {
		return fmt.Errorf("%w: el precio de venta no puede ser menor que el de compra", domain.ErrInvalidInput)
	}
	return nil
}

// parseOptionalDate parsea una fecha YYYY-MM-DD; devuelve nil si viene vacía.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	return &t, nil
}
