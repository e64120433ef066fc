package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
)

// DashboardHandler maneja las vistas de solo lectura del tablero (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Cifras de cabecera del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesTrend godoc
// @Summary      Serie de ventas diarias
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días hacia atrás"  default(7)
// @Success      200   {array}  dto.TrendPointResponse
// @Router       /api/dashboard/sales-trend [get]
func (h *DashboardHandler) SalesTrend(c *fiber.Ctx) error {
	out, err := h.uc.SalesTrend(c.Context(), c.QueryInt("days", 7))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopDrugs godoc
// @Summary      Ranking de medicamentos más vendidos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        month_only  query  bool  false  "Solo mes en curso"  default(false)
// @Param        limit       query  int   false  "Tamaño del ranking"  default(5)
// @Success      200  {array}  dto.TopDrugResponse
// @Router       /api/dashboard/top-drugs [get]
func (h *DashboardHandler) TopDrugs(c *fiber.Ctx) error {
	out, err := h.uc.TopDrugs(c.Context(), c.QueryBool("month_only", false), c.QueryInt("limit", 5))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Detalle de existencias bajas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200  {array}  dto.LowStockItemResponse
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InventoryStatus godoc
// @Summary      Distribución de inventario por nivel de existencias
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatusResponse
// @Router       /api/dashboard/inventory-status [get]
func (h *DashboardHandler) InventoryStatus(c *fiber.Ctx) error {
	out, err := h.uc.InventoryStatus(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
