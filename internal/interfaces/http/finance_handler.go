package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/finance"
)

// FinanceHandler maneja los cierres financieros (protegido).
type FinanceHandler struct {
	uc     *finance.UseCase
	report *finance.ReportUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.UseCase, report *finance.ReportUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc, report: report}
}

// RecomputeDay godoc
// @Summary      Recalcular cierre diario
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.FinanceStatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/day/recompute [post]
func (h *FinanceHandler) RecomputeDay(c *fiber.Ctx) error {
	date, ok := requireDateQuery(c)
	if !ok {
		return nil
	}
	stat, err := h.uc.RecomputeDay(c.Context(), date, GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFinanceStatResponse(stat))
}

// GetDay godoc
// @Summary      Consultar cierre diario
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.FinanceStatResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finance/day [get]
func (h *FinanceHandler) GetDay(c *fiber.Ctx) error {
	date, ok := requireDateQuery(c)
	if !ok {
		return nil
	}
	stat, err := h.uc.GetDay(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFinanceStatResponse(stat))
}

// RecomputeMonth godoc
// @Summary      Recalcular cierre mensual
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {object}  dto.FinanceStatResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/finance/month/recompute [post]
func (h *FinanceHandler) RecomputeMonth(c *fiber.Ctx) error {
	year, month, ok := requireYearMonthQuery(c)
	if !ok {
		return nil
	}
	stat, err := h.uc.RecomputeMonth(c.Context(), year, month, GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFinanceStatResponse(stat))
}

// GetMonth godoc
// @Summary      Consultar cierre mensual
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {object}  dto.FinanceStatResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/finance/month [get]
func (h *FinanceHandler) GetMonth(c *fiber.Ctx) error {
	year, month, ok := requireYearMonthQuery(c)
	if !ok {
		return nil
	}
	stat, err := h.uc.GetMonth(c.Context(), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFinanceStatResponse(stat))
}

// WeeklySeries godoc
// @Summary      Serie de cierres diarios de los últimos 7 días
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FinanceStatResponse
// @Router       /api/finance/week [get]
func (h *FinanceHandler) WeeklySeries(c *fiber.Ctx) error {
	stats, err := h.uc.WeeklySeries(c.Context(), time.Now(), GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFinanceStatResponseList(stats))
}

// MonthlyReportPDF godoc
// @Summary      Descargar informe financiero mensual en PDF
// @Tags         finance
// @Security     Bearer
// @Produce      application/pdf
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finance/month/report [get]
func (h *FinanceHandler) MonthlyReportPDF(c *fiber.Ctx) error {
	year, month, ok := requireYearMonthQuery(c)
	if !ok {
		return nil
	}
	pdfBytes, err := h.report.GenerateMonthlyReportPDF(c.Context(), year, month, GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("informe-%04d-%02d.pdf", year, int(month))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// requireDateQuery exige el query param date=YYYY-MM-DD.
func requireDateQuery(c *fiber.Ctx) (time.Time, bool) {
	s := c.Query("date")
	if s == "" {
		_ = badRequest(c, "VALIDATION", "date es requerido (YYYY-MM-DD)")
		return time.Time{}, false
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		_ = badRequest(c, "VALIDATION", "fecha inválida (se espera YYYY-MM-DD)")
		return time.Time{}, false
	}
	return t, true
}

// requireYearMonthQuery exige year y month en la query string.
func requireYearMonthQuery(c *fiber.Ctx) (int, time.Month, bool) {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year == 0 || month < 1 || month > 12 {
		_ = badRequest(c, "VALIDATION", "year y month (1-12) son requeridos")
		return 0, 0, false
	}
	return year, time.Month(month), true
}
