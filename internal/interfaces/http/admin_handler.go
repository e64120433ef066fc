package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/audit"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// AdminHandler maneja las operaciones administrativas (solo admin).
type AdminHandler struct {
	maintenance *usecase.MaintenanceUseCase
	audit       *audit.Recorder
}

// NewAdminHandler construye el handler.
func NewAdminHandler(maintenance *usecase.MaintenanceUseCase, audit *audit.Recorder) *AdminHandler {
	return &AdminHandler{maintenance: maintenance, audit: audit}
}

// Reset godoc
// @Summary      Reiniciar datos operativos
// @Description  Borra eventos, existencias y cierres financieros. El catálogo
// @Description  y la bitácora se conservan.
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	if err := h.maintenance.ResetOperationalData(c.Context(), GetEmployeeID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "datos operativos reiniciados"})
}

// ListLogs godoc
// @Summary      Listar bitácora del sistema
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.SystemLogResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/logs [get]
func (h *AdminHandler) ListLogs(c *fiber.Ctx) error {
	logs, err := h.audit.List(c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSystemLogResponseList(logs))
}
