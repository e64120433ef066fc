package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// DrugHandler maneja las peticiones del catálogo de medicamentos (protegido).
type DrugHandler struct {
	uc *usecase.DrugUseCase
}

// NewDrugHandler construye el handler.
func NewDrugHandler(uc *usecase.DrugUseCase) *DrugHandler {
	return &DrugHandler{uc: uc}
}

// Create godoc
// @Summary      Crear medicamento
// @Tags         drugs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDrugRequest  true  "Datos del medicamento"
// @Success      201   {object}  dto.DrugResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/drugs [post]
func (h *DrugHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDrugRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	drug, err := h.uc.Create(in, GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDrugResponse(drug))
}

// GetByID godoc
// @Summary      Obtener medicamento por ID
// @Tags         drugs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del medicamento"
// @Success      200  {object}  dto.DrugResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drugs/{id} [get]
func (h *DrugHandler) GetByID(c *fiber.Ctx) error {
	drug, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDrugResponse(drug))
}

// List godoc
// @Summary      Listar medicamentos
// @Tags         drugs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.DrugResponse
// @Router       /api/drugs [get]
func (h *DrugHandler) List(c *fiber.Ctx) error {
	drugs, err := h.uc.List(listQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDrugResponseList(drugs))
}

// Update godoc
// @Summary      Actualizar medicamento
// @Tags         drugs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del medicamento"
// @Param        body  body  dto.UpdateDrugRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DrugResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drugs/{id} [put]
func (h *DrugHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDrugRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	drug, err := h.uc.Update(c.Params("id"), in, GetEmployeeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDrugResponse(drug))
}

// Delete godoc
// @Summary      Eliminar medicamento
// @Tags         drugs
// @Security     Bearer
// @Param        id  path  string  true  "ID del medicamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/drugs/{id} [delete]
func (h *DrugHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetEmployeeID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listQuery extrae y normaliza la paginación de la query string.
func listQuery(c *fiber.Ctx) dto.ListQuery {
	q := dto.ListQuery{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	q.Normalize()
	return q
}
