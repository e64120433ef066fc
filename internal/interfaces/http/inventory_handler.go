package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
)

// InventoryHandler maneja los eventos de inventario y sus lecturas
// (protegido).
type InventoryHandler struct {
	engine *ledger.UseCase
	checks *ledger.CheckUseCase
	query  *ledger.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *ledger.UseCase, checks *ledger.CheckUseCase, query *ledger.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{engine: engine, checks: checks, query: query}
}

// RegisterStockIn godoc
// @Summary      Registrar ingreso de mercancía
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "Datos del ingreso"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock-ins [post]
func (h *InventoryHandler) RegisterStockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	date, ok := parseDate(c, in.Date)
	if !ok {
		return nil
	}
	stockIn, err := h.engine.RegisterStockIn(c.Context(), ledger.StockInInput{
		DrugID:      in.DrugID,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Date:        date,
		EmployeeID:  GetEmployeeID(c),
		Remark:      in.Remark,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewStockInResponse(stockIn))
}

// RegisterSale godoc
// @Summary      Registrar venta
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/sales [post]
func (h *InventoryHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	date, ok := parseDate(c, in.Date)
	if !ok {
		return nil
	}
	sale, err := h.engine.RegisterSale(c.Context(), ledger.SaleInput{
		DrugID:      in.DrugID,
		CustomerID:  in.CustomerID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Date:        date,
		EmployeeID:  GetEmployeeID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSaleResponse(sale))
}

// RegisterSupplierReturn godoc
// @Summary      Registrar devolución a proveedor
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierReturnRequest  true  "Datos de la devolución"
// @Success      201   {object}  dto.SupplierReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/supplier-returns [post]
func (h *InventoryHandler) RegisterSupplierReturn(c *fiber.Ctx) error {
	var in dto.SupplierReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	date, ok := parseDate(c, in.Date)
	if !ok {
		return nil
	}
	ret, err := h.engine.RegisterSupplierReturn(c.Context(), ledger.SupplierReturnInput{
		DrugID:      in.DrugID,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Date:        date,
		EmployeeID:  GetEmployeeID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSupplierReturnResponse(ret))
}

// RegisterSalesReturn godoc
// @Summary      Registrar devolución de venta
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesReturnRequest  true  "Datos de la devolución"
// @Success      201   {object}  dto.SalesReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/sales-returns [post]
func (h *InventoryHandler) RegisterSalesReturn(c *fiber.Ctx) error {
	var in dto.SalesReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	date, ok := parseDate(c, in.Date)
	if !ok {
		return nil
	}
	ret, err := h.engine.RegisterSalesReturn(c.Context(), ledger.SalesReturnInput{
		SaleID:     in.SaleID,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
		Date:       date,
		EmployeeID: GetEmployeeID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSalesReturnResponse(ret))
}

// RecordCheck godoc
// @Summary      Registrar conteo físico
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryCheckRequest  true  "Datos del conteo"
// @Success      201   {object}  dto.InventoryCheckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/checks [post]
func (h *InventoryHandler) RecordCheck(c *fiber.Ctx) error {
	var in dto.InventoryCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	date, ok := parseDate(c, in.Date)
	if !ok {
		return nil
	}
	check, err := h.checks.RecordCheck(c.Context(), ledger.CheckInput{
		DrugID:          in.DrugID,
		WarehouseID:     in.WarehouseID,
		CheckedQuantity: in.CheckedQuantity,
		ActualQuantity:  in.ActualQuantity,
		DiffReason:      in.DiffReason,
		Date:            date,
		EmployeeID:      GetEmployeeID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewInventoryCheckResponse(check))
}

// GetInventory godoc
// @Summary      Consultar existencias de (medicamento, bodega)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        drug_id       query  string  true  "ID del medicamento"
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	drugID := c.Query("drug_id")
	warehouseID := c.Query("warehouse_id")
	if drugID == "" || warehouseID == "" {
		return badRequest(c, "VALIDATION", "drug_id y warehouse_id son requeridos")
	}
	inv, err := h.query.GetInventory(drugID, warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(inv))
}

// ListInventory godoc
// @Summary      Listar existencias
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	q := listQuery(c)
	items, err := h.query.ListInventory(q.Limit, q.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewInventoryResponseList(items))
}

// ListStockIns godoc
// @Summary      Listar historial de ingresos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockInResponse
// @Router       /api/inventory/stock-ins [get]
func (h *InventoryHandler) ListStockIns(c *fiber.Ctx) error {
	q := listQuery(c)
	items, err := h.query.ListStockIns(q.Limit, q.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockInResponseList(items))
}

// ListSales godoc
// @Summary      Listar historial de ventas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/inventory/sales [get]
func (h *InventoryHandler) ListSales(c *fiber.Ctx) error {
	q := listQuery(c)
	items, err := h.query.ListSales(q.Limit, q.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponseList(items))
}

// GetSale godoc
// @Summary      Obtener venta por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/sales/{id} [get]
func (h *InventoryHandler) GetSale(c *fiber.Ctx) error {
	sale, err := h.query.GetSale(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleResponse(sale))
}

// ListSupplierReturns godoc
// @Summary      Listar devoluciones a proveedor
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierReturnResponse
// @Router       /api/inventory/supplier-returns [get]
func (h *InventoryHandler) ListSupplierReturns(c *fiber.Ctx) error {
	q := listQuery(c)
	items, err := h.query.ListSupplierReturns(q.Limit, q.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSupplierReturnResponseList(items))
}

// ListSalesReturns godoc
// @Summary      Listar devoluciones de venta
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesReturnResponse
// @Router       /api/inventory/sales-returns [get]
func (h *InventoryHandler) ListSalesReturns(c *fiber.Ctx) error {
	q := listQuery(c)
	items, err := h.query.ListSalesReturns(q.Limit, q.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSalesReturnResponseList(items))
}

// ListChecks godoc
// @Summary      Listar conteos físicos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryCheckResponse
// @Router       /api/inventory/checks [get]
func (h *InventoryHandler) ListChecks(c *fiber.Ctx) error {
	q := listQuery(c)
	items, err := h.query.ListChecks(q.Limit, q.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewInventoryCheckResponseList(items))
}

// parseDate parsea una fecha opcional YYYY-MM-DD del body. Si es inválida
// responde 400 y devuelve ok=false; si viene vacía devuelve el cero de
// time.Time (el caso de uso usará la fecha actual).
func parseDate(c *fiber.Ctx, s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		_ = badRequest(c, "VALIDATION", "fecha inválida (se espera YYYY-MM-DD)")
		return time.Time{}, false
	}
	return t, true
}
