package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// StockInRequest datos para registrar un ingreso de mercancía.
type StockInRequest struct {
	DrugID      string          `json:"drug_id"`
	SupplierID  string          `json:"supplier_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Date        string          `json:"date,omitempty"` // YYYY-MM-DD
	Remark      string          `json:"remark,omitempty"`
}

// SaleRequest datos para registrar una venta.
type SaleRequest struct {
	DrugID      string `json:"drug_id"`
	CustomerID  string `json:"customer_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	Date        string `json:"date,omitempty"`
}

// SupplierReturnRequest datos para registrar una devolución a proveedor.
type SupplierReturnRequest struct {
	DrugID      string `json:"drug_id"`
	SupplierID  string `json:"supplier_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
	Date        string `json:"date,omitempty"`
}

// SalesReturnRequest datos para registrar una devolución de venta.
type SalesReturnRequest struct {
	SaleID   string `json:"sale_id"`
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
	Date     string `json:"date,omitempty"`
}

// InventoryCheckRequest datos para registrar un conteo físico. checked_quantity
// es la cantidad que quien cuenta esperaba encontrar; actual_quantity lo que
// contó.
type InventoryCheckRequest struct {
	DrugID          string `json:"drug_id"`
	WarehouseID     string `json:"warehouse_id"`
	CheckedQuantity int64  `json:"checked_quantity"`
	ActualQuantity  int64  `json:"actual_quantity"`
	DiffReason      string `json:"diff_reason,omitempty"`
	Date            string `json:"date,omitempty"`
}

// StockInResponse representación de un ingreso en la API.
type StockInResponse struct {
	ID          string          `json:"id"`
	DrugID      string          `json:"drug_id"`
	SupplierID  string          `json:"supplier_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Date        string          `json:"date"`
	EmployeeID  string          `json:"employee_id"`
	Remark      string          `json:"remark,omitempty"`
}

// NewStockInResponse convierte la entidad a su representación de API.
func NewStockInResponse(s *entity.StockIn) StockInResponse {
	return StockInResponse{
		ID:          s.ID,
		DrugID:      s.DrugID,
		SupplierID:  s.SupplierID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalPrice:  s.TotalPrice,
		Date:        s.Date.Format(DateLayout),
		EmployeeID:  s.EmployeeID,
		Remark:      s.Remark,
	}
}

// NewStockInResponseList convierte una lista de entidades.
func NewStockInResponseList(items []*entity.StockIn) []StockInResponse {
	out := make([]StockInResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewStockInResponse(s))
	}
	return out
}

// SaleResponse representación de una venta en la API.
type SaleResponse struct {
	ID          string `json:"id"`
	DrugID      string `json:"drug_id"`
	CustomerID  string `json:"customer_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	Date        string `json:"date"`
	EmployeeID  string `json:"employee_id"`
}

// NewSaleResponse convierte la entidad a su representación de API.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		DrugID:      s.DrugID,
		CustomerID:  s.CustomerID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		Date:        s.Date.Format(DateLayout),
		EmployeeID:  s.EmployeeID,
	}
}

// NewSaleResponseList convierte una lista de entidades.
func NewSaleResponseList(items []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSaleResponse(s))
	}
	return out
}

// SupplierReturnResponse representación de una devolución a proveedor.
type SupplierReturnResponse struct {
	ID          string `json:"id"`
	DrugID      string `json:"drug_id"`
	SupplierID  string `json:"supplier_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
	Date        string `json:"date"`
	EmployeeID  string `json:"employee_id"`
}

// NewSupplierReturnResponse convierte la entidad a su representación de API.
func NewSupplierReturnResponse(r *entity.SupplierReturn) SupplierReturnResponse {
	return SupplierReturnResponse{
		ID:          r.ID,
		DrugID:      r.DrugID,
		SupplierID:  r.SupplierID,
		WarehouseID: r.WarehouseID,
		Quantity:    r.Quantity,
		Reason:      r.Reason,
		Date:        r.Date.Format(DateLayout),
		EmployeeID:  r.EmployeeID,
	}
}

// NewSupplierReturnResponseList convierte una lista de entidades.
func NewSupplierReturnResponseList(items []*entity.SupplierReturn) []SupplierReturnResponse {
	out := make([]SupplierReturnResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewSupplierReturnResponse(r))
	}
	return out
}

// SalesReturnResponse representación de una devolución de venta.
type SalesReturnResponse struct {
	ID          string `json:"id"`
	SaleID      string `json:"sale_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
	Date        string `json:"date"`
	EmployeeID  string `json:"employee_id"`
}

// NewSalesReturnResponse convierte la entidad a su representación de API.
func NewSalesReturnResponse(r *entity.SalesReturn) SalesReturnResponse {
	return SalesReturnResponse{
		ID:          r.ID,
		SaleID:      r.SaleID,
		WarehouseID: r.WarehouseID,
		Quantity:    r.Quantity,
		Reason:      r.Reason,
		Date:        r.Date.Format(DateLayout),
		EmployeeID:  r.EmployeeID,
	}
}

// NewSalesReturnResponseList convierte una lista de entidades.
func NewSalesReturnResponseList(items []*entity.SalesReturn) []SalesReturnResponse {
	out := make([]SalesReturnResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewSalesReturnResponse(r))
	}
	return out
}

// InventoryCheckResponse representación de un conteo físico.
type InventoryCheckResponse struct {
	ID              string `json:"id"`
	DrugID          string `json:"drug_id"`
	WarehouseID     string `json:"warehouse_id"`
	CheckedQuantity int64  `json:"checked_quantity"`
	ActualQuantity  int64  `json:"actual_quantity"`
	DiffReason      string `json:"diff_reason,omitempty"`
	Date            string `json:"date"`
	EmployeeID      string `json:"employee_id"`
}

// NewInventoryCheckResponse convierte la entidad a su representación de API.
func NewInventoryCheckResponse(c *entity.InventoryCheck) InventoryCheckResponse {
	return InventoryCheckResponse{
		ID:              c.ID,
		DrugID:          c.DrugID,
		WarehouseID:     c.WarehouseID,
		CheckedQuantity: c.CheckedQuantity,
		ActualQuantity:  c.ActualQuantity,
		DiffReason:      c.DiffReason,
		Date:            c.Date.Format(DateLayout),
		EmployeeID:      c.EmployeeID,
	}
}

// NewInventoryCheckResponseList convierte una lista de entidades.
func NewInventoryCheckResponseList(items []*entity.InventoryCheck) []InventoryCheckResponse {
	out := make([]InventoryCheckResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewInventoryCheckResponse(c))
	}
	return out
}

// InventoryResponse representación de una fila de existencias.
type InventoryResponse struct {
	ID            string `json:"id"`
	DrugID        string `json:"drug_id"`
	WarehouseID   string `json:"warehouse_id"`
	Quantity      int64  `json:"quantity"`
	Location      string `json:"location"`
	LastCheckDate string `json:"last_check_date,omitempty"`
}

// NewInventoryResponse convierte la entidad a su representación de API.
func NewInventoryResponse(inv *entity.Inventory) InventoryResponse {
	resp := InventoryResponse{
		ID:          inv.ID,
		DrugID:      inv.DrugID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		Location:    inv.Location,
	}
	if inv.LastCheckDate != nil {
		resp.LastCheckDate = inv.LastCheckDate.Format(DateLayout)
	}
	return resp
}

// NewInventoryResponseList convierte una lista de entidades.
func NewInventoryResponseList(items []*entity.Inventory) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(items))
	for _, inv := range items {
		out = append(out, NewInventoryResponse(inv))
	}
	return out
}
