package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// DrugUseCase gestiona el catálogo de medicamentos.
type DrugUseCase struct {
	drugs   repository.DrugRepository
	auditor ledger.Auditor
}

// NewDrugUseCase crea el caso de uso del catálogo de medicamentos.
func NewDrugUseCase(drugs repository.DrugRepository, auditor ledger.Auditor) *DrugUseCase {
	return &DrugUseCase{drugs: drugs, auditor: auditor}
}

// Create registra un medicamento. El precio de venta no puede ser menor que el
// de compra.
func (uc *DrugUseCase) Create(req dto.CreateDrugRequest, employeeID string) (*entity.Drug, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if err := validateDrugPrices(req.PurchasePrice, req.SalePrice); err != nil {
		return nil, err
	}
	expiry, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	drug := &entity.Drug{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Spec:           req.Spec,
		Manufacturer:   req.Manufacturer,
		ApprovalNumber: req.ApprovalNumber,
		Category:       req.Category,
		Unit:           req.Unit,
		PurchasePrice:  req.PurchasePrice,
		SalePrice:      req.SalePrice,
		ExpiryDate:     expiry,
		Status:         entity.DrugStatusOnSale,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.drugs.Create(drug); err != nil {
		return nil, fmt.Errorf("error al crear medicamento: %w", err)
	}

	uc.auditor.Record(employeeID, entity.ActionCreate, "drugs",
		fmt.Sprintf("medicamento creado: %s (%s)", drug.Name, drug.ID))
	return drug, nil
}

// GetByID devuelve un medicamento o ErrNotFound.
func (uc *DrugUseCase) GetByID(id string) (*entity.Drug, error) {
	drug, err := uc.drugs.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar medicamento: %w", err)
	}
	if drug == nil {
		return nil, fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, id)
	}
	return drug, nil
}

// List devuelve una página del catálogo.
func (uc *DrugUseCase) List(q dto.ListQuery) ([]*entity.Drug, error) {
	q.Normalize()
	return uc.drugs.List(q.Limit, q.Offset)
}

// Update aplica cambios parciales a un medicamento manteniendo la regla de
// precios.
func (uc *DrugUseCase) Update(id string, req dto.UpdateDrugRequest, employeeID string) (*entity.Drug, error) {
	drug, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		drug.Name = *req.Name
	}
	if req.Spec != nil {
		drug.Spec = *req.Spec
	}
	if req.Manufacturer != nil {
		drug.Manufacturer = *req.Manufacturer
	}
	if req.ApprovalNumber != nil {
		drug.ApprovalNumber = *req.ApprovalNumber
	}
	if req.Category != nil {
		drug.Category = *req.Category
	}
	if req.Unit != nil {
		drug.Unit = *req.Unit
	}
	if req.PurchasePrice != nil {
		drug.PurchasePrice = *req.PurchasePrice
	}
	if req.SalePrice != nil {
		drug.SalePrice = *req.SalePrice
	}
	if err := validateDrugPrices(drug.PurchasePrice, drug.SalePrice); err != nil {
		return nil, err
	}
	if req.ExpiryDate != nil {
		expiry, err := parseOptionalDate(*req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		drug.ExpiryDate = expiry
	}
	if req.Status != nil {
		if *req.Status != entity.DrugStatusOnSale && *req.Status != entity.DrugStatusDiscontinued {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *req.Status)
		}
		drug.Status = *req.Status
	}

	drug.UpdatedAt = time.Now()
	if err := uc.drugs.Update(drug); err != nil {
		return nil, fmt.Errorf("error al actualizar medicamento: %w", err)
	}

	uc.auditor.Record(employeeID, entity.ActionUpdate, "drugs",
		fmt.Sprintf("medicamento actualizado: %s (%s)", drug.Name, drug.ID))
	return drug, nil
}

// Delete elimina un medicamento del catálogo.
func (uc *DrugUseCase) Delete(id, employeeID string) error {
	drug, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.drugs.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar medicamento: %w", err)
	}
	uc.auditor.Record(employeeID, entity.ActionDelete, "drugs",
		fmt.Sprintf("medicamento eliminado: %s (%s)", drug.Name, drug.ID))
	return nil
}
