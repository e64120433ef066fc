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

// SupplierUseCase gestiona los proveedores. El nombre es único en el sistema.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	auditor   ledger.Auditor
}

// NewSupplierUseCase crea el caso de uso de proveedores.
func NewSupplierUseCase(suppliers repository.SupplierRepository, auditor ledger.Auditor) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, auditor: auditor}
}

// Create registra un proveedor. Un nombre repetido devuelve ErrDuplicate.
func (uc *SupplierUseCase) Create(req dto.CreateSupplierRequest, actorID string) (*entity.Supplier, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Contact:         req.Contact,
		Phone:           req.Phone,
		Address:         req.Address,
		QualificationNo: req.QualificationNo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.suppliers.Create(supplier); err != nil {
		return nil, fmt.Errorf("error al crear proveedor: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionCreate, "suppliers",
		fmt.Sprintf("proveedor creado: %s (%s)", supplier.Name, supplier.ID))
	return supplier, nil
}

// GetByID devuelve un proveedor o ErrNotFound.
func (uc *SupplierUseCase) GetByID(id string) (*entity.Supplier, error) {
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar proveedor: %w", err)
	}
	if supplier == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return supplier, nil
}

// List devuelve una página de proveedores.
func (uc *SupplierUseCase) List(q dto.ListQuery) ([]*entity.Supplier, error) {
	q.Normalize()
	return uc.suppliers.List(q.Limit, q.Offset)
}

// Update aplica cambios parciales a un proveedor.
func (uc *SupplierUseCase) Update(id string, req dto.UpdateSupplierRequest, actorID string) (*entity.Supplier, error) {
	supplier, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		supplier.Name = *req.Name
	}
	if req.Contact != nil {
		supplier.Contact = *req.Contact
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.QualificationNo != nil {
		supplier.QualificationNo = *req.QualificationNo
	}

	supplier.UpdatedAt = time.Now()
	if err := uc.suppliers.Update(supplier); err != nil {
		return nil, fmt.Errorf("error al actualizar proveedor: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionUpdate, "suppliers",
		fmt.Sprintf("proveedor actualizado: %s (%s)", supplier.Name, supplier.ID))
	return supplier, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id, actorID string) error {
	supplier, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.suppliers.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar proveedor: %w", err)
	}
	uc.auditor.Record(actorID, entity.ActionDelete, "suppliers",
		fmt.Sprintf("proveedor eliminado: %s (%s)", supplier.Name, supplier.ID))
	return nil
}
