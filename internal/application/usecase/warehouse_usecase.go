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

// WarehouseUseCase gestiona las bodegas. El responsable debe ser un empleado
// existente.
type WarehouseUseCase struct {
	warehouses repository.WarehouseRepository
	employees  repository.EmployeeRepository
	auditor    ledger.Auditor
}

// NewWarehouseUseCase crea el caso de uso de bodegas.
func NewWarehouseUseCase(warehouses repository.WarehouseRepository, employees repository.EmployeeRepository, auditor ledger.Auditor) *WarehouseUseCase {
	return &WarehouseUseCase{warehouses: warehouses, employees: employees, auditor: auditor}
}

// Create registra una bodega validando que el responsable exista.
func (uc *WarehouseUseCase) Create(req dto.CreateWarehouseRequest, actorID string) (*entity.Warehouse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if err := uc.requireManager(req.ManagerID); err != nil {
		return nil, err
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Address:   req.Address,
		ManagerID: req.ManagerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouses.Create(warehouse); err != nil {
		return nil, fmt.Errorf("error al crear bodega: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionCreate, "warehouses",
		fmt.Sprintf("bodega creada: %s (%s)", warehouse.Name, warehouse.ID))
	return warehouse, nil
}

// GetByID devuelve una bodega o ErrNotFound.
func (uc *WarehouseUseCase) GetByID(id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar bodega: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, id)
	}
	return warehouse, nil
}

// List devuelve una página de bodegas.
func (uc *WarehouseUseCase) List(q dto.ListQuery) ([]*entity.Warehouse, error) {
	q.Normalize()
	return uc.warehouses.List(q.Limit, q.Offset)
}

// Update aplica cambios parciales a una bodega.
func (uc *WarehouseUseCase) Update(id string, req dto.UpdateWarehouseRequest, actorID string) (*entity.Warehouse, error) {
	warehouse, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		warehouse.Name = *req.Name
	}
	if req.Address != nil {
		warehouse.Address = *req.Address
	}
	if req.ManagerID != nil {
		if err := uc.requireManager(*req.ManagerID); err != nil {
			return nil, err
		}
		warehouse.ManagerID = *req.ManagerID
	}

	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouses.Update(warehouse); err != nil {
		return nil, fmt.Errorf("error al actualizar bodega: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionUpdate, "warehouses",
		fmt.Sprintf("bodega actualizada: %s (%s)", warehouse.Name, warehouse.ID))
	return warehouse, nil
}

// Delete elimina una bodega.
func (uc *WarehouseUseCase) Delete(id, actorID string) error {
	warehouse, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.warehouses.Delete(id); err != nil {
		return fmt.Errorf("error al eliminar bodega: %w", err)
	}
	uc.auditor.Record(actorID, entity.ActionDelete, "warehouses",
		fmt.Sprintf("bodega eliminada: %s (%s)", warehouse.Name, warehouse.ID))
	return nil
}

func (uc *WarehouseUseCase) requireManager(managerID string) error {
	if managerID == "" {
		return fmt.Errorf("%w: el responsable es obligatorio", domain.ErrInvalidInput)
	}
	manager, err := uc.employees.GetByID(managerID)
	if err != nil {
		return fmt.Errorf("error al consultar responsable: %w", err)
	}
	if manager == nil {
		return fmt.Errorf("%w: empleado responsable %s", domain.ErrNotFound, managerID)
	}
	return nil
}
