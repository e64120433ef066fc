package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// CheckInput datos para registrar un conteo físico. CheckedQuantity es la
// cantidad que el empleado esperaba encontrar; ActualQuantity lo que contó.
type CheckInput struct {
	DrugID          string
	WarehouseID     string
	CheckedQuantity int64
	ActualQuantity  int64
	DiffReason      string
	Date            time.Time
	EmployeeID      string
}

// CheckUseCase concilia las existencias del sistema con conteos físicos.
type CheckUseCase struct {
	tx         TxRunner
	drugs      repository.DrugRepository
	warehouses repository.WarehouseRepository
	auditor    Auditor
}

// NewCheckUseCase crea el conciliador de conteos.
func NewCheckUseCase(tx TxRunner, drugs repository.DrugRepository, warehouses repository.WarehouseRepository, auditor Auditor) *CheckUseCase {
	return &CheckUseCase{tx: tx, drugs: drugs, warehouses: warehouses, auditor: auditor}
}

// RecordCheck registra un conteo físico. Ambas cantidades las declara quien
// cuenta: la esperada y la contada. Siempre actualiza la fecha de último
// conteo; la cantidad del sistema solo se sobreescribe con lo contado cuando
// el conteo declara discrepancia. El conteo queda en el historial con ambas
// cantidades.
func (uc *CheckUseCase) RecordCheck(ctx context.Context, in CheckInput) (*entity.InventoryCheck, error) {
	if in.CheckedQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad esperada no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.ActualQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad contada no puede ser negativa", domain.ErrInvalidInput)
	}
	if drug, err := uc.drugs.GetByID(in.DrugID); err != nil {
		return nil, fmt.Errorf("error al consultar medicamento: %w", err)
	} else if drug == nil {
		return nil, fmt.Errorf("%w: medicamento %s", domain.ErrNotFound, in.DrugID)
	}
	if wh, err := uc.warehouses.GetByID(in.WarehouseID); err != nil {
		return nil, fmt.Errorf("error al consultar bodega: %w", err)
	} else if wh == nil {
		return nil, fmt.Errorf("%w: bodega %s", domain.ErrNotFound, in.WarehouseID)
	}

	now := time.Now()
	checkDate := eventDate(in.Date, now)
	check := &entity.InventoryCheck{
		ID:              uuid.NewString(),
		DrugID:          in.DrugID,
		WarehouseID:     in.WarehouseID,
		CheckedQuantity: in.CheckedQuantity,
		ActualQuantity:  in.ActualQuantity,
		DiffReason:      in.DiffReason,
		Date:            checkDate,
		EmployeeID:      in.EmployeeID,
		CreatedAt:       now,
	}

	err := uc.tx.Run(ctx, func(r Repos) error {
		inv, err := r.Inventory.GetForUpdate(in.DrugID, in.WarehouseID)
		if err != nil {
			return fmt.Errorf("error al bloquear inventario: %w", err)
		}
		if inv == nil {
			return fmt.Errorf("%w: no existe inventario para medicamento=%s bodega=%s",
				domain.ErrNotFound, in.DrugID, in.WarehouseID)
		}

		if in.CheckedQuantity != in.ActualQuantity {
			inv.Quantity = in.ActualQuantity
		}
		inv.LastCheckDate = &checkDate
		inv.UpdatedAt = now
		if err := r.Inventory.Upsert(inv); err != nil {
			return fmt.Errorf("error al actualizar inventario: %w", err)
		}
		return r.Checks.Create(check)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(in.EmployeeID, entity.ActionUpdate, "inventory_checks",
		fmt.Sprintf("conteo registrado: medicamento=%s bodega=%s esperado=%d contado=%d",
			in.DrugID, in.WarehouseID, in.CheckedQuantity, in.ActualQuantity))
	return check, nil
}
