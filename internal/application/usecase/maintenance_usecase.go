package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// MaintenanceUseCase agrupa operaciones administrativas. ResetOperationalData
// borra eventos, existencias y cierres financieros dejando el catálogo
// intacto.
type MaintenanceUseCase struct {
	tx      ledger.TxRunner
	stats   repository.FinanceStatRepository
	auditor ledger.Auditor
}

// NewMaintenanceUseCase crea el caso de uso de mantenimiento.
func NewMaintenanceUseCase(tx ledger.TxRunner, stats repository.FinanceStatRepository, auditor ledger.Auditor) *MaintenanceUseCase {
	return &MaintenanceUseCase{tx: tx, stats: stats, auditor: auditor}
}

// ResetOperationalData elimina todos los eventos de inventario, las
// existencias y los cierres financieros en una sola transacción. El catálogo,
// los empleados y la bitácora se conservan.
func (uc *MaintenanceUseCase) ResetOperationalData(ctx context.Context, actorID string) error {
	err := uc.tx.Run(ctx, func(r ledger.Repos) error {
		if err := r.Checks.DeleteAll(); err != nil {
			return fmt.Errorf("error al borrar conteos: %w", err)
		}
		if err := r.SalesReturns.DeleteAll(); err != nil {
			return fmt.Errorf("error al borrar devoluciones de venta: %w", err)
		}
		if err := r.SupplierReturns.DeleteAll(); err != nil {
			return fmt.Errorf("error al borrar devoluciones a proveedor: %w", err)
		}
		if err := r.Sales.DeleteAll(); err != nil {
			return fmt.Errorf("error al borrar ventas: %w", err)
		}
		if err := r.StockIns.DeleteAll(); err != nil {
			return fmt.Errorf("error al borrar ingresos: %w", err)
		}
		if err := r.Inventory.DeleteAll(); err != nil {
			return fmt.Errorf("error al borrar existencias: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := uc.stats.DeleteAll(); err != nil {
		return fmt.Errorf("error al borrar cierres financieros: %w", err)
	}

	uc.auditor.Record(actorID, entity.ActionReset, "system",
		"datos operativos reiniciados: eventos, existencias y cierres financieros")
	return nil
}
