package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
)

// TxRunner ejecuta funciones del motor de inventario dentro de una
// transacción, construyendo los repositorios sobre la misma tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

var _ ledger.TxRunner = (*TxRunner)(nil)

// NewTxRunner crea el ejecutor transaccional.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una transacción, ejecuta fn con repositorios ligados a ella y
// confirma si fn retorna nil. Ante error o pánico la transacción se revierte.
func (t *TxRunner) Run(ctx context.Context, fn func(r ledger.Repos) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer func() {
		// Rollback es no-op si ya se confirmó.
		_ = tx.Rollback(context.Background())
	}()

	repos := ledger.Repos{
		Inventory:       NewInventoryRepository(tx),
		StockIns:        NewStockInRepository(tx),
		Sales:           NewSaleRepository(tx),
		SupplierReturns: NewSupplierReturnRepository(tx),
		SalesReturns:    NewSalesReturnRepository(tx),
		Checks:          NewInventoryCheckRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}
