package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// Ensure TxRunner implements batching.TxRunner.
var _ batching.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El callback debe tomar el lock del bin antes de leer
// stock para serializar escrituras concurrentes sobre el mismo bin.
func (r *TxRunner) Run(ctx context.Context, fn func(
	prodRepo repository.ProductionEntryRepository,
	issueRepo repository.IssueEntryRepository,
	stockRepo repository.StockRepository,
	binRepo repository.BinRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	prodRepo := NewProductionEntryRepository(tx)
	issueRepo := NewIssueEntryRepository(tx)
	stockRepo := NewStockRepository(tx)
	binRepo := NewBinRepository(tx)

	if err := fn(prodRepo, issueRepo, stockRepo, binRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
