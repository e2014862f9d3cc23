package batching

import (
	"time"

	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// LedgerUseCase registra producción y salidas de bobinas de forma
// transaccional y expone las consultas de stock derivado del ledger.
type LedgerUseCase struct {
	txRunner  TxRunner
	binRepo   repository.BinRepository
	prodRepo  repository.ProductionEntryRepository
	stockRepo repository.StockRepository
	now       func() time.Time
}

// NewLedgerUseCase construye el caso de uso del ledger.
func NewLedgerUseCase(
	txRunner TxRunner,
	binRepo repository.BinRepository,
	prodRepo repository.ProductionEntryRepository,
	stockRepo repository.StockRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:  txRunner,
		binRepo:   binRepo,
		prodRepo:  prodRepo,
		stockRepo: stockRepo,
		now:       time.Now,
	}
}

// WithClock fija el reloj del caso de uso (tests).
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}
