package batching

import (
	"context"

	"github.com/sidheshsarda/mis/internal/application/dto"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El ledger bloquea la fila del bin como
// primer paso, así dos envíos concurrentes contra el mismo bin se
// serializan y la comprobación de stock no puede correr en carrera.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		prodRepo repository.ProductionEntryRepository,
		issueRepo repository.IssueEntryRepository,
		stockRepo repository.StockRepository,
		binRepo repository.BinRepository,
	) error) error
}

// SnapshotPDFGenerator genera la representación PDF del corte de stock.
type SnapshotPDFGenerator interface {
	GenerateSnapshotPDF(ctx context.Context, snapshot *dto.SnapshotResponse) ([]byte, error)
}
