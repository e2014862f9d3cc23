package batching

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/domain"
	domainbatching "github.com/sidheshsarda/mis/internal/domain/batching"
	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// IssueInputDTO entrada para registrar una salida de bobinas contra un
// grupo de producción.
type IssueInputDTO struct {
	IssueDate      time.Time
	IssueTime      int
	Spell          string
	EntryGroupID   int64
	WeightPerRoll  decimal.Decimal
	NoOfRolls      int
	BreakerInterNo string
}

// RecordIssue valida que la salida no preceda al arranque de producción del
// grupo y que no exceda el stock disponible de la clase de peso, e inserta.
// El bloqueo del bin dentro de la transacción cierra la carrera
// leer-stock-luego-insertar entre salidas concurrentes.
func (uc *LedgerUseCase) RecordIssue(ctx context.Context, input IssueInputDTO) (int64, error) {
	if err := validateIssue(input); err != nil {
		return 0, err
	}

	issueAt := domainbatching.Timestamp(input.IssueDate, input.IssueTime)
	var issueID int64
	err := uc.txRunner.Run(ctx, func(
		prodRepo repository.ProductionEntryRepository,
		issueRepo repository.IssueEntryRepository,
		stockRepo repository.StockRepository,
		binRepo repository.BinRepository,
	) error {
		first, err := prodRepo.GroupFirstEntry(input.EntryGroupID)
		if err != nil {
			return err
		}
		if first == nil {
			return fmt.Errorf("%w: group %d", domain.ErrNotFound, input.EntryGroupID)
		}
		if err := binRepo.Lock(first.BinNo); err != nil {
			return err
		}

		if issueAt.Before(first.Timestamp()) {
			return fmt.Errorf("%w (production started %s, issue at %s)",
				domain.ErrIssueBeforeProduction,
				first.Timestamp().Format("2006-01-02 15:00"), issueAt.Format("2006-01-02 15:00"))
		}

		available, err := stockRepo.AvailableForWeight(input.EntryGroupID, input.WeightPerRoll)
		if err != nil {
			return err
		}
		if input.NoOfRolls > available {
			return fmt.Errorf("%w for %s kg rolls (%d rolls available)",
				domain.ErrInsufficientStock, input.WeightPerRoll.String(), available)
		}

		issue := &entity.IssueEntry{
			IssueDate:      input.IssueDate,
			IssueTime:      input.IssueTime,
			Spell:          input.Spell,
			EntryGroupID:   input.EntryGroupID,
			WeightPerRoll:  input.WeightPerRoll,
			NoOfRolls:      input.NoOfRolls,
			BreakerInterNo: input.BreakerInterNo,
			CreatedAt:      uc.now(),
		}
		id, err := issueRepo.Create(issue)
		if err != nil {
			return err
		}
		issueID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return issueID, nil
}

func validateIssue(input IssueInputDTO) error {
	switch {
	case input.IssueDate.IsZero(),
		input.IssueTime < 0 || input.IssueTime > 23,
		!validSpells[input.Spell],
		input.EntryGroupID <= 0,
		input.NoOfRolls <= 0,
		!input.WeightPerRoll.GreaterThan(decimal.Zero):
		return domain.ErrInvalidInput
	}
	return nil
}
