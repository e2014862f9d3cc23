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

// ProductionInputDTO entrada para registrar un alta de producción.
type ProductionInputDTO struct {
	EntryDate     time.Time
	EntryTime     int
	Spell         string
	SpreaderNo    string
	BinNo         int
	JuteQualityID int
	NoOfRolls     int
	WeightPerRoll decimal.Decimal
	TrolleyNo     int
}

var validSpells = map[string]bool{
	entity.SpellA1: true,
	entity.SpellA2: true,
	entity.SpellB1: true,
	entity.SpellB2: true,
	entity.SpellC:  true,
}

// RecordProduction resuelve el grupo destino del bin, valida candado de
// calidad, anti-backdate y ventana de 4 horas, e inserta el alta. Todo
// dentro de una transacción que bloquea la fila del bin, así la resolución
// de grupo y la inserción son atómicas frente a envíos concurrentes.
func (uc *LedgerUseCase) RecordProduction(ctx context.Context, input ProductionInputDTO) (int64, error) {
	if err := validateProduction(input); err != nil {
		return 0, err
	}
	bin, err := uc.binRepo.GetByNo(input.BinNo)
	if err != nil {
		return 0, err
	}
	if bin == nil {
		return 0, fmt.Errorf("%w: bin %d", domain.ErrNotFound, input.BinNo)
	}

	candidate := domainbatching.Timestamp(input.EntryDate, input.EntryTime)
	var entryID int64
	err = uc.txRunner.Run(ctx, func(
		prodRepo repository.ProductionEntryRepository,
		_ repository.IssueEntryRepository,
		_ repository.StockRepository,
		binRepo repository.BinRepository,
	) error {
		if err := binRepo.Lock(input.BinNo); err != nil {
			return err
		}

		groupID, active, err := prodRepo.ActiveGroupForBin(input.BinNo)
		if err != nil {
			return err
		}
		if !active {
			// Bin vacío: reserva un grupo nuevo (id global máximo + 1,
			// asignación serializada en el repositorio).
			groupID, err = prodRepo.NextGroupID()
			if err != nil {
				return err
			}
		} else {
			if err := uc.checkGroupRules(prodRepo, groupID, input.JuteQualityID, candidate); err != nil {
				return err
			}
		}

		entry := &entity.ProductionEntry{
			EntryDate:     input.EntryDate,
			EntryTime:     input.EntryTime,
			Spell:         input.Spell,
			SpreaderNo:    input.SpreaderNo,
			BinNo:         input.BinNo,
			EntryGroupID:  groupID,
			JuteQualityID: input.JuteQualityID,
			NoOfRolls:     input.NoOfRolls,
			WeightPerRoll: input.WeightPerRoll,
			TrolleyNo:     input.TrolleyNo,
			CreatedAt:     uc.now(),
		}
		id, err := prodRepo.Create(entry)
		if err != nil {
			return err
		}
		entryID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return entryID, nil
}

// checkGroupRules aplica candado de calidad, anti-backdate y ventana de 4
// horas al reutilizar un grupo con stock.
func (uc *LedgerUseCase) checkGroupRules(
	prodRepo repository.ProductionEntryRepository,
	groupID int64,
	qualityID int,
	candidate time.Time,
) error {
	first, err := prodRepo.GroupFirstEntry(groupID)
	if err != nil {
		return err
	}
	if first == nil {
		return fmt.Errorf("%w: group %d", domain.ErrNotFound, groupID)
	}
	if first.JuteQualityID != qualityID {
		return fmt.Errorf("%w (group %d is quality %d)", domain.ErrQualityLocked, groupID, first.JuteQualityID)
	}
	earliest := first.Timestamp()
	if candidate.Before(earliest) {
		return fmt.Errorf("%w: earliest group entry %s; candidate %s precedes it",
			domain.ErrBackdatedEntry,
			earliest.Format("2006-01-02 15:00"), candidate.Format("2006-01-02 15:00"))
	}

	times, err := prodRepo.GroupEntryTimes(groupID)
	if err != nil {
		return err
	}
	dec := domainbatching.EvaluateWindow(times, candidate)
	if !dec.Allowed {
		return fmt.Errorf("%w: %s", domain.ErrWindowClosed, dec.Reason)
	}
	return nil
}

func validateProduction(input ProductionInputDTO) error {
	switch {
	case input.EntryDate.IsZero(),
		input.EntryTime < 0 || input.EntryTime > 23,
		!validSpells[input.Spell],
		input.BinNo <= 0,
		input.JuteQualityID <= 0,
		input.NoOfRolls <= 0,
		!input.WeightPerRoll.GreaterThan(decimal.Zero):
		return domain.ErrInvalidInput
	}
	return nil
}
