package batching

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/application/dto"
	domainbatching "github.com/sidheshsarda/mis/internal/domain/batching"
)

var thousand = decimal.NewFromInt(1000)

// RecentEntries devuelve las últimas altas con su maduración en horas
// calculada contra el reloj actual truncado a la hora.
func (uc *LedgerUseCase) RecentEntries(ctx context.Context, limit int) ([]dto.RecentEntryDTO, error) {
	if limit <= 0 {
		limit = 25
	}
	entries, err := uc.prodRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	now := domainbatching.TruncateToHour(uc.now())
	out := make([]dto.RecentEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.RecentEntryDTO{
			EntryDate:     e.EntryDate.Format("2006-01-02"),
			EntryTime:     e.EntryTime,
			Spell:         e.Spell,
			SpreaderNo:    e.SpreaderNo,
			BinNo:         e.BinNo,
			EntryGroupID:  e.EntryGroupID,
			JuteQualityID: e.JuteQualityID,
			NoOfRolls:     e.NoOfRolls,
			WeightPerRoll: e.WeightPerRoll,
			MaturityHours: domainbatching.MaturityHours(e.Timestamp(), now),
		})
	}
	return out, nil
}

// BinsWithStock devuelve el panel de bins con stock vivo; la maduración se
// calcula sobre el instante medio de alta del grupo.
func (uc *LedgerUseCase) BinsWithStock(ctx context.Context) ([]dto.BinStockDTO, error) {
	rows, err := uc.stockRepo.BinsWithStock()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]dto.BinStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BinStockDTO{
			BinNo:         r.BinNo,
			EntryGroupID:  r.EntryGroupID,
			JuteQualityID: r.JuteQualityID,
			ProducedRolls: r.ProducedRolls,
			IssuedRolls:   r.IssuedRolls,
			CurrentRolls:  r.ProducedRolls - r.IssuedRolls,
			CurrentKG:     r.CurrentKG.Round(2),
			CurrentMT:     r.CurrentKG.Div(thousand).Round(3),
			MaturityHours: domainbatching.MaturityHours(r.AvgEntryTime, now),
		})
	}
	return out, nil
}

// AvailableWeights devuelve la disponibilidad por clase de peso de un grupo
// (solo pesos con saldo positivo).
func (uc *LedgerUseCase) AvailableWeights(ctx context.Context, groupID int64) ([]dto.WeightStockDTO, error) {
	rows, err := uc.stockRepo.AvailableByWeight(groupID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WeightStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.WeightStockDTO{
			WeightPerRoll:  r.WeightPerRoll,
			ProducedRolls:  r.ProducedRolls,
			IssuedRolls:    r.IssuedRolls,
			AvailableRolls: r.AvailableRolls,
		})
	}
	return out, nil
}
