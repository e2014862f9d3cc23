package batching

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/application/dto"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// SnapshotUseCase calcula cortes de stock de bobinas por ventana y as-of.
type SnapshotUseCase struct {
	snapshotRepo repository.SnapshotRepository
}

// NewSnapshotUseCase construye el caso de uso de cortes.
func NewSnapshotUseCase(snapshotRepo repository.SnapshotRepository) *SnapshotUseCase {
	return &SnapshotUseCase{snapshotRepo: snapshotRepo}
}

// Window devuelve apertura/producción/salidas/cierre por (bin, grupo, peso,
// calidad) para [opening, closing), con MT derivados y totales.
func (uc *SnapshotUseCase) Window(ctx context.Context, opening, closing time.Time) (*dto.SnapshotResponse, error) {
	rows, err := uc.snapshotRepo.Window(opening, closing)
	if err != nil {
		return nil, err
	}
	resp := &dto.SnapshotResponse{
		Opening: opening.Format("2006-01-02 15:00"),
		Closing: closing.Format("2006-01-02 15:00"),
		Rows:    make([]dto.SnapshotRowDTO, 0, len(rows)),
		TotalMT: decimal.Zero,
	}
	for _, r := range rows {
		mt := r.WeightPerRoll.Mul(decimal.NewFromInt(int64(r.ClosingRolls))).Div(thousand).Round(3)
		resp.Rows = append(resp.Rows, dto.SnapshotRowDTO{
			BinNo:         r.BinNo,
			EntryGroupID:  r.EntryGroupID,
			WeightPerRoll: r.WeightPerRoll,
			JuteQualityID: r.JuteQualityID,
			OpeningRolls:  r.OpeningRolls,
			ProducedRolls: r.ProducedRolls,
			IssuedRolls:   r.IssuedRolls,
			ClosingRolls:  r.ClosingRolls,
			ClosingMT:     mt,
		})
		resp.TotalClosing += r.ClosingRolls
		resp.TotalMT = resp.TotalMT.Add(mt)
	}
	return resp, nil
}

// PointInTime es el corte as-of: apertura==cierre, deltas de ventana a cero
// y el cierre equivale al stock de todas las altas estrictamente anteriores.
func (uc *SnapshotUseCase) PointInTime(ctx context.Context, at time.Time) (*dto.SnapshotResponse, error) {
	return uc.Window(ctx, at, at)
}
