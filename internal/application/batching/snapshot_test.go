package batching_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/domain/entity"
)

type fakeSnapshotRepo struct {
	rows    []entity.SnapshotRow
	opening time.Time
	closing time.Time
}

func (r *fakeSnapshotRepo) Window(opening, closing time.Time) ([]entity.SnapshotRow, error) {
	r.opening = opening
	r.closing = closing
	return r.rows, nil
}

func TestSnapshot_DerivaMTyTotales(t *testing.T) {
	repo := &fakeSnapshotRepo{rows: []entity.SnapshotRow{
		{BinNo: 3, EntryGroupID: 1, WeightPerRoll: wt58, JuteQualityID: 2,
			OpeningRolls: 10, ProducedRolls: 8, IssuedRolls: 5, ClosingRolls: 13},
		{BinNo: 7, EntryGroupID: 2, WeightPerRoll: decimal.NewFromInt(60), JuteQualityID: 4,
			OpeningRolls: 0, ProducedRolls: 20, IssuedRolls: 0, ClosingRolls: 20},
	}}
	uc := batching.NewSnapshotUseCase(repo)

	out, err := uc.Window(context.Background(), date(1).Add(6*time.Hour), date(2).Add(6*time.Hour))
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)

	// 13 bobinas × 58 kg = 754 kg = 0.754 MT
	assert.True(t, out.Rows[0].ClosingMT.Equal(decimal.NewFromFloat(0.754)), "got %s", out.Rows[0].ClosingMT)
	// 20 × 60 = 1200 kg = 1.2 MT
	assert.True(t, out.Rows[1].ClosingMT.Equal(decimal.NewFromFloat(1.2)), "got %s", out.Rows[1].ClosingMT)

	assert.Equal(t, 33, out.TotalClosing)
	assert.True(t, out.TotalMT.Equal(decimal.NewFromFloat(1.954)), "got %s", out.TotalMT)
	assert.Equal(t, "2025-09-01 06:00", out.Opening)
	assert.Equal(t, "2025-09-02 06:00", out.Closing)
}

func TestSnapshot_PointInTimeColapsaLaVentana(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	uc := batching.NewSnapshotUseCase(repo)

	at := date(5).Add(6 * time.Hour)
	_, err := uc.PointInTime(context.Background(), at)
	require.NoError(t, err)

	assert.Equal(t, at, repo.opening, "apertura del corte as-of")
	assert.Equal(t, at, repo.closing, "cierre igual a apertura: deltas en cero")
}
