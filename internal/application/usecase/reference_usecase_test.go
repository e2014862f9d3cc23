package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidheshsarda/mis/internal/application/usecase"
	"github.com/sidheshsarda/mis/internal/domain"
	"github.com/sidheshsarda/mis/internal/domain/entity"
)

type fakeBinRepo struct{ bins map[int]entity.Bin }

func (r *fakeBinRepo) List() ([]entity.Bin, error) {
	var out []entity.Bin
	for _, b := range r.bins {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BinNo < out[j].BinNo })
	return out, nil
}

func (r *fakeBinRepo) GetByNo(binNo int) (*entity.Bin, error) {
	b, ok := r.bins[binNo]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBinRepo) Lock(int) error { return nil }

type fakeRefRepo struct {
	qualities []entity.JuteQuality
	targets   []entity.MaturityTarget
}

func (r *fakeRefRepo) JuteQualities() ([]entity.JuteQuality, error)      { return r.qualities, nil }
func (r *fakeRefRepo) MaturityTargets() ([]entity.MaturityTarget, error) { return r.targets, nil }

func newReferenceUC() *usecase.ReferenceUseCase {
	binRepo := &fakeBinRepo{bins: map[int]entity.Bin{
		5:  {BinID: 1, BinNo: 5},
		12: {BinID: 2, BinNo: 12},
	}}
	refRepo := &fakeRefRepo{
		qualities: []entity.JuteQuality{{ID: 2, Name: "TD-4"}},
		targets:   []entity.MaturityTarget{{JuteQualityID: 2, MaturityHours: 24}},
	}
	return usecase.NewReferenceUseCase(binRepo, refRepo)
}

func TestBins_ListaOrdenada(t *testing.T) {
	uc := newReferenceUC()
	out, err := uc.Bins(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 5, out[0].BinNo)
	assert.Equal(t, 12, out[1].BinNo)
}

func TestBinByNo_Existente(t *testing.T) {
	uc := newReferenceUC()
	out, err := uc.BinByNo(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 2, out.BinID)
	assert.Equal(t, 12, out.BinNo)
}

func TestBinByNo_Inexistente(t *testing.T) {
	uc := newReferenceUC()
	_, err := uc.BinByNo(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJuteQualitiesYMaturityTargets(t *testing.T) {
	uc := newReferenceUC()

	qualities, err := uc.JuteQualities(context.Background())
	require.NoError(t, err)
	require.Len(t, qualities, 1)
	assert.Equal(t, "TD-4", qualities[0].Name)

	targets, err := uc.MaturityTargets(context.Background())
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, 24, targets[0].MaturityHours)
}
