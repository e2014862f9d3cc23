package batching_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/domain"
	"github.com/sidheshsarda/mis/internal/domain/entity"
)

func issueInput(day, hour int, groupID int64, rolls int) batching.IssueInputDTO {
	return batching.IssueInputDTO{
		IssueDate:      date(day),
		IssueTime:      hour,
		Spell:          entity.SpellA1,
		EntryGroupID:   groupID,
		WeightPerRoll:  wt58,
		NoOfRolls:      rolls,
		BreakerInterNo: "BK-2",
	}
}

func TestRecordIssue_DescuentaStockPorPeso(t *testing.T) {
	s := newFakeStore(12)
	s.addEntry(12, 1, 3, 1, 8, 20, wt58)
	uc := newLedger(s)

	// Primera salida de 15 dentro del stock.
	id, err := uc.RecordIssue(context.Background(), issueInput(1, 12, 1, 15))
	require.NoError(t, err)
	assert.Positive(t, id)

	// Quedan 5; pedir 10 debe fallar reportando lo disponible.
	_, err = uc.RecordIssue(context.Background(), issueInput(1, 14, 1, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "5 rolls available")
	assert.Contains(t, err.Error(), "58 kg rolls")
	assert.Len(t, s.issues, 1, "la salida rechazada no se persiste")
}

func TestRecordIssue_PesoSinStockEnElGrupo(t *testing.T) {
	s := newFakeStore(12)
	s.addEntry(12, 1, 3, 1, 8, 20, wt58)
	uc := newLedger(s)

	in := issueInput(1, 12, 1, 1)
	in.WeightPerRoll = decimal.NewFromInt(60) // clase de peso inexistente
	_, err := uc.RecordIssue(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "0 rolls available")
}

func TestRecordIssue_AntesDelArranqueDeProduccion(t *testing.T) {
	s := newFakeStore(12)
	s.addEntry(12, 1, 3, 2, 8, 20, wt58)
	uc := newLedger(s)

	_, err := uc.RecordIssue(context.Background(), issueInput(2, 7, 1, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIssueBeforeProduction)
}

func TestRecordIssue_MismaHoraDelArranqueEsValida(t *testing.T) {
	s := newFakeStore(12)
	s.addEntry(12, 1, 3, 2, 8, 20, wt58)
	uc := newLedger(s)

	_, err := uc.RecordIssue(context.Background(), issueInput(2, 8, 1, 5))
	assert.NoError(t, err, "salida en la misma hora del arranque no es anterior")
}

func TestRecordIssue_GrupoInexistente(t *testing.T) {
	s := newFakeStore(12)
	uc := newLedger(s)

	_, err := uc.RecordIssue(context.Background(), issueInput(1, 12, 99, 5))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordIssue_BloqueaElBinDelGrupo(t *testing.T) {
	s := newFakeStore(12)
	s.addEntry(12, 1, 3, 1, 8, 20, wt58)
	uc := newLedger(s)

	_, err := uc.RecordIssue(context.Background(), issueInput(1, 12, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{12}, s.locked, "la salida serializa contra el bin del grupo")
}

func TestRecordIssue_DatosInvalidos(t *testing.T) {
	s := newFakeStore(12)
	uc := newLedger(s)

	in := issueInput(1, 12, 1, 0)
	_, err := uc.RecordIssue(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
