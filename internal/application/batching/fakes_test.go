package batching_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// fakeStore es un ledger en memoria que implementa todos los puertos de
// persistencia que usa el caso de uso, suficiente para ejercitar las reglas
// de negocio sin base de datos.
type fakeStore struct {
	bins          map[int]entity.Bin
	entries       []*entity.ProductionEntry
	issues        []*entity.IssueEntry
	nextID        int64
	reservedGroup int64 // último entry_id_grp reservado por NextGroupID
	locked        []int // bins bloqueados, en orden de llamada
}

func newFakeStore(binNos ...int) *fakeStore {
	s := &fakeStore{bins: make(map[int]entity.Bin)}
	for i, n := range binNos {
		s.bins[n] = entity.Bin{BinID: i + 1, BinNo: n}
	}
	return s
}

func (s *fakeStore) addEntry(binNo int, groupID int64, qualityID int, day, hour, rolls int, wt decimal.Decimal) {
	s.nextID++
	s.entries = append(s.entries, &entity.ProductionEntry{
		ID:            s.nextID,
		EntryDate:     date(day),
		EntryTime:     hour,
		Spell:         entity.SpellA1,
		SpreaderNo:    "SP-1",
		BinNo:         binNo,
		EntryGroupID:  groupID,
		JuteQualityID: qualityID,
		NoOfRolls:     rolls,
		WeightPerRoll: wt,
		CreatedAt:     time.Now(),
	})
}

func (s *fakeStore) addIssue(groupID int64, day, hour, rolls int, wt decimal.Decimal) {
	s.nextID++
	s.issues = append(s.issues, &entity.IssueEntry{
		ID:            s.nextID,
		IssueDate:     date(day),
		IssueTime:     hour,
		Spell:         entity.SpellA1,
		EntryGroupID:  groupID,
		WeightPerRoll: wt,
		NoOfRolls:     rolls,
		CreatedAt:     time.Now(),
	})
}

func date(day int) time.Time {
	return time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
}

// ── ProductionEntryRepository ────────────────────────────────────────────────

func (s *fakeStore) Create(e *entity.ProductionEntry) (int64, error) {
	s.nextID++
	e.ID = s.nextID
	s.entries = append(s.entries, e)
	return e.ID, nil
}

// NextGroupID imita la reserva serializada: el id queda tomado aunque el
// alta que lo pidió todavía no esté persistida.
func (s *fakeStore) NextGroupID() (int64, error) {
	max := s.reservedGroup
	for _, e := range s.entries {
		if e.EntryGroupID > max {
			max = e.EntryGroupID
		}
	}
	s.reservedGroup = max + 1
	return s.reservedGroup, nil
}

func (s *fakeStore) ActiveGroupForBin(binNo int) (int64, bool, error) {
	produced := make(map[int64]int)
	for _, e := range s.entries {
		if e.BinNo == binNo {
			produced[e.EntryGroupID] += e.NoOfRolls
		}
	}
	var best int64
	found := false
	for groupID, rolls := range produced {
		net := rolls
		for _, i := range s.issues {
			if i.EntryGroupID == groupID {
				net -= i.NoOfRolls
			}
		}
		if net > 0 && groupID > best {
			best = groupID
			found = true
		}
	}
	return best, found, nil
}

func (s *fakeStore) GroupFirstEntry(groupID int64) (*entity.ProductionEntry, error) {
	var first *entity.ProductionEntry
	for _, e := range s.entries {
		if e.EntryGroupID != groupID {
			continue
		}
		if first == nil || e.Timestamp().Before(first.Timestamp()) {
			first = e
		}
	}
	return first, nil
}

func (s *fakeStore) GroupEntryTimes(groupID int64) ([]time.Time, error) {
	var times []time.Time
	for _, e := range s.entries {
		if e.EntryGroupID == groupID {
			times = append(times, e.Timestamp())
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times, nil
}

func (s *fakeStore) ListRecent(limit int) ([]*entity.ProductionEntry, error) {
	out := make([]*entity.ProductionEntry, len(s.entries))
	copy(out, s.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp().After(out[j].Timestamp()) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── IssueEntryRepository ─────────────────────────────────────────────────────

type fakeIssueRepo struct{ s *fakeStore }

func (r fakeIssueRepo) Create(e *entity.IssueEntry) (int64, error) {
	r.s.nextID++
	e.ID = r.s.nextID
	r.s.issues = append(r.s.issues, e)
	return e.ID, nil
}

// ── StockRepository ──────────────────────────────────────────────────────────

func (s *fakeStore) AvailableByWeight(groupID int64) ([]entity.WeightStock, error) {
	byWeight := make(map[string]*entity.WeightStock)
	for _, e := range s.entries {
		if e.EntryGroupID != groupID {
			continue
		}
		key := e.WeightPerRoll.String()
		if byWeight[key] == nil {
			byWeight[key] = &entity.WeightStock{WeightPerRoll: e.WeightPerRoll}
		}
		byWeight[key].ProducedRolls += e.NoOfRolls
	}
	for _, i := range s.issues {
		if i.EntryGroupID != groupID {
			continue
		}
		if ws := byWeight[i.WeightPerRoll.String()]; ws != nil {
			ws.IssuedRolls += i.NoOfRolls
		}
	}
	var out []entity.WeightStock
	for _, ws := range byWeight {
		ws.AvailableRolls = ws.ProducedRolls - ws.IssuedRolls
		if ws.AvailableRolls > 0 {
			out = append(out, *ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeightPerRoll.LessThan(out[j].WeightPerRoll) })
	return out, nil
}

func (s *fakeStore) AvailableForWeight(groupID int64, weightPerRoll decimal.Decimal) (int, error) {
	available := 0
	for _, e := range s.entries {
		if e.EntryGroupID == groupID && e.WeightPerRoll.Equal(weightPerRoll) {
			available += e.NoOfRolls
		}
	}
	for _, i := range s.issues {
		if i.EntryGroupID == groupID && i.WeightPerRoll.Equal(weightPerRoll) {
			available -= i.NoOfRolls
		}
	}
	return available, nil
}

func (s *fakeStore) BinsWithStock() ([]entity.BinStock, error) {
	type key struct {
		bin     int
		group   int64
		quality int
	}
	agg := make(map[key]*entity.BinStock)
	sums := make(map[key]int64) // suma de epoch para promedio
	counts := make(map[key]int)
	for _, e := range s.entries {
		k := key{e.BinNo, e.EntryGroupID, e.JuteQualityID}
		if agg[k] == nil {
			agg[k] = &entity.BinStock{BinNo: e.BinNo, EntryGroupID: e.EntryGroupID, JuteQualityID: e.JuteQualityID}
		}
		agg[k].ProducedRolls += e.NoOfRolls
		agg[k].ProducedKG = agg[k].ProducedKG.Add(e.WeightPerRoll.Mul(decimal.NewFromInt(int64(e.NoOfRolls))))
		sums[k] += e.Timestamp().Unix()
		counts[k]++
	}
	var out []entity.BinStock
	for k, bs := range agg {
		for _, i := range s.issues {
			if i.EntryGroupID == k.group {
				bs.IssuedRolls += i.NoOfRolls
				bs.IssuedKG = bs.IssuedKG.Add(i.WeightPerRoll.Mul(decimal.NewFromInt(int64(i.NoOfRolls))))
			}
		}
		if bs.ProducedRolls-bs.IssuedRolls <= 0 {
			continue
		}
		bs.CurrentKG = bs.ProducedKG.Sub(bs.IssuedKG)
		bs.AvgEntryTime = time.Unix(sums[k]/int64(counts[k]), 0).UTC()
		out = append(out, *bs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BinNo < out[j].BinNo })
	return out, nil
}

// ── BinRepository ────────────────────────────────────────────────────────────

func (s *fakeStore) List() ([]entity.Bin, error) {
	var out []entity.Bin
	for _, b := range s.bins {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BinNo < out[j].BinNo })
	return out, nil
}

func (s *fakeStore) GetByNo(binNo int) (*entity.Bin, error) {
	b, ok := s.bins[binNo]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *fakeStore) Lock(binNo int) error {
	s.locked = append(s.locked, binNo)
	return nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (r fakeTxRunner) Run(_ context.Context, fn func(
	prodRepo repository.ProductionEntryRepository,
	issueRepo repository.IssueEntryRepository,
	stockRepo repository.StockRepository,
	binRepo repository.BinRepository,
) error) error {
	return fn(r.s, fakeIssueRepo{r.s}, r.s, r.s)
}

// newLedger arma un LedgerUseCase completo sobre el fakeStore.
func newLedger(s *fakeStore) *batching.LedgerUseCase {
	return batching.NewLedgerUseCase(fakeTxRunner{s}, s, s, s)
}
