package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

var _ repository.ProductionEntryRepository = (*ProductionEntryRepo)(nil)

// ProductionEntryRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductionEntryRepo struct {
	q Querier
}

// NewProductionEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionEntryRepository(q Querier) *ProductionEntryRepo {
	return &ProductionEntryRepo{q: q}
}

// Create persiste un alta de producción y devuelve su id.
func (r *ProductionEntryRepo) Create(e *entity.ProductionEntry) (int64, error) {
	query := `
		INSERT INTO millstock.spreader_prod_entry
			(entry_date, entry_time, spell, spreader_no, bin_no, entry_id_grp,
			 jute_quality_id, no_of_rolls, wt_per_roll, trolley_no, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		e.EntryDate, e.EntryTime, e.Spell, e.SpreaderNo, e.BinNo, e.EntryGroupID,
		e.JuteQualityID, e.NoOfRolls, e.WeightPerRoll, e.TrolleyNo, e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create production entry: %w", err)
	}
	return id, nil
}

// NextGroupID reserva el siguiente entry_id_grp global (máximo + 1). El
// advisory lock transaccional serializa la asignación: el lock del bin no
// alcanza porque dos altas en bins distintos bloquean filas distintas. Se
// libera solo al commit, así el máximo se lee después de cada reserva.
func (r *ProductionEntryRepo) NextGroupID() (int64, error) {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext('millstock.spreader_prod_entry.entry_id_grp'))`,
	); err != nil {
		return 0, fmt.Errorf("lock group id allocation: %w", err)
	}
	var next int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(entry_id_grp), 0) + 1 FROM millstock.spreader_prod_entry`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next group id: %w", err)
	}
	return next, nil
}

// ActiveGroupForBin devuelve el grupo más reciente del bin con stock neto
// positivo en cualquier clase de peso.
func (r *ProductionEntryRepo) ActiveGroupForBin(binNo int) (int64, bool, error) {
	query := `
		SELECT e.entry_id_grp
		FROM millstock.spreader_prod_entry e
		WHERE e.bin_no = $1
		GROUP BY e.entry_id_grp
		HAVING SUM(e.no_of_rolls) - COALESCE((
			SELECT SUM(i.no_of_rolls)
			FROM millstock.spreader_roll_issue i
			WHERE i.entry_id_grp = e.entry_id_grp), 0) > 0
		ORDER BY e.entry_id_grp DESC
		LIMIT 1`
	var groupID int64
	err := r.q.QueryRow(context.Background(), query, binNo).Scan(&groupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("active group for bin %d: %w", binNo, err)
	}
	return groupID, true, nil
}

// GroupFirstEntry devuelve la primera alta del grupo por fecha+hora; nil si
// el grupo no existe.
func (r *ProductionEntryRepo) GroupFirstEntry(groupID int64) (*entity.ProductionEntry, error) {
	query := `
		SELECT id, entry_date, entry_time, spell, spreader_no, bin_no, entry_id_grp,
		       jute_quality_id, no_of_rolls, wt_per_roll, trolley_no, created_at
		FROM millstock.spreader_prod_entry
		WHERE entry_id_grp = $1
		ORDER BY entry_date, entry_time, id
		LIMIT 1`
	var e entity.ProductionEntry
	err := r.q.QueryRow(context.Background(), query, groupID).Scan(
		&e.ID, &e.EntryDate, &e.EntryTime, &e.Spell, &e.SpreaderNo, &e.BinNo,
		&e.EntryGroupID, &e.JuteQualityID, &e.NoOfRolls, &e.WeightPerRoll,
		&e.TrolleyNo, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("group first entry: %w", err)
	}
	return &e, nil
}

// GroupEntryTimes devuelve los timestamps (fecha + hora) de todas las altas
// del grupo en orden ascendente.
func (r *ProductionEntryRepo) GroupEntryTimes(groupID int64) ([]time.Time, error) {
	query := `
		SELECT entry_date + entry_time * INTERVAL '1 hour'
		FROM millstock.spreader_prod_entry
		WHERE entry_id_grp = $1
		ORDER BY 1`
	rows, err := r.q.Query(context.Background(), query, groupID)
	if err != nil {
		return nil, fmt.Errorf("group entry times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan entry time: %w", err)
		}
		times = append(times, ts)
	}
	return times, rows.Err()
}

// ListRecent devuelve las últimas altas por fecha+hora descendente.
func (r *ProductionEntryRepo) ListRecent(limit int) ([]*entity.ProductionEntry, error) {
	query := `
		SELECT id, entry_date, entry_time, spell, spreader_no, bin_no, entry_id_grp,
		       jute_quality_id, no_of_rolls, wt_per_roll, trolley_no, created_at
		FROM millstock.spreader_prod_entry
		ORDER BY entry_date DESC, entry_time DESC, id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ProductionEntry
	for rows.Next() {
		var e entity.ProductionEntry
		if err := rows.Scan(
			&e.ID, &e.EntryDate, &e.EntryTime, &e.Spell, &e.SpreaderNo, &e.BinNo,
			&e.EntryGroupID, &e.JuteQualityID, &e.NoOfRolls, &e.WeightPerRoll,
			&e.TrolleyNo, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
