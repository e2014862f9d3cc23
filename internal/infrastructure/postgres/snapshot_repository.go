package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo calcula el corte de stock por ventana con una sola consulta
// agregada. Las salidas no llevan bin ni calidad propios: heredan los del
// grupo (su primera alta fija ambos).
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// Window devuelve por (bin, grupo, peso, calidad): apertura (movimientos
// estrictamente anteriores a opening), producción y salidas en
// [opening, closing) y cierre derivado. Filas con todo a cero se descartan.
// Con opening == closing los deltas quedan en cero y el cierre es el stock
// as-of opening.
func (r *SnapshotRepo) Window(opening, closing time.Time) ([]entity.SnapshotRow, error) {
	query := `
		WITH grp AS (
			SELECT DISTINCT ON (entry_id_grp) entry_id_grp, bin_no, jute_quality_id
			FROM millstock.spreader_prod_entry
			ORDER BY entry_id_grp, entry_date, entry_time, id
		), mov AS (
			SELECT e.bin_no, e.entry_id_grp, e.wt_per_roll, e.jute_quality_id,
			       CASE WHEN e.entry_date + e.entry_time * INTERVAL '1 hour' < $1
			            THEN e.no_of_rolls ELSE 0 END AS opening,
			       CASE WHEN e.entry_date + e.entry_time * INTERVAL '1 hour' >= $1
			             AND e.entry_date + e.entry_time * INTERVAL '1 hour' < $2
			            THEN e.no_of_rolls ELSE 0 END AS produced,
			       0 AS issued
			FROM millstock.spreader_prod_entry e
			UNION ALL
			SELECT g.bin_no, i.entry_id_grp, i.wt_per_roll, g.jute_quality_id,
			       CASE WHEN i.issue_date + i.issue_time * INTERVAL '1 hour' < $1
			            THEN -i.no_of_rolls ELSE 0 END,
			       0,
			       CASE WHEN i.issue_date + i.issue_time * INTERVAL '1 hour' >= $1
			             AND i.issue_date + i.issue_time * INTERVAL '1 hour' < $2
			            THEN i.no_of_rolls ELSE 0 END
			FROM millstock.spreader_roll_issue i
			JOIN grp g ON g.entry_id_grp = i.entry_id_grp
		)
		SELECT bin_no, entry_id_grp, wt_per_roll, jute_quality_id,
		       SUM(opening) AS opening_rolls,
		       SUM(produced) AS produced_rolls,
		       SUM(issued) AS issued_rolls,
		       SUM(opening) + SUM(produced) - SUM(issued) AS closing_rolls
		FROM mov
		GROUP BY bin_no, entry_id_grp, wt_per_roll, jute_quality_id
		HAVING SUM(opening) <> 0 OR SUM(produced) <> 0 OR SUM(issued) <> 0
		ORDER BY bin_no, entry_id_grp, wt_per_roll`
	rows, err := r.q.Query(context.Background(), query, opening, closing)
	if err != nil {
		return nil, fmt.Errorf("snapshot window: %w", err)
	}
	defer rows.Close()

	var out []entity.SnapshotRow
	for rows.Next() {
		var sr entity.SnapshotRow
		if err := rows.Scan(
			&sr.BinNo, &sr.EntryGroupID, &sr.WeightPerRoll, &sr.JuteQualityID,
			&sr.OpeningRolls, &sr.ProducedRolls, &sr.IssuedRolls, &sr.ClosingRolls,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
