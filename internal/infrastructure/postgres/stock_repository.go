package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo expone el stock derivado (producido - emitido) sobre PostgreSQL.
// Usable con pool o tx; las validaciones de escritura lo usan dentro de la
// transacción que ya bloqueó el bin.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// AvailableByWeight devuelve la disponibilidad por clase de peso de un grupo,
// solo pesos con saldo positivo.
func (r *StockRepo) AvailableByWeight(groupID int64) ([]entity.WeightStock, error) {
	query := `
		SELECT wt_per_roll, produced, issued, produced - issued AS available
		FROM (
			SELECT e.wt_per_roll,
			       SUM(e.no_of_rolls) AS produced,
			       COALESCE((
					SELECT SUM(i.no_of_rolls)
					FROM millstock.spreader_roll_issue i
					WHERE i.entry_id_grp = $1 AND i.wt_per_roll = e.wt_per_roll), 0) AS issued
			FROM millstock.spreader_prod_entry e
			WHERE e.entry_id_grp = $1
			GROUP BY e.wt_per_roll
		) t
		WHERE produced - issued > 0
		ORDER BY wt_per_roll`
	rows, err := r.q.Query(context.Background(), query, groupID)
	if err != nil {
		return nil, fmt.Errorf("available by weight: %w", err)
	}
	defer rows.Close()

	var out []entity.WeightStock
	for rows.Next() {
		var ws entity.WeightStock
		if err := rows.Scan(&ws.WeightPerRoll, &ws.ProducedRolls, &ws.IssuedRolls, &ws.AvailableRolls); err != nil {
			return nil, fmt.Errorf("scan weight stock: %w", err)
		}
		out = append(out, ws)
	}
	return out, rows.Err()
}

// AvailableForWeight devuelve las bobinas disponibles del grupo para una
// clase de peso concreta (0 si el peso no existe en el grupo).
func (r *StockRepo) AvailableForWeight(groupID int64, weightPerRoll decimal.Decimal) (int, error) {
	query := `
		SELECT COALESCE((
			SELECT SUM(no_of_rolls) FROM millstock.spreader_prod_entry
			WHERE entry_id_grp = $1 AND wt_per_roll = $2), 0)
		     - COALESCE((
			SELECT SUM(no_of_rolls) FROM millstock.spreader_roll_issue
			WHERE entry_id_grp = $1 AND wt_per_roll = $2), 0)`
	var available int
	err := r.q.QueryRow(context.Background(), query, groupID, weightPerRoll).Scan(&available)
	if err != nil {
		return 0, fmt.Errorf("available for weight: %w", err)
	}
	return available, nil
}

// BinsWithStock devuelve los (bin, grupo, calidad) con stock neto positivo,
// con kg netos, última alta y el instante medio de alta del grupo para la
// maduración.
func (r *StockRepo) BinsWithStock() ([]entity.BinStock, error) {
	query := `
		WITH prod AS (
			SELECT bin_no, entry_id_grp, jute_quality_id,
			       SUM(no_of_rolls) AS produced_rolls,
			       SUM(no_of_rolls * wt_per_roll) AS produced_kg,
			       MAX(entry_date + entry_time * INTERVAL '1 hour') AS last_entry_ts,
			       to_timestamp(AVG(EXTRACT(EPOCH FROM entry_date + entry_time * INTERVAL '1 hour'))) AS avg_entry_ts
			FROM millstock.spreader_prod_entry
			GROUP BY bin_no, entry_id_grp, jute_quality_id
		), iss AS (
			SELECT entry_id_grp,
			       SUM(no_of_rolls) AS issued_rolls,
			       SUM(no_of_rolls * wt_per_roll) AS issued_kg
			FROM millstock.spreader_roll_issue
			GROUP BY entry_id_grp
		)
		SELECT p.bin_no, p.entry_id_grp, p.jute_quality_id,
		       p.produced_rolls, COALESCE(i.issued_rolls, 0),
		       p.produced_kg, COALESCE(i.issued_kg, 0),
		       p.produced_kg - COALESCE(i.issued_kg, 0) AS current_kg,
		       p.last_entry_ts, p.avg_entry_ts
		FROM prod p
		LEFT JOIN iss i ON i.entry_id_grp = p.entry_id_grp
		WHERE p.produced_rolls - COALESCE(i.issued_rolls, 0) > 0
		ORDER BY p.bin_no, p.entry_id_grp`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("bins with stock: %w", err)
	}
	defer rows.Close()

	var out []entity.BinStock
	for rows.Next() {
		var bs entity.BinStock
		if err := rows.Scan(
			&bs.BinNo, &bs.EntryGroupID, &bs.JuteQualityID,
			&bs.ProducedRolls, &bs.IssuedRolls,
			&bs.ProducedKG, &bs.IssuedKG, &bs.CurrentKG,
			&bs.LastEntryDate, &bs.AvgEntryTime,
		); err != nil {
			return nil, fmt.Errorf("scan bin stock: %w", err)
		}
		bs.LastEntryTime = bs.LastEntryDate.Hour()
		out = append(out, bs)
	}
	return out, rows.Err()
}
