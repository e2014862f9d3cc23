package postgres

import (
	"context"
	"fmt"

	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

var _ repository.ReferenceRepository = (*ReferenceRepo)(nil)

// ReferenceRepo maestros de solo lectura: calidades de yute y maduraciones
// objetivo.
type ReferenceRepo struct {
	q Querier
}

// NewReferenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReferenceRepository(q Querier) *ReferenceRepo {
	return &ReferenceRepo{q: q}
}

// JuteQualities lista las calidades de yute.
func (r *ReferenceRepo) JuteQualities() ([]entity.JuteQuality, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, jute_quality FROM millstock.jute_quality_master ORDER BY jute_quality`)
	if err != nil {
		return nil, fmt.Errorf("list jute qualities: %w", err)
	}
	defer rows.Close()

	var out []entity.JuteQuality
	for rows.Next() {
		var q entity.JuteQuality
		if err := rows.Scan(&q.ID, &q.Name); err != nil {
			return nil, fmt.Errorf("scan jute quality: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// MaturityTargets lista las horas de maduración objetivo por calidad.
func (r *ReferenceRepo) MaturityTargets() ([]entity.MaturityTarget, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT jute_quality_id, maturity_hours FROM millstock.maturity_time_master ORDER BY jute_quality_id`)
	if err != nil {
		return nil, fmt.Errorf("list maturity targets: %w", err)
	}
	defer rows.Close()

	var out []entity.MaturityTarget
	for rows.Next() {
		var t entity.MaturityTarget
		if err := rows.Scan(&t.JuteQualityID, &t.MaturityHours); err != nil {
			return nil, fmt.Errorf("scan maturity target: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
