package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo datos de planificación de solo lectura: plan de batch, su
// composición y producción por hilado.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// YarnProductionByDate agrega la producción neta por tipo de hilado de una
// fecha de doff.
func (r *PlanRepo) YarnProductionByDate(date time.Time) ([]entity.YarnProduction, error) {
	query := `
		SELECT yarn_type_id, MAX(yarn_type), SUM(net_kg)
		FROM millstock.yarn_production
		WHERE doff_date = $1
		GROUP BY yarn_type_id
		ORDER BY yarn_type_id`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("yarn production by date: %w", err)
	}
	defer rows.Close()

	var out []entity.YarnProduction
	for rows.Next() {
		var p entity.YarnProduction
		if err := rows.Scan(&p.YarnTypeID, &p.YarnType, &p.TotalKG); err != nil {
			return nil, fmt.Errorf("scan yarn production: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PlanDays devuelve las implantaciones de plan activas en [from, to].
func (r *PlanRepo) PlanDays(from, to time.Time) ([]entity.BatchPlanDay, error) {
	query := `
		SELECT h.id, d.plan_date, d.batch_plan_code, d.yarn_type_id,
		       COALESCE(y.yarn_type, '')
		FROM millstock.batch_plan_daily_implement d
		JOIN millstock.batch_plan_hdr h ON h.plan_code = d.batch_plan_code
		LEFT JOIN (
			SELECT DISTINCT yarn_type_id, yarn_type FROM millstock.yarn_production
		) y ON y.yarn_type_id = d.yarn_type_id
		WHERE d.plan_date BETWEEN $1 AND $2
		ORDER BY d.plan_date, d.batch_plan_code`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("plan days: %w", err)
	}
	defer rows.Close()

	var out []entity.BatchPlanDay
	for rows.Next() {
		var d entity.BatchPlanDay
		if err := rows.Scan(&d.HdrID, &d.PlanDate, &d.PlanCode, &d.YarnTypeID, &d.YarnType); err != nil {
			return nil, fmt.Errorf("scan plan day: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Composition devuelve el reparto porcentual por calidad de los planes activos.
func (r *PlanRepo) Composition() ([]entity.BatchPlanComposition, error) {
	query := `
		SELECT h.id, h.plan_code, h.plan_name, d.percentage, d.jute_quality_id,
		       q.jute_quality
		FROM millstock.batch_plan_dtl d
		JOIN millstock.batch_plan_hdr h ON h.id = d.batch_plan_hdr_id
		JOIN millstock.jute_quality_master q ON q.id = d.jute_quality_id
		WHERE h.is_active
		ORDER BY h.plan_code, q.jute_quality`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("plan composition: %w", err)
	}
	defer rows.Close()

	var out []entity.BatchPlanComposition
	for rows.Next() {
		var c entity.BatchPlanComposition
		if err := rows.Scan(&c.PlanHdrID, &c.PlanCode, &c.PlanName, &c.Percentage,
			&c.JuteQualityID, &c.JuteQuality); err != nil {
			return nil, fmt.Errorf("scan plan composition: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
