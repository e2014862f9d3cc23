package repository

import (
	"time"

	"github.com/sidheshsarda/mis/internal/domain/entity"
)

// PlanRepository expone los datos de planificación (solo lectura): plan de
// batch diario, composición por calidades y producción por tipo de hilado.
type PlanRepository interface {
	// YarnProductionByDate agrega la producción neta por tipo de hilado de
	// una fecha de doff.
	YarnProductionByDate(date time.Time) ([]entity.YarnProduction, error)
	// PlanDays devuelve las implantaciones activas de plan en [from, to].
	PlanDays(from, to time.Time) ([]entity.BatchPlanDay, error)
	// Composition devuelve el reparto porcentual por calidad de los planes
	// activos.
	Composition() ([]entity.BatchPlanComposition, error)
}
