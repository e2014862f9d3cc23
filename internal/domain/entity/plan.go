package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// YarnProduction es la producción neta de un tipo de hilado en una fecha
// (agregado de la tabla de doffs, solo lectura aquí).
type YarnProduction struct {
	YarnTypeID int
	YarnType   string
	TotalKG    decimal.Decimal
}

// BatchPlanDay es la implantación diaria de un plan de batch: qué plan se
// corre para cada tipo de hilado en cada fecha.
type BatchPlanDay struct {
	HdrID      int64
	PlanDate   time.Time
	PlanCode   string
	YarnTypeID int
	YarnType   string
}

// BatchPlanComposition reparte un plan de batch en porcentajes por calidad
// de yute.
type BatchPlanComposition struct {
	PlanHdrID     int64
	PlanCode      string
	PlanName      string
	Percentage    decimal.Decimal
	JuteQualityID int
	JuteQuality   string
}
