package dto

import "github.com/shopspring/decimal"

// IssueRequiredRow proyección de salida requerida por calidad de yute.
// Redondeo: MT a 2 decimales, bobinas a 0.
type IssueRequiredRow struct {
	JuteQualityID  int             `json:"jute_quality_id"`
	JuteQuality    string          `json:"jute_quality"`
	RequiredMT     decimal.Decimal `json:"required_mt"`
	MaturityHours  int             `json:"maturity_hours"`
	TargetRolls    int             `json:"target_rolls"`
	CurrentRolls   int             `json:"current_rolls"`
	CurrentMT      decimal.Decimal `json:"current_mt"`
	ShortfallRolls int             `json:"shortfall_rolls"`
	ShortfallMT    decimal.Decimal `json:"shortfall_mt"`
}

// IssueRequiredResponse respuesta del planificador de salidas.
type IssueRequiredResponse struct {
	PlanDate     string             `json:"plan_date"`
	IssueDate    string             `json:"issue_date"`
	SnapshotAt   string             `json:"snapshot_at"`
	RollWeightKG decimal.Decimal    `json:"roll_weight_kg"`
	Rows         []IssueRequiredRow `json:"rows"`
}

// BinDTO bin maestro.
type BinDTO struct {
	BinID int `json:"bin_id"`
	BinNo int `json:"bin_no"`
}

// JuteQualityDTO calidad de yute de referencia.
type JuteQualityDTO struct {
	ID   int    `json:"id"`
	Name string `json:"jute_quality"`
}

// MaturityTargetDTO horas de maduración objetivo por calidad.
type MaturityTargetDTO struct {
	JuteQualityID int `json:"jute_quality_id"`
	MaturityHours int `json:"maturity_hours"`
}
