package planning

import "github.com/shopspring/decimal"

var (
	hundred     = decimal.NewFromInt(100)
	thousand    = decimal.NewFromInt(1000)
	hoursPerDay = decimal.NewFromInt(24)
)

// RequiredIssueKG reparte la producción esperada de un hilado sobre una
// calidad de yute según el porcentaje del plan de batch.
func RequiredIssueKG(percentage, expectedProductionKG decimal.Decimal) decimal.Decimal {
	return percentage.Mul(expectedProductionKG).Div(hundred)
}

// TargetRolls proyecta las bobinas necesarias para cubrir requiredMT con la
// maduración objetivo: (MT × 1000 / peso_bobina) × (horas_maduración / 24).
// Bobinas a 0 decimales.
func TargetRolls(requiredMT, rollWeightKG decimal.Decimal, maturityHours int) int {
	if !rollWeightKG.GreaterThan(decimal.Zero) {
		return 0
	}
	rolls := requiredMT.Mul(thousand).Div(rollWeightKG).
		Mul(decimal.NewFromInt(int64(maturityHours))).Div(hoursPerDay)
	return int(rolls.Round(0).IntPart())
}

// ShortfallRolls es el déficit frente al stock actual, con suelo en cero.
func ShortfallRolls(targetRolls, currentRolls int) int {
	if targetRolls <= currentRolls {
		return 0
	}
	return targetRolls - currentRolls
}
