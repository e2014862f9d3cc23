package planning

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/application/dto"
	"github.com/sidheshsarda/mis/internal/domain"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// DefaultRollWeightKG peso estándar de bobina cuando el planificador no
// indica otro.
var DefaultRollWeightKG = decimal.NewFromInt(58)

// defaultExpectedKG producción de referencia cuando la fecha no tiene doffs
// del hilado (1 MT, igual que el planificador legado).
var defaultExpectedKG = decimal.NewFromInt(1000)

// IssueRequiredUseCase proyecta la salida de yute requerida por calidad:
// combina porcentajes del plan de batch, producción esperada por hilado,
// maduración objetivo y el stock actual del corte para marcar déficits.
type IssueRequiredUseCase struct {
	planRepo     repository.PlanRepository
	refRepo      repository.ReferenceRepository
	snapshotRepo repository.SnapshotRepository
	snapshotHour int
}

// NewIssueRequiredUseCase construye el planificador. snapshotHour es la hora
// de corte de la jornada fabril (06:00 en planta).
func NewIssueRequiredUseCase(
	planRepo repository.PlanRepository,
	refRepo repository.ReferenceRepository,
	snapshotRepo repository.SnapshotRepository,
	snapshotHour int,
) *IssueRequiredUseCase {
	return &IssueRequiredUseCase{
		planRepo:     planRepo,
		refRepo:      refRepo,
		snapshotRepo: snapshotRepo,
		snapshotHour: snapshotHour,
	}
}

// GenerateInputDTO entrada del planificador. ExpectedKG permite al
// planificador sobreescribir la producción esperada por tipo de hilado.
type GenerateInputDTO struct {
	PlanDate     time.Time
	RollWeightKG decimal.Decimal
	ExpectedKG   map[int]decimal.Decimal
}

// Generate calcula la proyección para el día de salida (plan_date + 1).
func (uc *IssueRequiredUseCase) Generate(ctx context.Context, input GenerateInputDTO) (*dto.IssueRequiredResponse, error) {
	if input.PlanDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	rollWeight := input.RollWeightKG
	if !rollWeight.GreaterThan(decimal.Zero) {
		rollWeight = DefaultRollWeightKG
	}

	issueDate := input.PlanDate.AddDate(0, 0, 1)

	// Producción histórica por hilado de la fecha del plan (base del reparto).
	expected, err := uc.expectedProduction(input.PlanDate, input.ExpectedKG)
	if err != nil {
		return nil, err
	}

	// Planes implantados para el día de salida y su composición por calidad.
	days, err := uc.planRepo.PlanDays(issueDate, issueDate)
	if err != nil {
		return nil, err
	}
	comps, err := uc.planRepo.Composition()
	if err != nil {
		return nil, err
	}
	compsByPlan := make(map[string][]int, len(comps))
	compIdx := make(map[string]map[int]decimal.Decimal)
	qualityNames := make(map[int]string)
	for _, c := range comps {
		if _, ok := compIdx[c.PlanCode]; !ok {
			compIdx[c.PlanCode] = make(map[int]decimal.Decimal)
		}
		compIdx[c.PlanCode][c.JuteQualityID] = c.Percentage
		compsByPlan[c.PlanCode] = append(compsByPlan[c.PlanCode], c.JuteQualityID)
		qualityNames[c.JuteQualityID] = c.JuteQuality
	}

	requiredKG := make(map[int]decimal.Decimal)
	for _, day := range days {
		exp, ok := expected[day.YarnTypeID]
		if !ok {
			exp = defaultExpectedKG
		}
		for _, qid := range compsByPlan[day.PlanCode] {
			requiredKG[qid] = requiredKG[qid].Add(RequiredIssueKG(compIdx[day.PlanCode][qid], exp))
		}
	}

	// Stock actual: corte as-of al amanecer del día de salida.
	snapshotAt := time.Date(issueDate.Year(), issueDate.Month(), issueDate.Day(),
		uc.snapshotHour, 0, 0, 0, issueDate.Location())
	snapRows, err := uc.snapshotRepo.Window(snapshotAt, snapshotAt)
	if err != nil {
		return nil, err
	}
	currentRolls := make(map[int]int)
	currentMT := make(map[int]decimal.Decimal)
	for _, r := range snapRows {
		currentRolls[r.JuteQualityID] += r.ClosingRolls
		mt := r.WeightPerRoll.Mul(decimal.NewFromInt(int64(r.ClosingRolls))).Div(thousand)
		currentMT[r.JuteQualityID] = currentMT[r.JuteQualityID].Add(mt)
	}

	maturity, err := uc.maturityByQuality()
	if err != nil {
		return nil, err
	}
	uc.fillQualityNames(qualityNames, currentRolls)

	// Unión de calidades planificadas y con stock (las segundas con objetivo
	// cero siguen apareciendo, igual que en el planificador legado).
	qualityIDs := make(map[int]bool, len(requiredKG)+len(currentRolls))
	for qid := range requiredKG {
		qualityIDs[qid] = true
	}
	for qid := range currentRolls {
		qualityIDs[qid] = true
	}

	rows := make([]dto.IssueRequiredRow, 0, len(qualityIDs))
	for qid := range qualityIDs {
		requiredMT := requiredKG[qid].Div(thousand).Round(2)
		target := TargetRolls(requiredMT, rollWeight, maturity[qid])
		shortfall := ShortfallRolls(target, currentRolls[qid])
		name := qualityNames[qid]
		if name == "" {
			name = strconv.Itoa(qid)
		}
		rows = append(rows, dto.IssueRequiredRow{
			JuteQualityID:  qid,
			JuteQuality:    name,
			RequiredMT:     requiredMT,
			MaturityHours:  maturity[qid],
			TargetRolls:    target,
			CurrentRolls:   currentRolls[qid],
			CurrentMT:      currentMT[qid].Round(2),
			ShortfallRolls: shortfall,
			ShortfallMT:    rollWeight.Mul(decimal.NewFromInt(int64(shortfall))).Div(thousand).Round(2),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].JuteQuality != rows[j].JuteQuality {
			return rows[i].JuteQuality < rows[j].JuteQuality
		}
		return rows[i].JuteQualityID < rows[j].JuteQualityID
	})

	return &dto.IssueRequiredResponse{
		PlanDate:     input.PlanDate.Format("2006-01-02"),
		IssueDate:    issueDate.Format("2006-01-02"),
		SnapshotAt:   snapshotAt.Format("2006-01-02 15:00"),
		RollWeightKG: rollWeight,
		Rows:         rows,
	}, nil
}

func (uc *IssueRequiredUseCase) expectedProduction(planDate time.Time, overrides map[int]decimal.Decimal) (map[int]decimal.Decimal, error) {
	prod, err := uc.planRepo.YarnProductionByDate(planDate)
	if err != nil {
		return nil, err
	}
	expected := make(map[int]decimal.Decimal, len(prod))
	for _, p := range prod {
		expected[p.YarnTypeID] = p.TotalKG
	}
	for yarnTypeID, kg := range overrides {
		expected[yarnTypeID] = kg
	}
	return expected, nil
}

func (uc *IssueRequiredUseCase) maturityByQuality() (map[int]int, error) {
	targets, err := uc.refRepo.MaturityTargets()
	if err != nil {
		return nil, err
	}
	m := make(map[int]int, len(targets))
	for _, t := range targets {
		m[t.JuteQualityID] = t.MaturityHours
	}
	return m, nil
}

// fillQualityNames completa nombres de calidades presentes solo en stock.
func (uc *IssueRequiredUseCase) fillQualityNames(names map[int]string, currentRolls map[int]int) {
	missing := false
	for qid := range currentRolls {
		if names[qid] == "" {
			missing = true
			break
		}
	}
	if !missing {
		return
	}
	qualities, err := uc.refRepo.JuteQualities()
	if err != nil {
		return // el nombre cae al id, no es motivo de fallo
	}
	for _, q := range qualities {
		if names[q.ID] == "" {
			names[q.ID] = q.Name
		}
	}
}
