package dto

import "github.com/shopspring/decimal"

// RecordProductionRequest body para POST /api/spreader/entries.
// entry_date en formato YYYY-MM-DD; entry_time es la hora entera 0-23.
type RecordProductionRequest struct {
	EntryDate     string          `json:"entry_date"`
	EntryTime     int             `json:"entry_time"`
	Spell         string          `json:"spell"`
	SpreaderNo    string          `json:"spreader_no"`
	BinNo         int             `json:"bin_no"`
	JuteQualityID int             `json:"jute_quality_id"`
	NoOfRolls     int             `json:"no_of_rolls"`
	WeightPerRoll decimal.Decimal `json:"wt_per_roll"`
	TrolleyNo     int             `json:"trolley_no"`
}

// RecordIssueRequest body para POST /api/spreader/issues.
type RecordIssueRequest struct {
	IssueDate      string          `json:"issue_date"`
	IssueTime      int             `json:"issue_time"`
	Spell          string          `json:"spell"`
	EntryGroupID   int64           `json:"entry_id_grp"`
	WeightPerRoll  decimal.Decimal `json:"wt_per_roll"`
	NoOfRolls      int             `json:"no_of_rolls"`
	BreakerInterNo string          `json:"breaker_inter_no"`
}

// RecentEntryDTO alta reciente con maduración calculada al vuelo.
type RecentEntryDTO struct {
	EntryDate     string          `json:"entry_date"`
	EntryTime     int             `json:"entry_time"`
	Spell         string          `json:"spell"`
	SpreaderNo    string          `json:"spreader_no"`
	BinNo         int             `json:"bin_no"`
	EntryGroupID  int64           `json:"entry_id_grp"`
	JuteQualityID int             `json:"jute_quality_id"`
	NoOfRolls     int             `json:"no_of_rolls"`
	WeightPerRoll decimal.Decimal `json:"wt_per_roll"`
	MaturityHours int             `json:"maturity_hours"`
}

// BinStockDTO stock vivo por (bin, grupo, calidad) para el panel de bins.
type BinStockDTO struct {
	BinNo         int             `json:"bin_no"`
	EntryGroupID  int64           `json:"entry_id_grp"`
	JuteQualityID int             `json:"jute_quality_id"`
	ProducedRolls int             `json:"produced_rolls"`
	IssuedRolls   int             `json:"issued_rolls"`
	CurrentRolls  int             `json:"current_rolls"`
	CurrentKG     decimal.Decimal `json:"current_kg"`
	CurrentMT     decimal.Decimal `json:"current_mt"`
	MaturityHours int             `json:"maturity_hours"`
}

// WeightStockDTO disponibilidad por clase de peso dentro de un grupo.
type WeightStockDTO struct {
	WeightPerRoll  decimal.Decimal `json:"wt_per_roll"`
	ProducedRolls  int             `json:"produced_rolls"`
	IssuedRolls    int             `json:"issued_rolls"`
	AvailableRolls int             `json:"available_rolls"`
}

// SnapshotRowDTO fila del corte de stock por ventana.
type SnapshotRowDTO struct {
	BinNo         int             `json:"bin_no"`
	EntryGroupID  int64           `json:"entry_id_grp"`
	WeightPerRoll decimal.Decimal `json:"wt_per_roll"`
	JuteQualityID int             `json:"jute_quality_id"`
	OpeningRolls  int             `json:"opening_rolls"`
	ProducedRolls int             `json:"produced_rolls"`
	IssuedRolls   int             `json:"issued_rolls"`
	ClosingRolls  int             `json:"closing_rolls"`
	ClosingMT     decimal.Decimal `json:"closing_mt"`
}

// SnapshotResponse corte completo con totales.
type SnapshotResponse struct {
	Opening      string           `json:"opening"`
	Closing      string           `json:"closing"`
	Rows         []SnapshotRowDTO `json:"rows"`
	TotalClosing int              `json:"total_closing_rolls"`
	TotalMT      decimal.Decimal  `json:"total_closing_mt"`
}
