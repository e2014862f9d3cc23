package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeightStock es la disponibilidad por clase de peso dentro de un grupo:
// producido menos emitido. Solo se materializa en consultas, nunca se
// persiste.
type WeightStock struct {
	WeightPerRoll  decimal.Decimal
	ProducedRolls  int
	IssuedRolls    int
	AvailableRolls int
}

// BinStock resume el stock vivo de un (bin, grupo, calidad): bobinas y kg
// netos más el instante medio de alta para calcular maduración.
type BinStock struct {
	BinNo         int
	EntryGroupID  int64
	JuteQualityID int
	ProducedRolls int
	IssuedRolls   int
	ProducedKG    decimal.Decimal
	IssuedKG      decimal.Decimal
	CurrentKG     decimal.Decimal
	LastEntryDate time.Time
	LastEntryTime int
	AvgEntryTime  time.Time // promedio de los timestamps de alta del grupo
	MaturityHours int
}

// SnapshotRow es una fila del corte de stock por ventana: apertura,
// producción y salidas dentro de [opening, closing) y cierre derivado.
// Las filas con los cuatro componentes a cero se descartan.
type SnapshotRow struct {
	BinNo         int
	EntryGroupID  int64
	WeightPerRoll decimal.Decimal
	JuteQualityID int
	OpeningRolls  int
	ProducedRolls int
	IssuedRolls   int
	ClosingRolls  int
	ClosingMT     decimal.Decimal // rolls * wt_per_roll / 1000, derivado
}
