package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spells (turnos) válidos de la jornada de trabajo.
const (
	SpellA1 = "A1"
	SpellA2 = "A2"
	SpellB1 = "B1"
	SpellB2 = "B2"
	SpellC  = "C"
)

// ProductionEntry representa un alta de producción de bobinas en un bin.
// Inmutable una vez escrita: no existe ruta de update/delete (las
// correcciones quedan fuera del diseño).
type ProductionEntry struct {
	ID            int64
	EntryDate     time.Time // solo fecha; la hora va en EntryTime
	EntryTime     int       // hora 0-23, granularidad mínima del modelo
	Spell         string
	SpreaderNo    string
	BinNo         int
	EntryGroupID  int64
	JuteQualityID int
	NoOfRolls     int
	WeightPerRoll decimal.Decimal // kg por bobina
	TrolleyNo     int
	CreatedAt     time.Time
}

// Timestamp combina EntryDate y EntryTime en un instante (minuto cero).
func (e *ProductionEntry) Timestamp() time.Time {
	d := e.EntryDate
	return time.Date(d.Year(), d.Month(), d.Day(), e.EntryTime, 0, 0, 0, d.Location())
}
