package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueEntry representa una salida de bobinas contra un grupo de producción.
// Inmutable una vez escrita; referencia al grupo, no a un alta concreta.
type IssueEntry struct {
	ID             int64
	IssueDate      time.Time
	IssueTime      int // hora 0-23
	Spell          string
	EntryGroupID   int64
	WeightPerRoll  decimal.Decimal
	NoOfRolls      int
	BreakerInterNo string
	CreatedAt      time.Time
}

// Timestamp combina IssueDate e IssueTime en un instante (minuto cero).
func (e *IssueEntry) Timestamp() time.Time {
	d := e.IssueDate
	return time.Date(d.Year(), d.Month(), d.Day(), e.IssueTime, 0, 0, 0, d.Location())
}
