package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/domain/entity"
)

// StockRepository expone el stock derivado (producido menos emitido). Son
// lecturas puras; la consistencia en escritura la garantiza la transacción
// que bloquea el bin.
type StockRepository interface {
	// AvailableByWeight devuelve, por clase de peso del grupo, las bobinas
	// disponibles (>0) tras descontar salidas.
	AvailableByWeight(groupID int64) ([]entity.WeightStock, error)
	// AvailableForWeight devuelve las bobinas disponibles del grupo para una
	// clase de peso concreta.
	AvailableForWeight(groupID int64, weightPerRoll decimal.Decimal) (int, error)
	// BinsWithStock devuelve los (bin, grupo, calidad) con stock neto
	// positivo y su instante medio de alta.
	BinsWithStock() ([]entity.BinStock, error)
}

// SnapshotRepository calcula el corte de stock por ventana [opening,
// closing): apertura antes de opening, producción y salidas dentro de la
// ventana, cierre derivado. Con opening==closing los deltas son cero y el
// cierre equivale al stock as-of.
type SnapshotRepository interface {
	Window(opening, closing time.Time) ([]entity.SnapshotRow, error)
}
