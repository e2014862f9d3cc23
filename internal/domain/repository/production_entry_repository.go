package repository

import (
	"time"

	"github.com/sidheshsarda/mis/internal/domain/entity"
)

// ProductionEntryRepository define el puerto de persistencia para las altas
// de producción de bobinas (append-only).
type ProductionEntryRepository interface {
	// Create inserta el alta y devuelve su id.
	Create(e *entity.ProductionEntry) (int64, error)
	// NextGroupID reserva el siguiente entry_id_grp global. La asignación
	// se serializa entre transacciones concurrentes: dos altas simultáneas
	// en bins distintos nunca reciben el mismo grupo.
	NextGroupID() (int64, error)
	// ActiveGroupForBin devuelve el grupo más reciente del bin con stock
	// neto positivo en cualquier clase de peso; ok=false si el bin está
	// vacío y toca abrir grupo nuevo.
	ActiveGroupForBin(binNo int) (groupID int64, ok bool, err error)
	// GroupFirstEntry devuelve la primera alta del grupo (fecha+hora
	// ascendente); nil si el grupo no existe. Fija calidad y bin del grupo.
	GroupFirstEntry(groupID int64) (*entity.ProductionEntry, error)
	// GroupEntryTimes devuelve los timestamps de todas las altas del grupo,
	// insumo del motor de ventana de 4 horas.
	GroupEntryTimes(groupID int64) ([]time.Time, error)
	// ListRecent devuelve las últimas altas (fecha+hora descendente).
	ListRecent(limit int) ([]*entity.ProductionEntry, error)
}

// IssueEntryRepository define el puerto de persistencia para las salidas de
// bobinas (append-only).
type IssueEntryRepository interface {
	Create(e *entity.IssueEntry) (int64, error)
}
