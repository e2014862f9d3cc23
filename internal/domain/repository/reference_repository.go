package repository

import "github.com/sidheshsarda/mis/internal/domain/entity"

// BinRepository define el puerto para los bins maestros. Lock serializa las
// escrituras concurrentes del ledger sobre un mismo bin (bloqueo de fila,
// solo tiene sentido dentro de una transacción).
type BinRepository interface {
	List() ([]entity.Bin, error)
	GetByNo(binNo int) (*entity.Bin, error)
	Lock(binNo int) error
}

// ReferenceRepository expone los maestros de solo lectura del subsistema.
type ReferenceRepository interface {
	JuteQualities() ([]entity.JuteQuality, error)
	MaturityTargets() ([]entity.MaturityTarget, error)
}
