package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sidheshsarda/mis/internal/domain"
	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

var _ repository.BinRepository = (*BinRepo)(nil)

// BinRepo maestro de bins sobre PostgreSQL (usable con pool o tx).
type BinRepo struct {
	q Querier
}

// NewBinRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBinRepository(q Querier) *BinRepo {
	return &BinRepo{q: q}
}

// List devuelve los bins ordenados por número de planta.
func (r *BinRepo) List() ([]entity.Bin, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT bin_id, bin_no FROM millstock.spreader_roll_bin_master ORDER BY bin_no`)
	if err != nil {
		return nil, fmt.Errorf("list bins: %w", err)
	}
	defer rows.Close()

	var bins []entity.Bin
	for rows.Next() {
		var b entity.Bin
		if err := rows.Scan(&b.BinID, &b.BinNo); err != nil {
			return nil, fmt.Errorf("scan bin: %w", err)
		}
		bins = append(bins, b)
	}
	return bins, rows.Err()
}

// GetByNo obtiene un bin por número de planta; nil si no existe.
func (r *BinRepo) GetByNo(binNo int) (*entity.Bin, error) {
	var b entity.Bin
	err := r.q.QueryRow(context.Background(),
		`SELECT bin_id, bin_no FROM millstock.spreader_roll_bin_master WHERE bin_no = $1`,
		binNo,
	).Scan(&b.BinID, &b.BinNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bin %d: %w", binNo, err)
	}
	return &b, nil
}

// Lock toma el lock de fila del bin (SELECT ... FOR UPDATE). Solo tiene
// efecto dentro de una transacción: serializa altas y salidas concurrentes
// sobre el mismo bin hasta el commit.
func (r *BinRepo) Lock(binNo int) error {
	var binID int64
	err := r.q.QueryRow(context.Background(),
		`SELECT bin_id FROM millstock.spreader_roll_bin_master WHERE bin_no = $1 FOR UPDATE`,
		binNo,
	).Scan(&binID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: bin %d", domain.ErrNotFound, binNo)
		}
		return fmt.Errorf("lock bin %d: %w", binNo, err)
	}
	return nil
}
