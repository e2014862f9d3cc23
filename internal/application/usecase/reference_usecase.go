package usecase

import (
	"context"

	"github.com/sidheshsarda/mis/internal/application/dto"
	"github.com/sidheshsarda/mis/internal/domain"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

// ReferenceUseCase expone los maestros de planta: bins de spreader,
// calidades de yute y maduraciones objetivo.
type ReferenceUseCase struct {
	binRepo repository.BinRepository
	refRepo repository.ReferenceRepository
}

// NewReferenceUseCase construye el caso de uso de maestros.
func NewReferenceUseCase(binRepo repository.BinRepository, refRepo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{binRepo: binRepo, refRepo: refRepo}
}

// Bins lista los bins activos de la sección spreader.
func (uc *ReferenceUseCase) Bins(ctx context.Context) ([]dto.BinDTO, error) {
	bins, err := uc.binRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BinDTO, 0, len(bins))
	for _, b := range bins {
		out = append(out, dto.BinDTO{BinID: b.BinID, BinNo: b.BinNo})
	}
	return out, nil
}

// BinByNo devuelve un bin por su número de planta.
func (uc *ReferenceUseCase) BinByNo(ctx context.Context, binNo int) (*dto.BinDTO, error) {
	bin, err := uc.binRepo.GetByNo(binNo)
	if err != nil {
		return nil, err
	}
	if bin == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BinDTO{BinID: bin.BinID, BinNo: bin.BinNo}, nil
}

// JuteQualities lista las calidades de yute activas.
func (uc *ReferenceUseCase) JuteQualities(ctx context.Context) ([]dto.JuteQualityDTO, error) {
	qualities, err := uc.refRepo.JuteQualities()
	if err != nil {
		return nil, err
	}
	out := make([]dto.JuteQualityDTO, 0, len(qualities))
	for _, q := range qualities {
		out = append(out, dto.JuteQualityDTO{ID: q.ID, Name: q.Name})
	}
	return out, nil
}

// MaturityTargets lista las horas de maduración objetivo por calidad.
func (uc *ReferenceUseCase) MaturityTargets(ctx context.Context) ([]dto.MaturityTargetDTO, error) {
	targets, err := uc.refRepo.MaturityTargets()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaturityTargetDTO, 0, len(targets))
	for _, t := range targets {
		out = append(out, dto.MaturityTargetDTO{
			JuteQualityID: t.JuteQualityID,
			MaturityHours: t.MaturityHours,
		})
	}
	return out, nil
}
