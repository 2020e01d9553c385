package usecase

import (
	"context"

	"clinica-turnos/internal/converter"
	"clinica-turnos/internal/delivery/dto"
	"clinica-turnos/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase serves the public listings the booking flow browses:
// the specialty list and the specialist cards per specialty.
type CatalogUsecase interface {
	ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
	ListSpecialists(ctx context.Context) (*dto.SpecialistListResponse, error)
	ListSpecialistsBySpecialty(ctx context.Context, specialty string) (*dto.SpecialistListResponse, error)
}

type catalogUsecase struct {
	db                    *gorm.DB
	log                   *logrus.Logger
	specialtyRepo         repository.SpecialtyRepository
	specialistProfileRepo repository.SpecialistProfileRepository
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	specialistProfileRepo repository.SpecialistProfileRepository,
) CatalogUsecase {
	return &catalogUsecase{
		db:                    db,
		log:                   log,
		specialtyRepo:         specialtyRepo,
		specialistProfileRepo: specialistProfileRepo,
	}
}

func (u *catalogUsecase) ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}
	return converter.SpecialtiesToResponses(specialties), nil
}

func (u *catalogUsecase) ListSpecialists(ctx context.Context) (*dto.SpecialistListResponse, error) {
	profiles, err := u.specialistProfileRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialists: %+v", err)
		return nil, err
	}
	return &dto.SpecialistListResponse{
		Specialists: converter.SpecialistsToCards(profiles),
		Total:       len(profiles),
	}, nil
}

func (u *catalogUsecase) ListSpecialistsBySpecialty(ctx context.Context, specialty string) (*dto.SpecialistListResponse, error) {
	specialtyRow, err := u.specialtyRepo.FindByCode(u.db.WithContext(ctx), specialty)
	if err != nil {
		u.log.Warnf("Failed to look up specialty: %+v", err)
		return nil, err
	}
	if specialtyRow == nil {
		return nil, ErrUnknownSpecialty
	}

	profiles, err := u.specialistProfileRepo.FindBySpecialty(u.db.WithContext(ctx), specialtyRow.Code)
	if err != nil {
		u.log.Warnf("Failed to list specialists by specialty: %+v", err)
		return nil, err
	}
	return &dto.SpecialistListResponse{
		Specialists: converter.SpecialistsToCards(profiles),
		Total:       len(profiles),
	}, nil
}
