package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
	apperrors "github.com/shewell/maternity-api/pkg/errors"
)

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

type Service struct {
	repo  repository.DoctorRepository
	cache *gocache.Cache
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

// List returns the directory filtered by location/specialty/insurance.
// Directory reads are cached briefly since the listing changes rarely.
func (s *Service) List(ctx context.Context, filters model.DoctorFilters) ([]*model.Doctor, error) {
	key := fmt.Sprintf("doctors:%s|%s|%s", filters.Location, filters.Specialty, filters.Insurance)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	s.cache.Set(key, doctors, gocache.DefaultExpiration)
	return doctors, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("doctor")
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

// UpdatePatch carries the doctor-mutable listing fields. Nil fields are
// untouched.
type UpdatePatch struct {
	Phone           *string   `json:"phone"`
	Specialization  *string   `json:"specialty"`
	Location        *string   `json:"location"`
	Hospital        *string   `json:"hospital"`
	Insurance       *[]string `json:"insurance"`
	YearsExperience *int      `json:"yearsExperience"`
	AvailableDays   *string   `json:"availableDays"`
	PricePerMinute  *float64  `json:"pricePerMinute"`
}

// Update lets a doctor change their own listing (price, availability and the
// rest of the directory fields).
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch UpdatePatch) (*model.Doctor, error) {
	doctor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Phone != nil {
		doctor.Phone = *patch.Phone
	}
	if patch.Specialization != nil {
		doctor.Specialization = *patch.Specialization
	}
	if patch.Location != nil {
		doctor.Location = *patch.Location
	}
	if patch.Hospital != nil {
		doctor.Hospital = *patch.Hospital
	}
	if patch.Insurance != nil {
		doctor.Insurance = *patch.Insurance
	}
	if patch.YearsExperience != nil {
		doctor.YearsExperience = *patch.YearsExperience
	}
	if patch.AvailableDays != nil {
		doctor.AvailableDays = *patch.AvailableDays
	}
	if patch.PricePerMinute != nil {
		doctor.PricePerMinute = *patch.PricePerMinute
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("doctor")
		}
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	s.cache.Flush()
	return doctor, nil
}
