package doctor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository/memory"
	apperrors "github.com/shewell/maternity-api/pkg/errors"
)

func seededService(t *testing.T) (*Service, *memory.DoctorRepository) {
	t.Helper()

	repo := memory.NewDoctorRepository()
	require.NoError(t, Seed(context.Background(), repo))
	return NewService(repo), repo
}

func TestSeedFillsEmptyDirectory(t *testing.T) {
	repo := memory.NewDoctorRepository()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultDirectory), count)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := memory.NewDoctorRepository()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo))
	require.NoError(t, Seed(ctx, repo))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultDirectory), count)
}

func TestListFilters(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, model.DoctorFilters{})
	require.NoError(t, err)
	assert.Len(t, all, len(defaultDirectory))

	boston, err := svc.List(ctx, model.DoctorFilters{Location: "boston"})
	require.NoError(t, err)
	require.Len(t, boston, 2)
	for _, d := range boston {
		assert.Contains(t, d.Location, "Boston")
	}

	specialty, err := svc.List(ctx, model.DoctorFilters{Specialty: "Obstetrics"})
	require.NoError(t, err)
	require.Len(t, specialty, 1)
	assert.Equal(t, "Dr. Sarah Johnson", specialty[0].Name)

	insurance, err := svc.List(ctx, model.DoctorFilters{Insurance: "Medicare"})
	require.NoError(t, err)
	assert.Len(t, insurance, 2)
}

func TestGetUnknownDoctor(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestUpdateFlushesListCache(t *testing.T) {
	svc, repo := seededService(t)
	ctx := context.Background()

	// prime the cache
	all, err := svc.List(ctx, model.DoctorFilters{})
	require.NoError(t, err)
	require.NotEmpty(t, all)
	target := all[0]

	price := 4.5
	updated, err := svc.Update(ctx, target.ID, UpdatePatch{PricePerMinute: &price})
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.PricePerMinute)
	// untouched fields survive the patch
	assert.Equal(t, target.Name, updated.Name)
	assert.Equal(t, target.Specialization, updated.Specialization)

	fresh, err := svc.List(ctx, model.DoctorFilters{})
	require.NoError(t, err)
	found := false
	for _, d := range fresh {
		if d.ID == target.ID {
			found = true
			assert.Equal(t, 4.5, d.PricePerMinute)
		}
	}
	assert.True(t, found)

	stored, err := repo.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, stored.PricePerMinute)
}

func TestUpdateUnknownDoctor(t *testing.T) {
	svc, _ := seededService(t)

	price := 4.5
	_, err := svc.Update(context.Background(), uuid.New(), UpdatePatch{PricePerMinute: &price})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}
