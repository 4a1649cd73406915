package usecase

import (
	"context"
	"testing"
	"time"

	"trip-genie/internal/data/entity"
	"trip-genie/internal/data/repository"
	"trip-genie/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newActivityFixture(t *testing.T) (*fakeActivityRepo, ActivityService) {
	t.Helper()

	categoryID := uuid.New()
	activityRepo := &fakeActivityRepo{
		activities: []*entity.Activity{
			{
				Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
				Name:       "Desert Safari",
				Price:      150,
				CategoryID: &categoryID,
			},
			{
				Base:  entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
				Name:  "Old Town Walking Tour",
				Price: 40,
			},
			{
				Base:  entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
				Name:  "Snorkeling Trip",
				Price: 90,
			},
		},
	}

	repo := &repository.Repository{
		Activity: activityRepo,
		Category: &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{
			categoryID: {BaseNoDelete: entity.BaseNoDelete{ID: categoryID}, Name: "Adventure"},
		}},
		Tag: &fakeTagRepo{},
	}

	return activityRepo, NewActivityService(repo, zap.NewNop())
}

func TestGetActivitiesEmptyCriteriaListsEverything(t *testing.T) {
	_, svc := newActivityFixture(t)

	req := &request.ListActivitiesRequest{}
	req.Page = 1
	req.PerPage = 10

	// No search term and no filters: both id sets degenerate to the whole
	// collection and their intersection lists everything.
	resp, err := svc.GetActivities(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)
	require.Equal(t, int64(3), resp.Pagination.Total)
}

func TestGetActivitiesIntersectsSearchAndFilter(t *testing.T) {
	activityRepo, svc := newActivityFixture(t)

	// Search matches the first two activities, the price filter the last
	// two. Only the overlap survives.
	activityRepo.searchIDs = []uuid.UUID{
		activityRepo.activities[0].ID,
		activityRepo.activities[1].ID,
	}
	activityRepo.filterIDs = []uuid.UUID{
		activityRepo.activities[1].ID,
		activityRepo.activities[2].ID,
	}

	maxPrice := 100.0
	req := &request.ListActivitiesRequest{}
	req.Page = 1
	req.PerPage = 10
	req.Search = "tour"
	req.MaxPrice = &maxPrice

	resp, err := svc.GetActivities(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Equal(t, "Old Town Walking Tour", resp.Data[0].Name)
	require.Equal(t, int64(1), resp.Pagination.Total)

	require.Equal(t, "tour", activityRepo.lastSearch)
	require.NotNil(t, activityRepo.lastFilter.MaxPrice)
}

func TestGetActivitiesDisjointSetsAreEmpty(t *testing.T) {
	activityRepo, svc := newActivityFixture(t)

	activityRepo.searchIDs = []uuid.UUID{activityRepo.activities[0].ID}
	activityRepo.filterIDs = []uuid.UUID{activityRepo.activities[2].ID}

	minRating := 4.0
	req := &request.ListActivitiesRequest{}
	req.Page = 1
	req.PerPage = 10
	req.Search = "safari"
	req.MinRating = &minRating

	resp, err := svc.GetActivities(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, resp.Data)
	require.Equal(t, int64(0), resp.Pagination.Total)
}

func TestGetActivityByID(t *testing.T) {
	activityRepo, svc := newActivityFixture(t)

	resp, err := svc.GetActivityByID(context.Background(), activityRepo.activities[0].ID.String())
	require.NoError(t, err)
	require.Equal(t, "Desert Safari", resp.Name)
	require.Equal(t, "Adventure", resp.Category)

	_, err = svc.GetActivityByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrItemNotFound)
}
