package usecase

import (
	"context"
	"fmt"

	"trip-genie/internal/data/entity"
	"trip-genie/internal/data/repository"
	"trip-genie/internal/dto/request"
	"trip-genie/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActivityService interface {
	GetActivities(ctx context.Context, req *request.ListActivitiesRequest) (*response.PaginatedResponse[response.ActivityResponse], error)
	GetActivityByID(ctx context.Context, activityID string) (*response.ActivityResponse, error)
}

type activityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActivityService(repo *repository.Repository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) GetActivities(ctx context.Context, req *request.ListActivitiesRequest) (*response.PaginatedResponse[response.ActivityResponse], error) {
	// Search and filter produce independent id sets; the final query ANDs
	// them. Empty criteria on either side degenerate to select-all, so two
	// empty inputs still list the whole collection.
	searchIDs, err := s.repo.Activity.SearchIDs(ctx, req.Search)
	if err != nil {
		s.log.Error("Failed to search activities",
			zap.Error(err),
			zap.String("search", req.Search),
		)
		return nil, fmt.Errorf("search activities: %w", err)
	}

	filterIDs, err := s.repo.Activity.FilterIDs(ctx, repository.ActivityFilter{
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  req.Category,
		MinRating: req.MinRating,
	})
	if err != nil {
		s.log.Error("Failed to filter activities", zap.Error(err))
		return nil, fmt.Errorf("filter activities: %w", err)
	}

	limit := req.Limit()
	offset := req.Offset()

	activities, err := s.repo.Activity.FindByIDSets(ctx, searchIDs, filterIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}

	total, err := s.repo.Activity.CountByIDSets(ctx, searchIDs, filterIDs)
	if err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}

	activityResponses := make([]response.ActivityResponse, len(activities))
	for i, activity := range activities {
		activityResponses[i] = s.buildActivityResponse(ctx, activity)
	}

	s.log.Info("Activities retrieved",
		zap.Int("count", len(activities)),
		zap.Int64("total", total),
		zap.String("search", req.Search),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(activityResponses, req.Page, req.PerPage, total), nil
}

func (s *activityService) GetActivityByID(ctx context.Context, activityID string) (*response.ActivityResponse, error) {
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find activity %s: %w", activityID, err)
	}
	if activity == nil {
		return nil, fmt.Errorf("activity %s: %w", activityID, ErrItemNotFound)
	}

	resp := s.buildActivityResponse(ctx, activity)
	return &resp, nil
}

func (s *activityService) buildActivityResponse(ctx context.Context, activity *entity.Activity) response.ActivityResponse {
	var categoryName string
	if activity.CategoryID != nil {
		category, err := s.repo.Category.FindByID(ctx, *activity.CategoryID)
		if err != nil {
			s.log.Warn("Failed to get category for activity",
				zap.Error(err),
				zap.String("activity_id", activity.ID.String()),
			)
		}
		if category != nil {
			categoryName = category.Name
		}
	}

	tags, err := s.repo.Tag.FindByActivityID(ctx, activity.ID)
	if err != nil {
		s.log.Warn("Failed to get tags for activity",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
	}

	tagNames := make([]string, len(tags))
	for i, tag := range tags {
		tagNames[i] = tag.Name
	}

	return response.ActivityToResponse(activity, categoryName, tagNames)
}
