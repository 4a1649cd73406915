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

type HistoricalPlaceService interface {
	GetHistoricalPlaces(ctx context.Context, req *request.ListHistoricalPlacesRequest) (*response.PaginatedResponse[response.HistoricalPlaceResponse], error)
	GetHistoricalPlaceByID(ctx context.Context, placeID string) (*response.HistoricalPlaceResponse, error)
}

type historicalPlaceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHistoricalPlaceService(repo *repository.Repository, log *zap.Logger) HistoricalPlaceService {
	return &historicalPlaceService{
		repo: repo,
		log:  log.With(zap.String("service", "historical_place")),
	}
}

func (s *historicalPlaceService) GetHistoricalPlaces(ctx context.Context, req *request.ListHistoricalPlacesRequest) (*response.PaginatedResponse[response.HistoricalPlaceResponse], error) {
	searchIDs, err := s.repo.HistoricalPlace.SearchIDs(ctx, req.Search)
	if err != nil {
		s.log.Error("Failed to search historical places",
			zap.Error(err),
			zap.String("search", req.Search),
		)
		return nil, fmt.Errorf("search historical places: %w", err)
	}

	filterIDs, err := s.repo.HistoricalPlace.FilterIDs(ctx, repository.HistoricalPlaceFilter{
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		TagTypes: req.TagTypes,
	})
	if err != nil {
		s.log.Error("Failed to filter historical places", zap.Error(err))
		return nil, fmt.Errorf("filter historical places: %w", err)
	}

	limit := req.Limit()
	offset := req.Offset()

	places, err := s.repo.HistoricalPlace.FindByIDSets(ctx, searchIDs, filterIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get historical places: %w", err)
	}

	total, err := s.repo.HistoricalPlace.CountByIDSets(ctx, searchIDs, filterIDs)
	if err != nil {
		return nil, fmt.Errorf("count historical places: %w", err)
	}

	placeResponses := make([]response.HistoricalPlaceResponse, len(places))
	for i, place := range places {
		placeResponses[i] = s.buildPlaceResponse(ctx, place)
	}

	s.log.Info("Historical places retrieved",
		zap.Int("count", len(places)),
		zap.Int64("total", total),
		zap.String("search", req.Search),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(placeResponses, req.Page, req.PerPage, total), nil
}

func (s *historicalPlaceService) GetHistoricalPlaceByID(ctx context.Context, placeID string) (*response.HistoricalPlaceResponse, error) {
	id, err := uuid.Parse(placeID)
	if err != nil {
		return nil, fmt.Errorf("invalid historical place ID format %s: %w", placeID, err)
	}

	place, err := s.repo.HistoricalPlace.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find historical place %s: %w", placeID, err)
	}
	if place == nil {
		return nil, fmt.Errorf("historical place %s: %w", placeID, ErrItemNotFound)
	}

	resp := s.buildPlaceResponse(ctx, place)
	return &resp, nil
}

func (s *historicalPlaceService) buildPlaceResponse(ctx context.Context, place *entity.HistoricalPlace) response.HistoricalPlaceResponse {
	tags, err := s.repo.Tag.FindByPlaceID(ctx, place.ID)
	if err != nil {
		s.log.Warn("Failed to get tags for historical place",
			zap.Error(err),
			zap.String("place_id", place.ID.String()),
		)
	}

	tagNames := make([]string, len(tags))
	for i, tag := range tags {
		tagNames[i] = tag.Name
	}

	return response.HistoricalPlaceToResponse(place, tagNames)
}
