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

type ItineraryService interface {
	GetItineraries(ctx context.Context, req *request.ListItinerariesRequest) (*response.PaginatedResponse[response.ItineraryResponse], error)
	GetItineraryByID(ctx context.Context, itineraryID string) (*response.ItineraryResponse, error)
}

type itineraryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewItineraryService(repo *repository.Repository, log *zap.Logger) ItineraryService {
	return &itineraryService{
		repo: repo,
		log:  log.With(zap.String("service", "itinerary")),
	}
}

func (s *itineraryService) GetItineraries(ctx context.Context, req *request.ListItinerariesRequest) (*response.PaginatedResponse[response.ItineraryResponse], error) {
	searchIDs, err := s.repo.Itinerary.SearchIDs(ctx, req.Search)
	if err != nil {
		s.log.Error("Failed to search itineraries",
			zap.Error(err),
			zap.String("search", req.Search),
		)
		return nil, fmt.Errorf("search itineraries: %w", err)
	}

	filterIDs, err := s.repo.Itinerary.FilterIDs(ctx, repository.ItineraryFilter{
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Language:  req.Language,
		MinRating: req.MinRating,
		TagTypes:  req.TagTypes,
	})
	if err != nil {
		s.log.Error("Failed to filter itineraries", zap.Error(err))
		return nil, fmt.Errorf("filter itineraries: %w", err)
	}

	limit := req.Limit()
	offset := req.Offset()

	itineraries, err := s.repo.Itinerary.FindByIDSets(ctx, searchIDs, filterIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get itineraries: %w", err)
	}

	total, err := s.repo.Itinerary.CountByIDSets(ctx, searchIDs, filterIDs)
	if err != nil {
		return nil, fmt.Errorf("count itineraries: %w", err)
	}

	itineraryResponses := make([]response.ItineraryResponse, len(itineraries))
	for i, itinerary := range itineraries {
		itineraryResponses[i] = s.buildItineraryResponse(ctx, itinerary)
	}

	s.log.Info("Itineraries retrieved",
		zap.Int("count", len(itineraries)),
		zap.Int64("total", total),
		zap.String("search", req.Search),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(itineraryResponses, req.Page, req.PerPage, total), nil
}

func (s *itineraryService) GetItineraryByID(ctx context.Context, itineraryID string) (*response.ItineraryResponse, error) {
	id, err := uuid.Parse(itineraryID)
	if err != nil {
		return nil, fmt.Errorf("invalid itinerary ID format %s: %w", itineraryID, err)
	}

	itinerary, err := s.repo.Itinerary.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find itinerary %s: %w", itineraryID, err)
	}
	if itinerary == nil {
		return nil, fmt.Errorf("itinerary %s: %w", itineraryID, ErrItemNotFound)
	}

	resp := s.buildItineraryResponse(ctx, itinerary)
	return &resp, nil
}

func (s *itineraryService) buildItineraryResponse(ctx context.Context, itinerary *entity.Itinerary) response.ItineraryResponse {
	tags, err := s.repo.Tag.FindByItineraryID(ctx, itinerary.ID)
	if err != nil {
		s.log.Warn("Failed to get tags for itinerary",
			zap.Error(err),
			zap.String("itinerary_id", itinerary.ID.String()),
		)
	}

	tagNames := make([]string, len(tags))
	for i, tag := range tags {
		tagNames[i] = tag.Name
	}

	return response.ItineraryToResponse(itinerary, tagNames)
}
