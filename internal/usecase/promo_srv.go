package usecase

import (
	"context"
	"fmt"
	"time"

	"trip-genie/internal/data/entity"
	"trip-genie/internal/data/repository"
	"trip-genie/internal/dto/request"
	"trip-genie/internal/dto/response"
	"trip-genie/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PromoService interface {
	// Redeem consumes one use of the code, lazily recomputing its status.
	Redeem(ctx context.Context, code string) (*entity.PromoCode, error)

	// Admin endpoints
	CreatePromo(ctx context.Context, req *request.CreatePromoRequest) (*response.PromoResponse, error)
	GetPromos(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PromoResponse], error)
}

type promoService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPromoService(repo *repository.Repository, log *zap.Logger) PromoService {
	return &promoService{
		repo: repo,
		log:  log.With(zap.String("service", "promo")),
	}
}

func (s *promoService) Redeem(ctx context.Context, code string) (*entity.PromoCode, error) {
	promo, err := s.repo.Promo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find promo code %s: %w", code, err)
	}
	if promo == nil {
		return nil, fmt.Errorf("promo code %s: %w", code, ErrPromoNotFound)
	}

	now := time.Now()

	// Status is derived lazily on each use, never by a background sweep.
	if derived := promo.DerivedStatus(now); derived != promo.Status {
		if err := s.repo.Promo.UpdateStatus(ctx, promo.ID, derived); err != nil {
			return nil, fmt.Errorf("update promo %s status: %w", code, err)
		}
		promo.Status = derived
	}

	switch promo.Status {
	case entity.PromoStatusActive:
		// fall through to redemption
	case entity.PromoStatusExpired:
		return nil, fmt.Errorf("promo code %s: %w", code, ErrPromoExpired)
	default:
		return nil, fmt.Errorf("promo code %s: %w", code, ErrPromoInactive)
	}

	if now.Before(promo.StartsAt) {
		return nil, fmt.Errorf("promo code %s: %w", code, ErrPromoNotStarted)
	}

	incremented, err := s.repo.Promo.IncrementUsageIfAvailable(ctx, promo.ID)
	if err != nil {
		return nil, fmt.Errorf("redeem promo code %s: %w", code, err)
	}
	if !incremented {
		// Lost the race against a concurrent redemption of the last use.
		return nil, fmt.Errorf("promo code %s: %w", code, ErrPromoInactive)
	}
	promo.TimesUsed++

	s.log.Info("Promo code redeemed",
		zap.String("code", promo.Code),
		zap.Int("times_used", promo.TimesUsed),
		zap.Int("usage_limit", promo.UsageLimit),
	)

	return promo, nil
}

// ==================== ADMIN METHODS ====================

func (s *promoService) CreatePromo(ctx context.Context, req *request.CreatePromoRequest) (*response.PromoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create promo validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	startsAt, err := time.Parse("2006-01-02", req.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid starts_at date %s: %w", req.StartsAt, err)
	}

	endsAt, err := time.Parse("2006-01-02", req.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid ends_at date %s: %w", req.EndsAt, err)
	}

	if endsAt.Before(startsAt) {
		return nil, fmt.Errorf("validation failed: ends_at before starts_at")
	}

	existing, err := s.repo.Promo.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("find promo code %s: %w", req.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("validation failed: promo code %s already exists", req.Code)
	}

	now := time.Now()
	promo := &entity.PromoCode{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:       req.Code,
		Status:     entity.PromoStatusActive,
		PercentOff: req.PercentOff,
		UsageLimit: req.UsageLimit,
		TimesUsed:  0,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
	}

	if err := s.repo.Promo.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("create promo code: %w", err)
	}

	s.log.Info("Promo code created",
		zap.String("code", promo.Code),
		zap.Float64("percent_off", promo.PercentOff),
		zap.Int("usage_limit", promo.UsageLimit),
	)

	resp := response.PromoToResponse(promo)
	return &resp, nil
}

func (s *promoService) GetPromos(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PromoResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	promos, err := s.repo.Promo.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get promo codes",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get promo codes: %w", err)
	}

	total, err := s.repo.Promo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count promo codes", zap.Error(err))
		return nil, fmt.Errorf("count promo codes: %w", err)
	}

	promoResponses := make([]response.PromoResponse, len(promos))
	for i, promo := range promos {
		promoResponses[i] = response.PromoToResponse(promo)
	}

	return response.NewPaginatedResponse(promoResponses, req.Page, req.PerPage, total), nil
}
