package usecase

import (
	"context"
	"fmt"

	"trip-genie/internal/data/repository"
	"trip-genie/internal/dto/request"
	"trip-genie/internal/dto/response"
	"trip-genie/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type TouristService interface {
	GetProfile(ctx context.Context, touristID string) (*response.TouristResponse, error)
	RedeemPoints(ctx context.Context, touristID string, req *request.RedeemPointsRequest) (*response.TouristResponse, error)
	ChangePassword(ctx context.Context, touristID string, req *request.ChangePasswordRequest) error
}

type touristService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewTouristService(repo *repository.Repository, config *utils.Config, log *zap.Logger) TouristService {
	return &touristService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "tourist")),
	}
}

func (s *touristService) GetProfile(ctx context.Context, touristID string) (*response.TouristResponse, error) {
	touristUUID, err := uuid.Parse(touristID)
	if err != nil {
		return nil, fmt.Errorf("invalid tourist ID format %s: %w", touristID, err)
	}

	tourist, err := s.repo.Tourist.FindByID(ctx, touristUUID)
	if err != nil {
		return nil, fmt.Errorf("find tourist %s: %w", touristID, err)
	}
	if tourist == nil {
		return nil, fmt.Errorf("tourist %s: %w", touristID, ErrTouristNotFound)
	}

	resp := response.TouristToResponse(tourist)
	return &resp, nil
}

func (s *touristService) RedeemPoints(ctx context.Context, touristID string, req *request.RedeemPointsRequest) (*response.TouristResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Redeem points validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	touristUUID, err := uuid.Parse(touristID)
	if err != nil {
		return nil, fmt.Errorf("invalid tourist ID format %s: %w", touristID, err)
	}

	tourist, err := s.repo.Tourist.FindByID(ctx, touristUUID)
	if err != nil {
		return nil, fmt.Errorf("find tourist %s: %w", touristID, err)
	}
	if tourist == nil {
		return nil, fmt.Errorf("tourist %s: %w", touristID, ErrTouristNotFound)
	}

	cash := req.Points / s.config.Loyalty.RedeemPointsPerUnit

	// Guarded decrement and wallet credit commit together.
	err = s.repo.WithinTx(ctx, func(txRepo *repository.Repository) error {
		redeemed, err := txRepo.Tourist.RedeemPointsIfSufficient(ctx, touristUUID, req.Points)
		if err != nil {
			return fmt.Errorf("redeem points: %w", err)
		}
		if !redeemed {
			return fmt.Errorf("loyalty balance below %.0f: %w", req.Points, ErrInsufficientPoints)
		}

		if err := txRepo.Tourist.CreditWallet(ctx, touristUUID, cash); err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Loyalty points redeemed",
		zap.String("tourist_id", touristID),
		zap.Float64("points", req.Points),
		zap.Float64("cash", cash),
	)

	updated, err := s.repo.Tourist.FindByID(ctx, touristUUID)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("reload tourist %s: %w", touristID, err)
	}

	resp := response.TouristToResponse(updated)
	return &resp, nil
}

func (s *touristService) ChangePassword(ctx context.Context, touristID string, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	touristUUID, err := uuid.Parse(touristID)
	if err != nil {
		return fmt.Errorf("invalid tourist ID format %s: %w", touristID, err)
	}

	tourist, err := s.repo.Tourist.FindByID(ctx, touristUUID)
	if err != nil {
		return fmt.Errorf("find tourist %s: %w", touristID, err)
	}
	if tourist == nil {
		return fmt.Errorf("tourist %s: %w", touristID, ErrTouristNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(tourist.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return fmt.Errorf("verify password for tourist %s: %w", touristID, ErrWrongPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Tourist.UpdatePasswordHash(ctx, touristUUID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.String("tourist_id", touristID))
	return nil
}
