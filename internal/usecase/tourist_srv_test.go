package usecase

import (
	"context"
	"testing"
	"time"

	"trip-genie/internal/data/entity"
	"trip-genie/internal/data/repository"
	"trip-genie/internal/dto/request"
	"trip-genie/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTouristFixture(t *testing.T, wallet, loyaltyPoints, totalPoints float64) (*fakeTouristRepo, TouristService, uuid.UUID) {
	t.Helper()

	touristID := uuid.New()
	touristRepo := &fakeTouristRepo{
		tourist: &entity.Tourist{
			Base:          entity.Base{ID: touristID, CreatedAt: time.Now()},
			Username:      "amira",
			Email:         "amira@example.com",
			Role:          entity.RoleTourist,
			Wallet:        wallet,
			LoyaltyPoints: loyaltyPoints,
			TotalPoints:   totalPoints,
		},
	}

	repo := &repository.Repository{Tourist: touristRepo}
	config := &utils.Config{
		Loyalty: utils.LoyaltyConfig{RedeemPointsPerUnit: 100},
	}

	return touristRepo, NewTouristService(repo, config, zap.NewNop()), touristID
}

func TestGetProfile(t *testing.T) {
	_, svc, touristID := newTouristFixture(t, 250, 600000, 600000)

	profile, err := svc.GetProfile(context.Background(), touristID.String())
	require.NoError(t, err)
	require.Equal(t, float64(250), profile.Wallet)
	require.Equal(t, "Gold", profile.LoyaltyBadge)

	_, err = svc.GetProfile(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrTouristNotFound)
}

func TestRedeemPoints(t *testing.T) {
	touristRepo, svc, touristID := newTouristFixture(t, 0, 10000, 200000)

	profile, err := svc.RedeemPoints(context.Background(), touristID.String(), &request.RedeemPointsRequest{Points: 10000})
	require.NoError(t, err)

	// 10000 points cash out to 100 at the configured exchange rate. Lifetime
	// points are untouched, so the badge does not regress.
	require.Equal(t, float64(100), profile.Wallet)
	require.Equal(t, float64(0), profile.LoyaltyPoints)
	require.Equal(t, float64(200000), profile.TotalPoints)
	require.Equal(t, "Silver", profile.LoyaltyBadge)
	require.Equal(t, float64(100), touristRepo.tourist.Wallet)
}

func TestRedeemPointsInsufficient(t *testing.T) {
	touristRepo, svc, touristID := newTouristFixture(t, 0, 500, 500)

	_, err := svc.RedeemPoints(context.Background(), touristID.String(), &request.RedeemPointsRequest{Points: 1000})
	require.ErrorIs(t, err, ErrInsufficientPoints)
	require.Equal(t, float64(0), touristRepo.tourist.Wallet)
	require.Equal(t, float64(500), touristRepo.tourist.LoyaltyPoints)
}

func TestChangePassword(t *testing.T) {
	touristRepo, svc, touristID := newTouristFixture(t, 0, 0, 0)

	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	touristRepo.tourist.PasswordHash = string(hash)

	err = svc.ChangePassword(context.Background(), touristID.String(), &request.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "brand-new-password",
	})
	require.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), touristID.String(), &request.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "brand-new-password",
	})
	require.NoError(t, err)

	err = bcrypt.CompareHashAndPassword([]byte(touristRepo.tourist.PasswordHash), []byte("brand-new-password"))
	require.NoError(t, err)
}
