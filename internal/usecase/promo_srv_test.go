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

func newPromoFixture(t *testing.T) (*fakePromoRepo, PromoService) {
	t.Helper()

	promoRepo := &fakePromoRepo{}
	repo := &repository.Repository{Promo: promoRepo}
	return promoRepo, NewPromoService(repo, zap.NewNop())
}

func seedPromo(promoRepo *fakePromoRepo, code string, usageLimit int, startsAt, endsAt time.Time) *entity.PromoCode {
	promo := &entity.PromoCode{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
		Code:         code,
		Status:       entity.PromoStatusActive,
		PercentOff:   20,
		UsageLimit:   usageLimit,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
	}
	promoRepo.promos = append(promoRepo.promos, promo)
	return promo
}

func TestRedeemPromoExhaustionLifecycle(t *testing.T) {
	promoRepo, svc := newPromoFixture(t)

	now := time.Now()
	seedPromo(promoRepo, "ONCE", 1, now.AddDate(0, -1, 0), now.AddDate(0, 1, 0))

	// The last available use succeeds and the code stays nominally active.
	promo, err := svc.Redeem(context.Background(), "ONCE")
	require.NoError(t, err)
	require.Equal(t, 1, promo.TimesUsed)
	require.Equal(t, entity.PromoStatusActive, promoRepo.promos[0].Status)

	// The next attempt observes exhaustion, flips the stored status and fails.
	_, err = svc.Redeem(context.Background(), "ONCE")
	require.ErrorIs(t, err, ErrPromoInactive)
	require.Equal(t, entity.PromoStatusInactive, promoRepo.promos[0].Status)
	require.Equal(t, 1, promoRepo.promos[0].TimesUsed)
}

func TestRedeemPromoExpired(t *testing.T) {
	promoRepo, svc := newPromoFixture(t)

	now := time.Now()
	seedPromo(promoRepo, "OLD", 10, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))

	_, err := svc.Redeem(context.Background(), "OLD")
	require.ErrorIs(t, err, ErrPromoExpired)
	require.Equal(t, entity.PromoStatusExpired, promoRepo.promos[0].Status)
	require.Equal(t, 0, promoRepo.promos[0].TimesUsed)
}

func TestRedeemPromoNotStarted(t *testing.T) {
	promoRepo, svc := newPromoFixture(t)

	now := time.Now()
	seedPromo(promoRepo, "SOON", 10, now.AddDate(0, 1, 0), now.AddDate(0, 2, 0))

	_, err := svc.Redeem(context.Background(), "SOON")
	require.ErrorIs(t, err, ErrPromoNotStarted)
	require.Equal(t, 0, promoRepo.promos[0].TimesUsed)
}

func TestRedeemPromoNotFound(t *testing.T) {
	_, svc := newPromoFixture(t)

	_, err := svc.Redeem(context.Background(), "NOPE")
	require.ErrorIs(t, err, ErrPromoNotFound)
}

func TestCreatePromo(t *testing.T) {
	promoRepo, svc := newPromoFixture(t)

	req := &request.CreatePromoRequest{
		Code:       "SPRING25",
		PercentOff: 25,
		UsageLimit: 100,
		StartsAt:   "2026-03-01",
		EndsAt:     "2026-05-31",
	}

	resp, err := svc.CreatePromo(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "SPRING25", resp.Code)
	require.Equal(t, "active", resp.Status)
	require.Len(t, promoRepo.promos, 1)

	// Duplicate codes are rejected.
	_, err = svc.CreatePromo(context.Background(), req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	// A window that ends before it starts is rejected.
	_, err = svc.CreatePromo(context.Background(), &request.CreatePromoRequest{
		Code:       "BACKWARDS",
		PercentOff: 10,
		UsageLimit: 1,
		StartsAt:   "2026-05-31",
		EndsAt:     "2026-03-01",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ends_at before starts_at")
}
