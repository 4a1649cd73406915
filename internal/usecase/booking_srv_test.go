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

func newBookingFixture(t *testing.T, wallet, totalPoints float64) (*fakeTouristRepo, *fakeActivityRepo, *fakeBookingRepo, *fakePromoRepo, BookingService, uuid.UUID, uuid.UUID) {
	t.Helper()

	touristID := uuid.New()
	activityID := uuid.New()

	touristRepo := &fakeTouristRepo{
		tourist: &entity.Tourist{
			Base:          entity.Base{ID: touristID, CreatedAt: time.Now()},
			Username:      "amira",
			Email:         "amira@example.com",
			Role:          entity.RoleTourist,
			Wallet:        wallet,
			LoyaltyPoints: totalPoints,
			TotalPoints:   totalPoints,
		},
	}
	activityRepo := &fakeActivityRepo{
		activities: []*entity.Activity{
			{
				Base:  entity.Base{ID: activityID, CreatedAt: time.Now()},
				Name:  "Desert Safari",
				Price: 100,
			},
		},
	}
	bookingRepo := &fakeBookingRepo{}
	promoRepo := &fakePromoRepo{}

	repo := &repository.Repository{
		Tourist:  touristRepo,
		Activity: activityRepo,
		Booking:  bookingRepo,
		Promo:    promoRepo,
	}

	logger := zap.NewNop()
	promoSvc := NewPromoService(repo, logger)
	svc := NewBookingService(repo, promoSvc, logger)

	return touristRepo, activityRepo, bookingRepo, promoRepo, svc, touristID, activityID
}

func TestCreateBookingWalletSettlementAndAccrual(t *testing.T) {
	touristRepo, _, bookingRepo, _, svc, touristID, activityID := newBookingFixture(t, 500, 0)

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          activityID.String(),
		PaymentType:     "wallet",
		NumberOfTickets: 1,
	}

	resp, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.NoError(t, err)

	// Bronze earns at half rate: 100 spent accrues 50 points.
	require.Equal(t, float64(400), resp.Tourist.Wallet)
	require.Equal(t, float64(50), resp.Tourist.LoyaltyPoints)
	require.Equal(t, float64(50), resp.Tourist.TotalPoints)
	require.Equal(t, "Bronze", resp.Tourist.LoyaltyBadge)

	require.Equal(t, "Desert Safari", resp.Booking.ItemName)
	require.Equal(t, float64(100), resp.Booking.PaymentAmount)
	require.Equal(t, "confirmed", resp.Booking.Status)
	require.Len(t, bookingRepo.bookings, 1)

	// A second identical booking keeps compounding against the same wallet.
	resp, err = svc.CreateBooking(context.Background(), touristID.String(), req)
	require.NoError(t, err)
	require.Equal(t, float64(300), resp.Tourist.Wallet)
	require.Equal(t, float64(100), resp.Tourist.TotalPoints)
	require.Len(t, bookingRepo.bookings, 2)
	require.Equal(t, float64(300), touristRepo.tourist.Wallet)
}

func TestCreateBookingInsufficientFunds(t *testing.T) {
	touristRepo, _, bookingRepo, _, svc, touristID, activityID := newBookingFixture(t, 50, 0)

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          activityID.String(),
		PaymentType:     "wallet",
		NumberOfTickets: 1,
	}

	_, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// The failed settlement must leave no booking and no accrual behind.
	require.Empty(t, bookingRepo.bookings)
	require.Equal(t, float64(50), touristRepo.tourist.Wallet)
	require.Equal(t, float64(0), touristRepo.tourist.TotalPoints)
}

func TestCreateBookingCardSkipsWallet(t *testing.T) {
	touristRepo, _, bookingRepo, _, svc, touristID, activityID := newBookingFixture(t, 50, 0)

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          activityID.String(),
		PaymentType:     "credit_card",
		NumberOfTickets: 2,
	}

	resp, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.NoError(t, err)

	// Card payments never touch the wallet but still accrue points.
	require.Equal(t, float64(50), touristRepo.tourist.Wallet)
	require.Equal(t, float64(100), resp.Tourist.TotalPoints)
	require.Equal(t, float64(200), resp.Booking.PaymentAmount)
	require.Len(t, bookingRepo.bookings, 1)
}

func TestCreateBookingAccrualUsesPrePurchaseBadge(t *testing.T) {
	// Sitting exactly on the bronze ceiling: this purchase still earns at
	// the bronze rate even though it tips the tourist into silver.
	_, _, _, _, svc, touristID, activityID := newBookingFixture(t, 1000, 100000)

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          activityID.String(),
		PaymentType:     "wallet",
		NumberOfTickets: 2,
	}

	resp, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.NoError(t, err)

	require.Equal(t, float64(100100), resp.Tourist.TotalPoints)
	require.Equal(t, "Silver", resp.Tourist.LoyaltyBadge)
}

func TestCreateBookingWithPromoDiscount(t *testing.T) {
	_, _, bookingRepo, promoRepo, svc, touristID, activityID := newBookingFixture(t, 500, 0)

	now := time.Now()
	promoRepo.promos = append(promoRepo.promos, &entity.PromoCode{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now},
		Code:         "SUMMER50",
		Status:       entity.PromoStatusActive,
		PercentOff:   50,
		UsageLimit:   10,
		StartsAt:     now.AddDate(0, -1, 0),
		EndsAt:       now.AddDate(0, 1, 0),
	})

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          activityID.String(),
		PaymentType:     "wallet",
		NumberOfTickets: 2,
		PromoCode:       "SUMMER50",
	}

	resp, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.NoError(t, err)

	// 200 halved to 100; settlement and accrual both use the discounted sum.
	require.Equal(t, float64(100), resp.Booking.PaymentAmount)
	require.Equal(t, float64(400), resp.Tourist.Wallet)
	require.Equal(t, float64(50), resp.Tourist.TotalPoints)
	require.NotNil(t, resp.Booking.PromoCode)
	require.Equal(t, "SUMMER50", *resp.Booking.PromoCode)
	require.Equal(t, 1, promoRepo.promos[0].TimesUsed)
	require.Len(t, bookingRepo.bookings, 1)
}

func TestCreateBookingItemNotFound(t *testing.T) {
	_, _, _, _, svc, touristID, _ := newBookingFixture(t, 500, 0)

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          uuid.NewString(),
		PaymentType:     "wallet",
		NumberOfTickets: 1,
	}

	_, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteBookingOwnership(t *testing.T) {
	_, _, bookingRepo, _, svc, touristID, activityID := newBookingFixture(t, 500, 0)

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          activityID.String(),
		PaymentType:     "wallet",
		NumberOfTickets: 1,
	}

	_, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.NoError(t, err)
	bookingID := bookingRepo.bookings[0].ID.String()

	// A different tourist cannot cancel someone else's booking.
	err = svc.DeleteBooking(context.Background(), uuid.NewString(), bookingID)
	require.ErrorIs(t, err, ErrNotOwner)

	// The owner can.
	err = svc.DeleteBooking(context.Background(), touristID.String(), bookingID)
	require.NoError(t, err)

	err = svc.DeleteBooking(context.Background(), touristID.String(), bookingID)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBookingStatus(t *testing.T) {
	_, _, bookingRepo, _, svc, touristID, activityID := newBookingFixture(t, 500, 0)

	req := &request.CreateBookingRequest{
		Kind:            "activity",
		ItemID:          activityID.String(),
		PaymentType:     "wallet",
		NumberOfTickets: 1,
	}

	_, err := svc.CreateBooking(context.Background(), touristID.String(), req)
	require.NoError(t, err)
	bookingID := bookingRepo.bookings[0].ID.String()

	err = svc.UpdateBookingStatus(context.Background(), bookingID, &request.UpdateBookingStatusRequest{Status: "attended"})
	require.NoError(t, err)
	require.Equal(t, entity.BookingStatusAttended, bookingRepo.bookings[0].Status)

	err = svc.UpdateBookingStatus(context.Background(), uuid.NewString(), &request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.ErrorIs(t, err, ErrBookingNotFound)
}
