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

type BookingService interface {
	// Public endpoints (require auth)
	CreateBooking(ctx context.Context, touristID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	GetTouristBookings(ctx context.Context, touristID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	DeleteBooking(ctx context.Context, touristID, bookingID string) error

	// Admin endpoints
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	repo  *repository.Repository
	promo PromoService
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, promo PromoService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		promo: promo,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, touristID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	touristUUID, err := uuid.Parse(touristID)
	if err != nil {
		return nil, fmt.Errorf("invalid tourist ID format %s: %w", touristID, err)
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("invalid item ID format %s: %w", req.ItemID, err)
	}

	// Resolve the booked item; every kind must be matched explicitly
	kind := entity.BookingKind(req.Kind)
	unitPrice, itemName, err := s.resolveItem(ctx, kind, itemID)
	if err != nil {
		return nil, err
	}

	// Resolve tourist
	tourist, err := s.repo.Tourist.FindByID(ctx, touristUUID)
	if err != nil {
		return nil, fmt.Errorf("find tourist %s: %w", touristID, err)
	}
	if tourist == nil {
		return nil, fmt.Errorf("tourist %s: %w", touristID, ErrTouristNotFound)
	}

	amount := unitPrice * float64(req.NumberOfTickets)

	// Optional promo discount, applied before settlement and accrual
	var promoCode *string
	if req.PromoCode != "" {
		promo, err := s.promo.Redeem(ctx, req.PromoCode)
		if err != nil {
			return nil, err
		}
		amount = amount * (1 - promo.PercentOff/100)
		promoCode = &promo.Code
	}

	// Accrual rate comes from the badge held before this purchase; a tier
	// upgrade earned here only pays off on the next booking.
	preBadge := tourist.Badge()
	points := entity.AccruePoints(amount, preBadge)

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:         utils.GenerateOrderID(),
		TouristID:       touristUUID,
		Kind:            kind,
		ItemID:          itemID,
		PaymentType:     entity.PaymentType(req.PaymentType),
		PaymentAmount:   amount,
		NumberOfTickets: req.NumberOfTickets,
		PromoCode:       promoCode,
		Status:          entity.BookingStatusConfirmed,
	}

	// Settlement, booking insert and accrual commit or roll back together.
	err = s.repo.WithinTx(ctx, func(txRepo *repository.Repository) error {
		if booking.PaymentType == entity.PaymentWallet {
			debited, err := txRepo.Tourist.DebitWalletIfSufficient(ctx, touristUUID, amount)
			if err != nil {
				return fmt.Errorf("settle wallet: %w", err)
			}
			if !debited {
				return fmt.Errorf("wallet balance below %.2f: %w", amount, ErrInsufficientFunds)
			}
		}

		if err := txRepo.Booking.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		if err := txRepo.Tourist.ApplyAccrual(ctx, touristUUID, points); err != nil {
			return fmt.Errorf("apply accrual: %w", err)
		}

		return nil
	})
	if err != nil {
		s.log.Warn("Booking finalization failed",
			zap.Error(err),
			zap.String("tourist_id", touristID),
			zap.String("kind", req.Kind),
			zap.String("item_id", req.ItemID),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("tourist_id", touristID),
		zap.String("kind", string(kind)),
		zap.Int("tickets", req.NumberOfTickets),
		zap.Float64("amount", amount),
		zap.Float64("points_earned", points),
		zap.String("badge_at_purchase", string(preBadge)),
	)

	// Re-read for the post-settlement wallet and loyalty state
	updated, err := s.repo.Tourist.FindByID(ctx, touristUUID)
	if err != nil || updated == nil {
		s.log.Error("Failed to reload tourist after booking",
			zap.Error(err),
			zap.String("tourist_id", touristID),
		)
		updated = tourist
	}

	return &response.CreateBookingResponse{
		Booking: response.BookingToResponse(booking, itemName),
		Tourist: response.TouristToResponse(updated),
	}, nil
}

// resolveItem looks up the purchased item and returns its unit price. The
// switch is exhaustive over BookingKind.
func (s *bookingService) resolveItem(ctx context.Context, kind entity.BookingKind, itemID uuid.UUID) (float64, string, error) {
	switch kind {
	case entity.KindActivity:
		activity, err := s.repo.Activity.FindByID(ctx, itemID)
		if err != nil {
			return 0, "", fmt.Errorf("find activity %s: %w", itemID.String(), err)
		}
		if activity == nil {
			return 0, "", fmt.Errorf("activity %s: %w", itemID.String(), ErrItemNotFound)
		}
		return activity.Price, activity.Name, nil

	case entity.KindItinerary:
		itinerary, err := s.repo.Itinerary.FindByID(ctx, itemID)
		if err != nil {
			return 0, "", fmt.Errorf("find itinerary %s: %w", itemID.String(), err)
		}
		if itinerary == nil {
			return 0, "", fmt.Errorf("itinerary %s: %w", itemID.String(), ErrItemNotFound)
		}
		return itinerary.Price, itinerary.Title, nil

	case entity.KindHistoricalPlace:
		place, err := s.repo.HistoricalPlace.FindByID(ctx, itemID)
		if err != nil {
			return 0, "", fmt.Errorf("find historical place %s: %w", itemID.String(), err)
		}
		if place == nil {
			return 0, "", fmt.Errorf("historical place %s: %w", itemID.String(), ErrItemNotFound)
		}
		return place.TicketPrice, place.Name, nil

	default:
		return 0, "", fmt.Errorf("validation failed: unknown booking kind %q", kind)
	}
}

func (s *bookingService) GetTouristBookings(ctx context.Context, touristID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	touristUUID, err := uuid.Parse(touristID)
	if err != nil {
		return nil, fmt.Errorf("invalid tourist ID format %s: %w", touristID, err)
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByTouristID(ctx, touristUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get tourist bookings",
			zap.Error(err),
			zap.String("tourist_id", touristID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get tourist bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByTouristID(ctx, touristUUID)
	if err != nil {
		s.log.Error("Failed to count tourist bookings", zap.Error(err))
		return nil, fmt.Errorf("count tourist bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking, s.itemName(ctx, booking))
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) itemName(ctx context.Context, booking *entity.Booking) string {
	_, name, err := s.resolveItem(ctx, booking.Kind, booking.ItemID)
	if err != nil {
		// Item may be gone; the booking still renders without a name.
		return ""
	}
	return name
}

func (s *bookingService) DeleteBooking(ctx context.Context, touristID, bookingID string) error {
	touristUUID, err := uuid.Parse(touristID)
	if err != nil {
		return fmt.Errorf("invalid tourist ID format %s: %w", touristID, err)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	if booking.TouristID != touristUUID {
		return fmt.Errorf("booking %s: %w", bookingID, ErrNotOwner)
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking deleted by tourist",
		zap.String("booking_id", bookingID),
		zap.String("tourist_id", touristID),
	)

	return nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	resp := response.BookingToResponse(booking, s.itemName(ctx, booking))
	return &resp, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatus(req.Status)); err != nil {
		return fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	return nil
}
