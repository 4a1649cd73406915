package usecase

import (
	"context"

	"trip-genie/internal/data/entity"
	"trip-genie/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. Each fake keeps just enough
// state to honor the guarded-update contracts of the real repositories.

type fakeTouristRepo struct {
	tourist *entity.Tourist
	findErr error
}

func (f *fakeTouristRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tourist, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.tourist == nil || f.tourist.ID != id {
		return nil, nil
	}
	copied := *f.tourist
	return &copied, nil
}

func (f *fakeTouristRepo) DebitWalletIfSufficient(ctx context.Context, id uuid.UUID, amount float64) (bool, error) {
	if f.tourist.Wallet < amount {
		return false, nil
	}
	f.tourist.Wallet -= amount
	return true, nil
}

func (f *fakeTouristRepo) CreditWallet(ctx context.Context, id uuid.UUID, amount float64) error {
	f.tourist.Wallet += amount
	return nil
}

func (f *fakeTouristRepo) ApplyAccrual(ctx context.Context, id uuid.UUID, points float64) error {
	f.tourist.LoyaltyPoints += points
	f.tourist.TotalPoints += points
	return nil
}

func (f *fakeTouristRepo) RedeemPointsIfSufficient(ctx context.Context, id uuid.UUID, points float64) (bool, error) {
	if f.tourist.LoyaltyPoints < points {
		return false, nil
	}
	f.tourist.LoyaltyPoints -= points
	return true, nil
}

func (f *fakeTouristRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	f.tourist.PasswordHash = hash
	return nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	copied := *booking
	f.bookings = append(f.bookings, &copied)
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, booking := range f.bookings {
		if booking.ID == id && booking.DeletedAt == nil {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByTouristID(ctx context.Context, touristID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.TouristID == touristID && booking.DeletedAt == nil {
			copied := *booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) CountByTouristID(ctx context.Context, touristID uuid.UUID) (int64, error) {
	var total int64
	for _, booking := range f.bookings {
		if booking.TouristID == touristID && booking.DeletedAt == nil {
			total++
		}
	}
	return total, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	for _, booking := range f.bookings {
		if booking.ID == bookingID {
			booking.Status = status
		}
	}
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for _, booking := range f.bookings {
		if booking.ID == id {
			now := booking.CreatedAt
			booking.DeletedAt = &now
		}
	}
	return nil
}

type fakeActivityRepo struct {
	activities []*entity.Activity

	searchIDs []uuid.UUID
	filterIDs []uuid.UUID

	lastSearch string
	lastFilter repository.ActivityFilter
}

func (f *fakeActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	for _, activity := range f.activities {
		if activity.ID == id {
			copied := *activity
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeActivityRepo) allIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(f.activities))
	for i, activity := range f.activities {
		ids[i] = activity.ID
	}
	return ids
}

func (f *fakeActivityRepo) SearchIDs(ctx context.Context, text string) ([]uuid.UUID, error) {
	f.lastSearch = text
	if text == "" {
		return f.allIDs(), nil
	}
	return f.searchIDs, nil
}

func (f *fakeActivityRepo) FilterIDs(ctx context.Context, filter repository.ActivityFilter) ([]uuid.UUID, error) {
	f.lastFilter = filter
	if filter == (repository.ActivityFilter{}) {
		return f.allIDs(), nil
	}
	return f.filterIDs, nil
}

func (f *fakeActivityRepo) FindByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	var result []*entity.Activity
	for _, activity := range f.activities {
		if containsID(searchIDs, activity.ID) && containsID(filterIDs, activity.ID) {
			copied := *activity
			result = append(result, &copied)
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeActivityRepo) CountByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID) (int64, error) {
	var total int64
	for _, activity := range f.activities {
		if containsID(searchIDs, activity.ID) && containsID(filterIDs, activity.ID) {
			total++
		}
	}
	return total, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

type fakePromoRepo struct {
	promos []*entity.PromoCode
}

func (f *fakePromoRepo) Create(ctx context.Context, promo *entity.PromoCode) error {
	copied := *promo
	f.promos = append(f.promos, &copied)
	return nil
}

func (f *fakePromoRepo) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	for _, promo := range f.promos {
		if promo.Code == code {
			copied := *promo
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePromoRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.PromoCode, error) {
	result := make([]*entity.PromoCode, 0, len(f.promos))
	for _, promo := range f.promos {
		copied := *promo
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakePromoRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.promos)), nil
}

func (f *fakePromoRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PromoStatus) error {
	for _, promo := range f.promos {
		if promo.ID == id {
			promo.Status = status
		}
	}
	return nil
}

func (f *fakePromoRepo) IncrementUsageIfAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, promo := range f.promos {
		if promo.ID == id {
			if promo.TimesUsed >= promo.UsageLimit {
				return false, nil
			}
			promo.TimesUsed++
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if category, ok := f.categories[id]; ok {
		copied := *category
		return &copied, nil
	}
	return nil, nil
}

type fakeTagRepo struct {
	tags map[uuid.UUID][]*entity.Tag
}

func (f *fakeTagRepo) FindByActivityID(ctx context.Context, activityID uuid.UUID) ([]*entity.Tag, error) {
	return f.tags[activityID], nil
}

func (f *fakeTagRepo) FindByItineraryID(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Tag, error) {
	return f.tags[itineraryID], nil
}

func (f *fakeTagRepo) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*entity.Tag, error) {
	return f.tags[placeID], nil
}
