package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPromoCodeDerivedStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	promo := &PromoCode{
		Status:     PromoStatusActive,
		UsageLimit: 2,
		TimesUsed:  0,
		StartsAt:   now.AddDate(0, -1, 0),
		EndsAt:     now.AddDate(0, 1, 0),
	}

	// Inside the window with headroom the stored status stands.
	require.Equal(t, PromoStatusActive, promo.DerivedStatus(now))

	// Past the end date the code reads as expired.
	require.Equal(t, PromoStatusExpired, promo.DerivedStatus(promo.EndsAt.AddDate(0, 0, 1)))

	// Exhaustion wins even when the code is also past its end date.
	promo.TimesUsed = 2
	require.Equal(t, PromoStatusInactive, promo.DerivedStatus(promo.EndsAt.AddDate(0, 0, 1)))
	require.Equal(t, PromoStatusInactive, promo.DerivedStatus(now))
}
