package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name           string
		totalPoints    float64
		wantBadge      Badge
		wantMultiplier float64
	}{
		{name: "zero points is bronze", totalPoints: 0, wantBadge: BadgeBronze, wantMultiplier: 0.5},
		{name: "bronze ceiling is still bronze", totalPoints: 100000, wantBadge: BadgeBronze, wantMultiplier: 0.5},
		{name: "one past bronze ceiling is silver", totalPoints: 100001, wantBadge: BadgeSilver, wantMultiplier: 1.0},
		{name: "silver ceiling is still silver", totalPoints: 500000, wantBadge: BadgeSilver, wantMultiplier: 1.0},
		{name: "one past silver ceiling is gold", totalPoints: 500001, wantBadge: BadgeGold, wantMultiplier: 1.5},
		{name: "far past silver ceiling is gold", totalPoints: 2000000, wantBadge: BadgeGold, wantMultiplier: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge, multiplier := TierFor(tt.totalPoints)
			require.Equal(t, tt.wantBadge, badge)
			require.Equal(t, tt.wantMultiplier, multiplier)
		})
	}
}

func TestAccruePoints(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		badge  Badge
		want   float64
	}{
		{name: "bronze earns half rate", amount: 200, badge: BadgeBronze, want: 100},
		{name: "silver earns full rate", amount: 200, badge: BadgeSilver, want: 200},
		{name: "gold earns boosted rate", amount: 200, badge: BadgeGold, want: 300},
		{name: "unknown badge earns nothing", amount: 200, badge: Badge("platinum"), want: 0},
		{name: "zero amount earns nothing", amount: 0, badge: BadgeGold, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AccruePoints(tt.amount, tt.badge))
		})
	}
}

func TestTouristBadgeDerivedFromTotalPoints(t *testing.T) {
	tourist := &Tourist{TotalPoints: 0}
	require.Equal(t, BadgeBronze, tourist.Badge())

	// Spending points leaves lifetime points, and so the badge, untouched.
	tourist.TotalPoints = 500001
	tourist.LoyaltyPoints = 0
	require.Equal(t, BadgeGold, tourist.Badge())
}
