package entity

type Badge string

const (
	BadgeBronze Badge = "Bronze"
	BadgeSilver Badge = "Silver"
	BadgeGold   Badge = "Gold"
)

// Tier thresholds are inclusive on the lower tier: exactly 100000 lifetime
// points is still Bronze, exactly 500000 is still Silver.
const (
	bronzeCeiling = 100000
	silverCeiling = 500000
)

// TierFor maps lifetime points to a badge and its earn multiplier.
func TierFor(totalPoints float64) (Badge, float64) {
	switch {
	case totalPoints <= bronzeCeiling:
		return BadgeBronze, 0.5
	case totalPoints <= silverCeiling:
		return BadgeSilver, 1.0
	default:
		return BadgeGold, 1.5
	}
}

// Multiplier returns the earn multiplier for a badge, 0 for unknown badges.
func Multiplier(badge Badge) float64 {
	switch badge {
	case BadgeBronze:
		return 0.5
	case BadgeSilver:
		return 1.0
	case BadgeGold:
		return 1.5
	default:
		return 0
	}
}

// AccruePoints computes the points earned for a payment. The badge passed in
// is the one held before the payment, so a tier upgrade only raises the earn
// rate starting with the next purchase.
func AccruePoints(paymentAmount float64, badge Badge) float64 {
	return paymentAmount * Multiplier(badge)
}
