package entity

type UserRole string

const (
	RoleTourist UserRole = "tourist"
	RoleAdmin   UserRole = "admin"
)

type Tourist struct {
	Base
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	Phone         *string  `db:"phone"`
	Role          UserRole `db:"role"`
	Wallet        float64  `db:"wallet"`
	LoyaltyPoints float64  `db:"loyalty_points"`
	TotalPoints   float64  `db:"total_points"`
	IsActive      bool     `db:"is_active"`
}

// Badge derives the loyalty tier from lifetime points. The badge is never
// stored, so it cannot drift from the points that earned it.
func (t *Tourist) Badge() Badge {
	badge, _ := TierFor(t.TotalPoints)
	return badge
}
