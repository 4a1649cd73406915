package wire

import (
	"trip-genie/internal/adaptor"
	"trip-genie/internal/data/repository"
	"trip-genie/pkg/middleware"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Book an item and settle payment
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/tourist/bookings - View booking history (tourist's own bookings)
		r.Get("/api/tourist/bookings", bookingHandler.GetTouristBookings)

		// DELETE /api/bookings/{id} - Cancel own booking
		r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.Tourist, log))

		// GET /api/admin/bookings/{id} - View any booking details (admin)
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/admin/bookings/{id}/status - Update booking status (admin)
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
