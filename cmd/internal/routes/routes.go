package routes

import (
	"catering/cmd/internal/metrics"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Bookings *DefaultBookingRoute
	Staff    *DefaultStaffRoute
	Admin    *DefaultAdminRoute
}

func Register(e *echo.Echo, h *Handlers) {
	e.HTTPErrorHandler = ErrorHandler

	// Bookings
	e.POST("/api/book", h.Bookings.CreateBooking)
	e.GET("/api/bookings", h.Bookings.GetBookings)
	e.POST("/api/update_status", h.Bookings.UpdateStatus)
	e.PUT("/api/bookings/:id", h.Bookings.UpdateBookingStatus)
	e.DELETE("/api/bookings/:id", h.Bookings.DeleteBooking)

	// Staff roster, read only
	e.GET("/api/staff", h.Staff.GetStaff)

	e.POST("/api/contact", Contact)
	e.POST("/api/admin/login", h.Admin.Login)

	e.GET("/api/health", Health)
	e.GET("/metrics", metrics.Handler())
}
