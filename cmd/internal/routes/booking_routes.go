package routes

import (
	"catering/cmd/internal/service"
	"catering/cmd/internal/utils/apierror"
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *service.CreateBookingRequest) (*service.CreateBookingResponse, apierror.ErrorResponse)
	GetBookings(ctx context.Context) ([]*service.BookingResponse, apierror.ErrorResponse)
	UpdateStatus(ctx context.Context, req *service.UpdateStatusRequest) apierror.ErrorResponse
	DeleteBooking(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultBookingRoute struct {
	BookingService BookingService
}

func NewBookingDefault(bookingService BookingService) *DefaultBookingRoute {
	return &DefaultBookingRoute{BookingService: bookingService}
}

func (b *DefaultBookingRoute) CreateBooking(c echo.Context) error {
	var req service.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := b.BookingService.CreateBooking(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Booking created!",
		"user_id": resp.UserID,
	})
}

func (b *DefaultBookingRoute) GetBookings(c echo.Context) error {
	bookings, apierr := b.BookingService.GetBookings(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"success": true, "bookings": bookings}
	return c.JSON(http.StatusOK, &resp)
}

// UpdateStatus takes the booking id from the request body.
func (b *DefaultBookingRoute) UpdateStatus(c echo.Context) error {
	var req service.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	return b.updateStatus(c, &req)
}

// UpdateBookingStatus takes the booking id from the path.
func (b *DefaultBookingRoute) UpdateBookingStatus(c echo.Context) error {
	id, apierr := bookingIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	req.ID = &id
	return b.updateStatus(c, &req)
}

func (b *DefaultBookingRoute) updateStatus(c echo.Context, req *service.UpdateStatusRequest) error {
	apierr := b.BookingService.UpdateStatus(c.Request().Context(), req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Status updated successfully",
	})
}

func (b *DefaultBookingRoute) DeleteBooking(c echo.Context) error {
	id, apierr := bookingIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	apierr = b.BookingService.DeleteBooking(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Booking deleted successfully",
	})
}

func bookingIDParam(c echo.Context) (int, apierror.ErrorResponse) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError("Booking ID", "a number")
	}
	return id, nil
}
