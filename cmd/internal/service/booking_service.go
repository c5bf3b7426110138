package service

import (
	"catering/cmd/internal/domain/entity"
	"catering/cmd/internal/metrics"
	"catering/cmd/internal/utils"
	"catering/cmd/internal/utils/apierror"
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type BookingRepository interface {
	CreateWithUser(ctx context.Context, user *entity.User, booking *entity.Booking) error
	FindAllWithUser(ctx context.Context) ([]*entity.BookingView, error)
	UpdateStatus(ctx context.Context, id int, status string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// CreateBookingRequest only checks presence. Enum values, dates and times are
// left for the database to accept or reject.
type CreateBookingRequest struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	ServiceType         string `json:"service_type" validate:"required"`
	Date                string `json:"date" validate:"required"`
	Time                string `json:"time" validate:"required"`
	NumberOfPeople      *int   `json:"number_of_people" validate:"required"`
	SpecialRequirements string `json:"special_requirements"`
}

type UpdateStatusRequest struct {
	ID     *int   `json:"id"`
	Status string `json:"status"`
}

type CreateBookingResponse struct {
	UserID int `json:"user_id"`
}

type BookingResponse struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	ServiceType         string `json:"service_type"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	NumberOfPeople      int    `json:"number_of_people"`
	Status              string `json:"status"`
	SpecialRequirements string `json:"special_requirements"`
	CreatedAt           string `json:"created_at"`
}

type DefaultBookingService struct {
	BookingRepo       BookingRepository
	Validate          *validator.Validate
	ExposeStoreErrors bool
}

func NewBookingService(bookingRepo BookingRepository, validate *validator.Validate, exposeStoreErrors bool) *DefaultBookingService {
	return &DefaultBookingService{BookingRepo: bookingRepo, Validate: validate, ExposeStoreErrors: exposeStoreErrors}
}

// CreateBooking stores a new customer and their booking together. A failure
// in either insert, including a reused email, leaves nothing behind.
func (b *DefaultBookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, apierror.ErrorResponse) {
	if err := b.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user := &entity.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	booking := &entity.Booking{
		ServiceType:         entity.ServiceType(req.ServiceType),
		Date:                req.Date,
		Time:                req.Time,
		NumberOfPeople:      *req.NumberOfPeople,
		SpecialRequirements: req.SpecialRequirements,
	}

	err := b.BookingRepo.CreateWithUser(ctx, user, booking)
	if err != nil {
		log.Errorf("failed to create booking for %s: %v", req.Email, err)
		return nil, apierror.NewStoreError(http.StatusBadRequest, err, b.ExposeStoreErrors)
	}

	metrics.IncBookingCreated(req.ServiceType)
	return &CreateBookingResponse{UserID: user.ID}, nil
}

func (b *DefaultBookingService) GetBookings(ctx context.Context) ([]*BookingResponse, apierror.ErrorResponse) {
	rows, err := b.BookingRepo.FindAllWithUser(ctx)
	if err != nil {
		log.Errorf("failed to fetch bookings: %v", err)
		return nil, apierror.NewStoreError(http.StatusBadRequest, err, b.ExposeStoreErrors)
	}

	resp := make([]*BookingResponse, len(rows))
	for i, row := range rows {
		resp[i] = toBookingResponse(row)
	}
	return resp, nil
}

// UpdateStatus serves both the body-addressed and the path-addressed status
// routes. Any status may follow any other; the store rejects unknown values.
func (b *DefaultBookingService) UpdateStatus(ctx context.Context, req *UpdateStatusRequest) apierror.ErrorResponse {
	if req.ID == nil || *req.ID == 0 {
		return apierror.NewMissingFieldError("Booking ID is required")
	}
	if req.Status == "" {
		return apierror.NewMissingFieldError("Status is required")
	}

	updated, err := b.BookingRepo.UpdateStatus(ctx, *req.ID, req.Status)
	if err != nil {
		log.Errorf("failed to update booking %d status to %q: %v", *req.ID, req.Status, err)
		return apierror.NewStoreError(http.StatusInternalServerError, err, b.ExposeStoreErrors)
	}

	if updated == 0 {
		return apierror.BookingNotFoundError
	}

	metrics.IncBookingStatusUpdated(req.Status)
	return nil
}

func (b *DefaultBookingService) DeleteBooking(ctx context.Context, id int) apierror.ErrorResponse {
	deleted, err := b.BookingRepo.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete booking %d: %v", id, err)
		return apierror.NewStoreError(http.StatusInternalServerError, err, b.ExposeStoreErrors)
	}

	if deleted == 0 {
		return apierror.BookingNotFoundError
	}

	metrics.IncBookingDeleted()
	return nil
}

func toBookingResponse(row *entity.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                  row.ID,
		Name:                row.Name,
		Email:               row.Email,
		Phone:               row.Phone,
		ServiceType:         row.ServiceType,
		Date:                row.Date,
		Time:                row.Time,
		NumberOfPeople:      row.NumberOfPeople,
		Status:              row.Status,
		SpecialRequirements: row.SpecialRequirements,
		CreatedAt:           utils.FormatTime(row.CreatedAt),
	}
}
