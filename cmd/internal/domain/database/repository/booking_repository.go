package repository

import (
	"catering/cmd/internal/domain/entity"
	"context"

	"gorm.io/gorm"
)

const bookingViewColumns = `bookings.id, users.name, users.email, users.phone,
	bookings.service_type,
	CAST(bookings.date AS TEXT) AS date,
	CAST(bookings.time AS TEXT) AS time,
	bookings.number_of_people, bookings.status, bookings.special_requirements,
	bookings.created_at`

type DefaultBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *DefaultBookingRepository {
	return &DefaultBookingRepository{db: db}
}

// CreateWithUser inserts the user and then the booking pointing at it. Both
// rows are written in one transaction; if either insert fails nothing is kept.
func (b *DefaultBookingRepository) CreateWithUser(ctx context.Context, user *entity.User, booking *entity.Booking) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewUserRepository(tx).Save(ctx, user); err != nil {
			return err
		}

		booking.UserID = user.ID
		return tx.Create(booking).Error
	})
}

// FindAllWithUser returns every booking joined with its owner, newest first.
func (b *DefaultBookingRepository) FindAllWithUser(ctx context.Context) ([]*entity.BookingView, error) {
	var rows []*entity.BookingView
	err := b.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Select(bookingViewColumns).
		Joins("INNER JOIN users ON bookings.user_id = users.id").
		Order("bookings.created_at DESC").
		Order("bookings.id DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus returns the number of bookings matched by id. The status value
// is passed through untouched.
func (b *DefaultBookingRepository) UpdateStatus(ctx context.Context, id int, status string) (int64, error) {
	res := b.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (b *DefaultBookingRepository) Delete(ctx context.Context, id int) (int64, error) {
	res := b.db.WithContext(ctx).Delete(&entity.Booking{}, id)
	return res.RowsAffected, res.Error
}
