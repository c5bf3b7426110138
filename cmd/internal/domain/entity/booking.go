package entity

import "time"

type ServiceType string

const (
	ServiceCatering   ServiceType = "catering"
	ServiceAuditorium ServiceType = "auditorium"
	ServiceBoth       ServiceType = "both"
)

// BookingStatus accepts any value at this layer; the bookings table
// constraint is the only place the enum is enforced.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID                  int           `gorm:"primaryKey"`
	UserID              int           `gorm:"not null;index"` // References: users(id)
	ServiceType         ServiceType   `gorm:"type:varchar(16);not null;check:chk_bookings_service_type,service_type IN ('catering','auditorium','both')"`
	Date                string        `gorm:"type:date;not null"`
	Time                string        `gorm:"type:time;not null"`
	NumberOfPeople      int           `gorm:"not null"`
	Status              BookingStatus `gorm:"type:varchar(16);not null;default:pending;check:chk_bookings_status,status IN ('pending','confirmed','cancelled')"`
	SpecialRequirements string        `gorm:"type:text;default:''"`
	CreatedAt           time.Time     `gorm:"default:CURRENT_TIMESTAMP;index"`

	// Relations
	Owner *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// BookingView is a booking row joined with the contact details of its owner.
// Date and Time are selected as text so every store renders them the same way.
type BookingView struct {
	ID                  int
	Name                string
	Email               string
	Phone               string
	ServiceType         string
	Date                string
	Time                string
	NumberOfPeople      int
	Status              string
	SpecialRequirements string
	CreatedAt           time.Time
}
