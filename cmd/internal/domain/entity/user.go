package entity

import "time"

type User struct {
	ID        int       `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}
