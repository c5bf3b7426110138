package entity

import "time"

type StaffMember struct {
	ID             int       `gorm:"primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Availability   string    `gorm:"type:varchar(16);not null;default:available;check:chk_catering_staff_availability,availability IN ('available','busy','off')"`
	SkillLevel     string    `gorm:"type:varchar(16);not null;check:chk_catering_staff_skill_level,skill_level IN ('junior','senior','expert')"`
	Specialization *string   `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (StaffMember) TableName() string {
	return "catering_staff"
}
