package repository

import (
	"catering/cmd/internal/domain/entity"
	"context"

	"gorm.io/gorm"
)

type DefaultStaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *DefaultStaffRepository {
	return &DefaultStaffRepository{db: db}
}

func (s *DefaultStaffRepository) FindAll(ctx context.Context) ([]*entity.StaffMember, error) {
	var staff []*entity.StaffMember
	err := s.db.WithContext(ctx).Find(&staff).Error
	return staff, err
}
