package service

import (
	"catering/cmd/internal/domain/entity"
	"catering/cmd/internal/utils"
	"catering/cmd/internal/utils/apierror"
	"context"
	"net/http"

	"github.com/labstack/gommon/log"
)

type StaffRepository interface {
	FindAll(ctx context.Context) ([]*entity.StaffMember, error)
}

type StaffResponse struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Availability   string  `json:"availability"`
	SkillLevel     string  `json:"skill_level"`
	Specialization *string `json:"specialization"`
	CreatedAt      string  `json:"created_at"`
}

type DefaultStaffService struct {
	StaffRepo         StaffRepository
	ExposeStoreErrors bool
}

func NewStaffService(staffRepo StaffRepository, exposeStoreErrors bool) *DefaultStaffService {
	return &DefaultStaffService{StaffRepo: staffRepo, ExposeStoreErrors: exposeStoreErrors}
}

func (s *DefaultStaffService) GetStaff(ctx context.Context) ([]*StaffResponse, apierror.ErrorResponse) {
	staff, err := s.StaffRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch staff: %v", err)
		return nil, apierror.NewStoreError(http.StatusInternalServerError, err, s.ExposeStoreErrors)
	}

	resp := make([]*StaffResponse, len(staff))
	for i, member := range staff {
		resp[i] = &StaffResponse{
			ID:             member.ID,
			Name:           member.Name,
			Availability:   member.Availability,
			SkillLevel:     member.SkillLevel,
			Specialization: member.Specialization,
			CreatedAt:      utils.FormatTime(member.CreatedAt),
		}
	}
	return resp, nil
}
