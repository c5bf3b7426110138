package service

import (
	"catering/cmd/internal/domain/database/databasetest"
	"catering/cmd/internal/domain/database/repository"
	"catering/cmd/internal/domain/entity"
	"context"
	"errors"
	"net/http"
	"testing"
)

type failingStaffRepo struct{}

func (failingStaffRepo) FindAll(context.Context) ([]*entity.StaffMember, error) {
	return nil, errors.New("no such table: catering_staff")
}

func TestGetStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every member", func(t *testing.T) {
		db := databasetest.Open(t)
		databasetest.SeedStaff(t, db,
			&entity.StaffMember{Name: "Ana", SkillLevel: "expert"},
			&entity.StaffMember{Name: "Ben", SkillLevel: "junior", Availability: "busy"},
		)

		svc := NewStaffService(repository.NewStaffRepository(db), true)
		staff, apierr := svc.GetStaff(ctx)
		if apierr != nil {
			t.Fatalf("GetStaff failed: %v", apierr)
		}
		if len(staff) != 2 {
			t.Fatalf("got %d staff, want 2", len(staff))
		}
		for _, member := range staff {
			if member.ID == 0 || member.CreatedAt == "" {
				t.Errorf("incomplete member: %+v", member)
			}
		}
	})

	t.Run("store failure", func(t *testing.T) {
		svc := NewStaffService(failingStaffRepo{}, true)
		if _, apierr := svc.GetStaff(ctx); apierr == nil || apierr.Code() != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %v", apierr)
		}
	})
}
