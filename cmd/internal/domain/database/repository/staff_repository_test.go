package repository

import (
	"catering/cmd/internal/domain/database/databasetest"
	"catering/cmd/internal/domain/entity"
	"context"
	"testing"
)

func TestStaffRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	repo := NewStaffRepository(db)

	staff, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll on empty table failed: %v", err)
	}
	if len(staff) != 0 {
		t.Fatalf("expected empty roster, got %d", len(staff))
	}

	pastry := "pastry"
	databasetest.SeedStaff(t, db,
		&entity.StaffMember{Name: "Ana", SkillLevel: "senior", Specialization: &pastry},
		&entity.StaffMember{Name: "Ben", SkillLevel: "junior", Availability: "off"},
	)

	staff, err = repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("got %d staff, want 2", len(staff))
	}

	byName := map[string]*entity.StaffMember{}
	for _, member := range staff {
		byName[member.Name] = member
	}
	if byName["Ana"].Availability != "available" {
		t.Errorf("availability default = %q", byName["Ana"].Availability)
	}
	if byName["Ben"].Specialization != nil {
		t.Errorf("specialization = %v, want nil", *byName["Ben"].Specialization)
	}
}

func TestStaffSkillLevelIsConstrained(t *testing.T) {
	db := databasetest.Open(t)
	err := db.Create(&entity.StaffMember{Name: "Cy", SkillLevel: "intern"}).Error
	if err == nil {
		t.Error("expected check constraint failure for skill level intern")
	}
}
