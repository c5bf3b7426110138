package repository

import (
	"catering/cmd/internal/domain/database/databasetest"
	"catering/cmd/internal/domain/entity"
	"context"
	"testing"
)

func newBooking(service entity.ServiceType) *entity.Booking {
	return &entity.Booking{
		ServiceType:    service,
		Date:           "2024-01-01",
		Time:           "12:00",
		NumberOfPeople: 4,
	}
}

func TestBookingRepository_CreateWithUser(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	repo := NewBookingRepository(db)

	t.Run("links booking to the new user", func(t *testing.T) {
		user := &entity.User{Name: "A", Email: "a@x.com", Phone: "1"}
		booking := newBooking(entity.ServiceCatering)

		if err := repo.CreateWithUser(ctx, user, booking); err != nil {
			t.Fatalf("CreateWithUser failed: %v", err)
		}
		if user.ID <= 0 {
			t.Fatalf("expected generated user id, got %d", user.ID)
		}

		var stored entity.Booking
		if err := db.First(&stored, booking.ID).Error; err != nil {
			t.Fatalf("booking not stored: %v", err)
		}
		if stored.UserID != user.ID {
			t.Errorf("booking.user_id = %d, want %d", stored.UserID, user.ID)
		}
		if stored.Status != entity.StatusPending {
			t.Errorf("status = %q, want pending", stored.Status)
		}
		if stored.SpecialRequirements != "" {
			t.Errorf("special_requirements = %q, want empty", stored.SpecialRequirements)
		}
	})

	t.Run("duplicate email keeps nothing", func(t *testing.T) {
		users := databasetest.CountRows(t, db, &entity.User{})
		bookings := databasetest.CountRows(t, db, &entity.Booking{})

		user := &entity.User{Name: "B", Email: "a@x.com", Phone: "2"}
		if err := repo.CreateWithUser(ctx, user, newBooking(entity.ServiceBoth)); err == nil {
			t.Fatal("expected unique constraint failure")
		}

		if got := databasetest.CountRows(t, db, &entity.User{}); got != users {
			t.Errorf("users = %d, want %d", got, users)
		}
		if got := databasetest.CountRows(t, db, &entity.Booking{}); got != bookings {
			t.Errorf("bookings = %d, want %d", got, bookings)
		}
	})

	t.Run("bad service type rolls back the user", func(t *testing.T) {
		user := &entity.User{Name: "C", Email: "c@x.com", Phone: "3"}
		if err := repo.CreateWithUser(ctx, user, newBooking("banquet")); err == nil {
			t.Fatal("expected check constraint failure")
		}

		var n int64
		if err := db.Model(&entity.User{}).Where("email = ?", "c@x.com").Count(&n).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if n != 0 {
			t.Errorf("user c@x.com survived a failed booking insert")
		}
	})
}

func TestBookingRepository_FindAllWithUser(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	repo := NewBookingRepository(db)

	first := newBooking(entity.ServiceCatering)
	first.SpecialRequirements = "vegan"
	if err := repo.CreateWithUser(ctx, &entity.User{Name: "A", Email: "a@x.com", Phone: "1"}, first); err != nil {
		t.Fatal(err)
	}
	second := newBooking(entity.ServiceAuditorium)
	second.Date = "2024-02-10"
	second.Time = "18:30"
	if err := repo.CreateWithUser(ctx, &entity.User{Name: "B", Email: "b@x.com", Phone: "2"}, second); err != nil {
		t.Fatal(err)
	}

	rows, err := repo.FindAllWithUser(ctx)
	if err != nil {
		t.Fatalf("FindAllWithUser failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].ID != second.ID || rows[1].ID != first.ID {
		t.Errorf("expected newest first, got ids %d, %d", rows[0].ID, rows[1].ID)
	}
	if rows[0].Name != "B" || rows[0].Email != "b@x.com" || rows[0].Phone != "2" {
		t.Errorf("owner columns not joined: %+v", rows[0])
	}
	if rows[0].Date != "2024-02-10" || rows[0].Time != "18:30" {
		t.Errorf("date/time = %q %q", rows[0].Date, rows[0].Time)
	}
	if rows[1].SpecialRequirements != "vegan" || rows[1].Status != "pending" {
		t.Errorf("unexpected row: %+v", rows[1])
	}
	if rows[0].CreatedAt.IsZero() {
		t.Error("created_at not scanned")
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	repo := NewBookingRepository(db)

	booking := newBooking(entity.ServiceBoth)
	if err := repo.CreateWithUser(ctx, &entity.User{Name: "A", Email: "a@x.com", Phone: "1"}, booking); err != nil {
		t.Fatal(err)
	}

	// Transitions are unconstrained, including out of cancelled.
	for _, status := range []string{"confirmed", "cancelled", "confirmed", "pending"} {
		n, err := repo.UpdateStatus(ctx, booking.ID, status)
		if err != nil || n != 1 {
			t.Fatalf("UpdateStatus(%s) = %d, %v", status, n, err)
		}
	}

	if _, err := repo.UpdateStatus(ctx, booking.ID, "archived"); err == nil {
		t.Error("expected check constraint failure for archived")
	}

	n, err := repo.UpdateStatus(ctx, 999999, "confirmed")
	if err != nil || n != 0 {
		t.Errorf("UpdateStatus(missing) = %d, %v", n, err)
	}
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	repo := NewBookingRepository(db)

	user := &entity.User{Name: "A", Email: "a@x.com", Phone: "1"}
	booking := newBooking(entity.ServiceCatering)
	if err := repo.CreateWithUser(ctx, user, booking); err != nil {
		t.Fatal(err)
	}

	n, err := repo.Delete(ctx, booking.ID)
	if err != nil || n != 1 {
		t.Fatalf("first Delete = %d, %v", n, err)
	}
	n, err = repo.Delete(ctx, booking.ID)
	if err != nil || n != 0 {
		t.Fatalf("second Delete = %d, %v", n, err)
	}

	var owner entity.User
	if err := db.First(&owner, user.ID).Error; err != nil {
		t.Errorf("deleting a booking must keep its user: %v", err)
	}
}

func TestUserDeleteCascadesToBookings(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	repo := NewBookingRepository(db)

	user := &entity.User{Name: "A", Email: "a@x.com", Phone: "1"}
	if err := repo.CreateWithUser(ctx, user, newBooking(entity.ServiceCatering)); err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(&entity.User{}, user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if got := databasetest.CountRows(t, db, &entity.Booking{}); got != 0 {
		t.Errorf("bookings after user delete = %d, want 0", got)
	}
}
