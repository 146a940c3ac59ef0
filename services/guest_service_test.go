package services

import (
	"testing"

	"hotel-management-backend/models"
)

func TestCreateOrGetDeduplicatesByEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewGuestService(db)

	first := models.Guest{Name: "Asha Rao", Email: "asha@example.com", Nationality: "IN"}
	exists, err := svc.CreateOrGet(&first)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if exists {
		t.Error("first create reported alreadyExists")
	}

	second := models.Guest{Name: "A. Rao", Email: "asha@example.com"}
	exists, err = svc.CreateOrGet(&second)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if !exists {
		t.Error("duplicate email did not report alreadyExists")
	}
	if second.ID != first.ID {
		t.Errorf("dedup returned guest %d, want %d", second.ID, first.ID)
	}

	var count int64
	db.Model(&models.Guest{}).Count(&count)
	if count != 1 {
		t.Errorf("guest count = %d, want 1", count)
	}
}

func TestCreateOrGetValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewGuestService(db)

	g := models.Guest{Name: "No Email"}
	if _, err := svc.CreateOrGet(&g); kindOf(t, err) != KindValidation {
		t.Errorf("missing email: kind = %v, want validation", KindOf(err))
	}
}

func TestDeleteGuestBlockedWhileCheckedIn(t *testing.T) {
	db := openTestDB(t)
	guests := NewGuestService(db)
	reservations := NewReservationService(db)

	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	res, err := reservations.Create(CreateReservationInput{
		GuestID:    guest.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	if _, err := reservations.SetStatus(res.ID, models.StatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if err := guests.Delete(guest.ID); kindOf(t, err) != KindConflict {
		t.Fatalf("delete while checked in: kind = %v, want conflict", KindOf(err))
	}

	if _, err := reservations.SetStatus(res.ID, models.StatusCheckedOut); err != nil {
		t.Fatalf("check out: %v", err)
	}
	if err := guests.Delete(guest.ID); err != nil {
		t.Fatalf("delete after checkout: %v", err)
	}

	if err := guests.Delete(guest.ID); kindOf(t, err) != KindNotFound {
		t.Errorf("second delete: kind = %v, want not-found", KindOf(err))
	}
}
