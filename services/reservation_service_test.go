package services

import (
	"testing"

	"hotel-management-backend/models"
)

func TestCreateReservationComputesFrozenTotal(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	res, err := svc.Create(CreateReservationInput{
		GuestID:    guest.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	if res.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want %s", res.Status, models.StatusConfirmed)
	}
	if res.TotalAmount != 300 {
		t.Errorf("total = %v, want 300 (3 nights x 100)", res.TotalAmount)
	}
	if res.ReferenceCode == "" {
		t.Error("expected a generated reference code")
	}

	// Raising the rent must not touch the booked total.
	if err := db.Model(&models.Room{}).Where("id = ?", room.ID).Update("rent", 500).Error; err != nil {
		t.Fatalf("update rent: %v", err)
	}
	reloaded, err := svc.GetByID(res.ID)
	if err != nil {
		t.Fatalf("reload reservation: %v", err)
	}
	if reloaded.TotalAmount != 300 {
		t.Errorf("total after rent change = %v, want 300", reloaded.TotalAmount)
	}
}

func TestCreateReservationRejectsBadDates(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	cases := []struct{ in, out string }{
		{"2025-06-04", "2025-06-01"}, // inverted
		{"2025-06-01", "2025-06-01"}, // zero-night stay
	}
	for _, tc := range cases {
		_, err := svc.Create(CreateReservationInput{
			GuestID:    guest.ID,
			RoomNumber: room.RoomNumber,
			CheckIn:    mustDate(t, tc.in),
			CheckOut:   mustDate(t, tc.out),
		})
		if kindOf(t, err) != KindValidation {
			t.Errorf("dates %s..%s: kind = %v, want validation", tc.in, tc.out, KindOf(err))
		}
	}
}

func TestCreateReservationUnknownGuestAndRoom(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	_, err := svc.Create(CreateReservationInput{
		GuestID:    guest.ID + 99,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	})
	if kindOf(t, err) != KindNotFound {
		t.Errorf("unknown guest: kind = %v, want not-found", KindOf(err))
	}

	_, err = svc.Create(CreateReservationInput{
		GuestID:    guest.ID,
		RoomNumber: "999",
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	})
	if kindOf(t, err) != KindNotFound {
		t.Errorf("unknown room: kind = %v, want not-found", KindOf(err))
	}
}

func TestOverlappingReservationConflictsUntilCancelled(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")
	other := createGuest(t, db, "Ben Cole", "ben@example.com")

	first, err := svc.Create(CreateReservationInput{
		GuestID:    guest.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	})
	if err != nil {
		t.Fatalf("create first reservation: %v", err)
	}

	overlap := CreateReservationInput{
		GuestID:    other.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-03"),
		CheckOut:   mustDate(t, "2025-06-05"),
	}
	if _, err := svc.Create(overlap); kindOf(t, err) != KindConflict {
		t.Fatalf("overlapping create: kind = %v, want conflict", KindOf(err))
	}

	if _, err := svc.SetStatus(first.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel first: %v", err)
	}
	if _, err := svc.Create(overlap); err != nil {
		t.Fatalf("create after cancellation: %v", err)
	}
}

func TestSameDayTurnoverAllowed(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")
	other := createGuest(t, db, "Ben Cole", "ben@example.com")

	if _, err := svc.Create(CreateReservationInput{
		GuestID:    guest.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	}); err != nil {
		t.Fatalf("create first reservation: %v", err)
	}

	// The checkout day itself is free: a new stay may start on it.
	if _, err := svc.Create(CreateReservationInput{
		GuestID:    other.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-04"),
		CheckOut:   mustDate(t, "2025-06-06"),
	}); err != nil {
		t.Fatalf("back-to-back create: %v", err)
	}
}

func TestSetStatusTransitionTable(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	res, err := svc.Create(CreateReservationInput{
		GuestID:    guest.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}

	// Confirmed -> CheckedOut is not allowed.
	if _, err := svc.SetStatus(res.ID, models.StatusCheckedOut); kindOf(t, err) != KindInvalidTransition {
		t.Errorf("Confirmed->CheckedOut: kind = %v, want invalid-transition", KindOf(err))
	}

	if _, err := svc.SetStatus(res.ID, models.StatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if _, err := svc.SetStatus(res.ID, models.StatusCheckedOut); err != nil {
		t.Fatalf("check out: %v", err)
	}

	// CheckedOut is terminal.
	if _, err := svc.SetStatus(res.ID, models.StatusCheckedIn); kindOf(t, err) != KindInvalidTransition {
		t.Errorf("CheckedOut->CheckedIn: kind = %v, want invalid-transition", KindOf(err))
	}
	if _, err := svc.SetStatus(res.ID, "Teleported"); kindOf(t, err) != KindValidation {
		t.Errorf("unknown status: kind = %v, want validation", KindOf(err))
	}
}

func TestCheckInAndOutSideEffects(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	res, err := svc.Create(CreateReservationInput{
		GuestID:    guest.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    mustDate(t, "2025-06-01"),
		CheckOut:   mustDate(t, "2025-06-04"),
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}

	if _, err := svc.SetStatus(res.ID, models.StatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}
	var r models.Room
	var g models.Guest
	db.First(&r, room.ID)
	db.First(&g, guest.ID)
	if r.Status != models.RoomOccupied {
		t.Errorf("room status = %s, want %s", r.Status, models.RoomOccupied)
	}
	if !g.CheckInStatus {
		t.Error("guest check-in flag not set")
	}

	if _, err := svc.SetStatus(res.ID, models.StatusCheckedOut); err != nil {
		t.Fatalf("check out: %v", err)
	}
	db.First(&r, room.ID)
	db.First(&g, guest.ID)
	if r.Status != models.RoomAvailable {
		t.Errorf("room status = %s, want %s", r.Status, models.RoomAvailable)
	}
	if g.CheckInStatus {
		t.Error("guest check-in flag not cleared")
	}
}

func TestCheckoutKeepsGuestFlaggedWhileOtherStayActive(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	first := createRoom(t, db, "101", 100)
	second := createRoom(t, db, "102", 150)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	var stays []*models.Reservation
	for _, room := range []models.Room{first, second} {
		res, err := svc.Create(CreateReservationInput{
			GuestID:    guest.ID,
			RoomNumber: room.RoomNumber,
			CheckIn:    mustDate(t, "2025-06-01"),
			CheckOut:   mustDate(t, "2025-06-04"),
		})
		if err != nil {
			t.Fatalf("create reservation on %s: %v", room.RoomNumber, err)
		}
		if _, err := svc.SetStatus(res.ID, models.StatusCheckedIn); err != nil {
			t.Fatalf("check in %s: %v", room.RoomNumber, err)
		}
		stays = append(stays, res)
	}

	// Leaving one room must not unflag a guest still checked in elsewhere.
	if _, err := svc.SetStatus(stays[0].ID, models.StatusCheckedOut); err != nil {
		t.Fatalf("check out first stay: %v", err)
	}
	var g models.Guest
	db.First(&g, guest.ID)
	if !g.CheckInStatus {
		t.Error("guest flag cleared while second stay is still checked in")
	}

	if _, err := svc.SetStatus(stays[1].ID, models.StatusCheckedOut); err != nil {
		t.Fatalf("check out second stay: %v", err)
	}
	db.First(&g, guest.ID)
	if g.CheckInStatus {
		t.Error("guest flag not cleared after last checkout")
	}
}

func TestIdempotencyKeyReplayReturnsOriginal(t *testing.T) {
	db := openTestDB(t)
	svc := NewReservationService(db)
	room := createRoom(t, db, "101", 100)
	guest := createGuest(t, db, "Asha Rao", "asha@example.com")

	in := CreateReservationInput{
		GuestID:        guest.ID,
		RoomNumber:     room.RoomNumber,
		CheckIn:        mustDate(t, "2025-06-01"),
		CheckOut:       mustDate(t, "2025-06-04"),
		IdempotencyKey: "retry-abc-123",
	}
	first, err := svc.Create(in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(in)
	if err != nil {
		t.Fatalf("replayed create: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("replay created a new reservation %d, want %d", second.ID, first.ID)
	}

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	if count != 1 {
		t.Errorf("reservation count = %d, want 1", count)
	}
}
