package services

import (
	"sync"
	"testing"
	"time"

	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ReservationRequest {
	return ReservationRequest{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "+254700000000",
		Message:           "Looking forward to it",
		PreferredDate:     "2024-01-01",
		PreferredTimeSlot: "10:00 - 11:00",
	}
}

func newReservationService(settings *models.BookingSettings) (*ReservationService, *memBookingLedger) {
	ledger := &memBookingLedger{}
	svc := NewReservationService(&memSettingsStore{settings: settings}, ledger, time.UTC)
	return svc, ledger
}

func TestReserveSystemUnavailable(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		svc, _ := newReservationService(nil)
		_, err := svc.Reserve(validRequest())
		assert.ErrorIs(t, err, ErrSystemUnavailable)
	})

	t.Run("inactive", func(t *testing.T) {
		inactive := mondaySettings(2)
		inactive.IsActive = false
		svc, _ := newReservationService(inactive)

		// Inactive wins over every later rejection, even with a bogus request.
		req := validRequest()
		req.Name = ""
		req.PreferredTimeSlot = "nope"
		_, err := svc.Reserve(req)
		assert.ErrorIs(t, err, ErrSystemUnavailable)
	})
}

func TestReserveInvalidSlot(t *testing.T) {
	svc, _ := newReservationService(mondaySettings(2))

	tests := []struct {
		name   string
		mutate func(*ReservationRequest)
	}{
		{"weekday not configured", func(r *ReservationRequest) { r.PreferredDate = "2024-01-02" }}, // a Tuesday
		{"unknown slot label", func(r *ReservationRequest) { r.PreferredTimeSlot = "12:00 - 13:00" }},
		{"malformed date", func(r *ReservationRequest) { r.PreferredDate = "01/01/2024" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Reserve(req)
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
}

func TestReserveInvalidSlotBeatsMissingFields(t *testing.T) {
	svc, _ := newReservationService(mondaySettings(2))

	req := validRequest()
	req.Name = ""
	req.PreferredDate = "2024-01-02"
	_, err := svc.Reserve(req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestReserveRequiredFields(t *testing.T) {
	svc, _ := newReservationService(mondaySettings(2))

	tests := []struct {
		name   string
		mutate func(*ReservationRequest)
	}{
		{"missing name", func(r *ReservationRequest) { r.Name = "  " }},
		{"missing email", func(r *ReservationRequest) { r.Email = "" }},
		{"missing phone", func(r *ReservationRequest) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Reserve(req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestReserveSuccess(t *testing.T) {
	svc, ledger := newReservationService(mondaySettings(2))

	req := validRequest()
	req.Name = "  Jane Doe  "
	booking, err := svc.Reserve(req)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", booking.Name)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, "2024-01-01", booking.PreferredDate)
	assert.Equal(t, "10:00 - 11:00", booking.PreferredTimeSlot)

	count, err := ledger.ActiveCount("2024-01-01", "10:00 - 11:00")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestReserveCapacityBoundary(t *testing.T) {
	svc, ledger := newReservationService(mondaySettings(1))

	first, err := svc.Reserve(validRequest())
	require.NoError(t, err)

	_, err = svc.Reserve(validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)

	// Cancelling the holder frees the spot.
	ledger.cancel(first.ID)
	second, err := svc.Reserve(validRequest())
	require.NoError(t, err)

	// So does hard deletion.
	ledger.remove(second.ID)
	_, err = svc.Reserve(validRequest())
	require.NoError(t, err)
}

func TestReserveConcurrentSingleWinner(t *testing.T) {
	svc, _ := newReservationService(mondaySettings(1))

	const attempts = 25
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, full int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrSlotFull):
			full++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, full)
}

func TestReserveNeverOverbooks(t *testing.T) {
	svc, ledger := newReservationService(mondaySettings(3))

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Reserve(validRequest())
		}()
	}
	wg.Wait()

	count, err := ledger.ActiveCount("2024-01-01", "10:00 - 11:00")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
