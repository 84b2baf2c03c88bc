package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

func TestParseBookingStatus(t *testing.T) {
	s, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, s)

	s, ok = ParseBookingStatus("upcoming")
	assert.True(t, ok)
	assert.Equal(t, StatusPending, s)

	_, ok = ParseBookingStatus("done")
	assert.False(t, ok)

	assert.True(t, StatusCancelled.IsUpdateTarget())
	assert.False(t, StatusPending.IsUpdateTarget())
}

func TestBooking_BelongsTo(t *testing.T) {
	b := &Booking{CustomerID: 1001, MerchantID: 42, Status: StatusPending}

	assert.True(t, b.BelongsTo(1001))
	assert.True(t, b.BelongsTo(42))
	assert.False(t, b.BelongsTo(7))
	assert.True(t, b.IsActive())

	b.Status = StatusCancelled
	assert.True(t, b.IsCancelled())
	assert.False(t, b.IsActive())
}

func TestSlotEventFilter_Matches(t *testing.T) {
	event := SlotEvent{Type: SlotBooked, MerchantID: 42, Date: "2025-10-15"}

	tests := []struct {
		name   string
		filter SlotEventFilter
		want   bool
	}{
		{name: "empty filter", filter: SlotEventFilter{}, want: true},
		{name: "same merchant", filter: SlotEventFilter{MerchantID: 42}, want: true},
		{name: "other merchant", filter: SlotEventFilter{MerchantID: 43}, want: false},
		{name: "other date", filter: SlotEventFilter{MerchantID: 42, Date: "2025-10-16"}, want: false},
		{name: "type listed", filter: SlotEventFilter{Types: []SlotEventType{SlotCreated, SlotBooked}}, want: true},
		{name: "type not listed", filter: SlotEventFilter{Types: []SlotEventType{SlotReleased}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(event))
		})
	}
}

func TestSlot_Helpers(t *testing.T) {
	s := &Slot{StartTime: "09:30", EndTime: "10:15"}

	assert.Equal(t, "09:30-10:15", s.RangeKey())
	assert.Equal(t, 45, s.DurationMinutes())
	assert.True(t, s.IsAvailable())

	hours := &WorkingHours{StartTime: "09:00", EndTime: "17:00"}
	assert.Equal(t, 480, hours.LengthMinutes())
}

func TestAvailabilitySummary_Dates(t *testing.T) {
	summary := AvailabilitySummary{
		"2025-10-17": {Available: 1},
		"2025-10-15": {Available: 2, Booked: 1},
	}

	assert.Equal(t, []types.Date{"2025-10-15", "2025-10-17"}, summary.Dates())
	assert.Equal(t, 3, summary["2025-10-15"].Total())
}
