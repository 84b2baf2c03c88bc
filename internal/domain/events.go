package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SlotEventType is the kind of change applied to a slot
type SlotEventType string

const (
	SlotCreated  SlotEventType = "slot.created"
	SlotBooked   SlotEventType = "slot.booked"
	SlotReleased SlotEventType = "slot.released"
)

// SlotEvent is a change-feed record emitted after a successful slot mutation
type SlotEvent struct {
	ID         string        `json:"id"`
	Type       SlotEventType `json:"type"`
	MerchantID int64         `json:"merchantId"`
	Date       types.Date    `json:"date"`
	Slot       SlotSnapshot  `json:"slot"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// SlotSnapshot is the slot state carried by an event
type SlotSnapshot struct {
	ID        int64            `json:"id"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	IsBooked  bool             `json:"isBooked"`
}

// SlotEventFilter selects events for a subscriber. Zero fields match everything.
type SlotEventFilter struct {
	MerchantID int64
	Date       types.Date
	Types      []SlotEventType
}

// Matches reports whether the event passes the filter
func (f SlotEventFilter) Matches(e SlotEvent) bool {
	if f.MerchantID != 0 && f.MerchantID != e.MerchantID {
		return false
	}
	if !f.Date.IsZero() && f.Date != e.Date {
		return false
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == e.Type {
			return true
		}
	}
	return false
}
