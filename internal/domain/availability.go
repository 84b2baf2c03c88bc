package domain

import (
	"sort"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SlotCounts counts the slots of one date by state
type SlotCounts struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

// Total returns the number of slots of the date
func (c SlotCounts) Total() int {
	return c.Available + c.Booked
}

// AvailabilitySummary maps a date to its slot counts. Dates without slots are absent.
type AvailabilitySummary map[types.Date]SlotCounts

// Dates returns the summary dates in ascending order
func (s AvailabilitySummary) Dates() []types.Date {
	dates := make([]types.Date, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// HourGroup is a presentation bucket of slots starting within the same hour
type HourGroup struct {
	Hour         int
	Label        string // "09"
	DisplayLabel string // "9 AM"
	Slots        []*Slot
}
