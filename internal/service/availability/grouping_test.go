package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

func TestGroupByHour(t *testing.T) {
	slot := func(start, end string) *domain.Slot {
		return &domain.Slot{StartTime: types.TimeString(start), EndTime: types.TimeString(end)}
	}

	groups := GroupByHour([]*domain.Slot{
		slot("13:30", "14:00"),
		slot("09:00", "09:30"),
		slot("09:30", "10:00"),
		slot("12:00", "12:30"),
		slot("00:15", "00:45"),
	})

	require.Len(t, groups, 4)
	assert.Equal(t, []int{0, 9, 12, 13}, []int{groups[0].Hour, groups[1].Hour, groups[2].Hour, groups[3].Hour})

	assert.Equal(t, "09", groups[1].Label)
	assert.Equal(t, "9 AM", groups[1].DisplayLabel)
	require.Len(t, groups[1].Slots, 2)
	assert.Equal(t, types.TimeString("09:00"), groups[1].Slots[0].StartTime)

	assert.Equal(t, "12 AM", groups[0].DisplayLabel)
	assert.Equal(t, "12 PM", groups[2].DisplayLabel)
	assert.Equal(t, "1 PM", groups[3].DisplayLabel)

	assert.Empty(t, GroupByHour(nil))
}
