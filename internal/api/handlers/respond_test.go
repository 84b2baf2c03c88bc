package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondConflict(rec, "слот уже забронирован")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, "слот уже забронирован", body.Message)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		SlotID int64 `json:"slotId"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"slotId": 7}`},
		{name: "unknown field", body: `{"slotId": 7, "extra": true}`, wantErr: true},
		{name: "trailing object", body: `{"slotId": 7}{"slotId": 8}`, wantErr: true},
		{name: "not json", body: `slotId=7`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := handlers.DecodeJSON(req, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), p.SlotID)
		})
	}
}

func TestPathIDAndQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?date=2025-10-15&startTime=9:30&bad=15.10.2025", nil)
	req = mux.SetURLVars(req, map[string]string{"merchantId": "42", "bookingId": "-1"})

	id, err := handlers.PathID(req, "merchantId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = handlers.PathID(req, "bookingId")
	assert.ErrorIs(t, err, handlers.ErrInvalidParam)

	date, err := handlers.QueryDate(req, "date")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, types.Date("2025-10-15"), *date)

	_, err = handlers.QueryDate(req, "bad")
	assert.ErrorIs(t, err, handlers.ErrInvalidParam)

	missing, err := handlers.QueryDate(req, "from")
	require.NoError(t, err)
	assert.Nil(t, missing)

	start, err := handlers.QueryTime(req, "startTime")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), *start)
}

func TestFromDomainSlot(t *testing.T) {
	resp := handlers.FromDomainSlot(&domain.Slot{
		ID:         3,
		MerchantID: 42,
		Date:       "2025-10-15",
		StartTime:  "09:00",
		EndTime:    "09:30",
		IsBooked:   true,
	})

	assert.Equal(t, "09:00 - 09:30", resp.Time)
	assert.False(t, resp.Available)
	assert.Equal(t, "2025-10-15", resp.Date)
}
