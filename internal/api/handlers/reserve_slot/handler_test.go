package reserve_slot_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers/reserve_slot"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
	reserveSlot "github.com/m04kA/SMC-SlotService/internal/usecase/reserve_slot"
)

type stubUseCase struct {
	err     error
	lastReq *reserveSlot.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *reserveSlot.Request) (*reserveSlot.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &reserveSlot.Response{Slot: &domain.Slot{
		ID:         req.SlotID,
		MerchantID: 42,
		Date:       "2025-10-15",
		StartTime:  "09:00",
		EndTime:    "09:30",
		IsBooked:   true,
	}}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		body       string
		err        error
		wantStatus int
	}{
		{name: "reserved", userID: 1001, body: `{"slotId": 5}`, wantStatus: http.StatusOK},
		{name: "missing user", body: `{"slotId": 5}`, wantStatus: http.StatusUnauthorized},
		{name: "bad body", userID: 1001, body: `{"slot": 5}`, wantStatus: http.StatusBadRequest},
		{name: "invalid id", userID: 1001, body: `{"slotId": 0}`, err: reserveSlot.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not found", userID: 1001, body: `{"slotId": 5}`, err: reserveSlot.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "already booked", userID: 1001, body: `{"slotId": 5}`, err: reserveSlot.ErrSlotAlreadyBooked, wantStatus: http.StatusConflict},
		{
			name:       "store down",
			userID:     1001,
			body:       `{"slotId": 5}`,
			err:        fmt.Errorf("%w: mark booked: connection refused", reserveSlot.ErrStoreUnavailable),
			wantStatus: http.StatusServiceUnavailable,
		},
		{name: "unexpected", userID: 1001, body: `{"slotId": 5}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			h := reserve_slot.NewHandler(uc, &testfixtures.Logger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/reserve", strings.NewReader(tt.body))
			if tt.userID != 0 {
				req = req.WithContext(middleware.WithUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_ResponseBody(t *testing.T) {
	uc := &stubUseCase{}
	h := reserve_slot.NewHandler(uc, &testfixtures.Logger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/reserve", strings.NewReader(`{"slotId": 5}`))
	req = req.WithContext(middleware.WithUserID(req.Context(), 1001))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1001), uc.lastReq.UserID)

	var body reserve_slot.ReserveSlotResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(5), body.Slot.ID)
	assert.False(t, body.Slot.Available)
	assert.Equal(t, "09:00 - 09:30", body.Slot.Time)
}
