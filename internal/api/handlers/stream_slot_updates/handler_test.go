package stream_slot_updates_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers/stream_slot_updates"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/infra/feed"
	"github.com/m04kA/SMC-SlotService/internal/testfixtures"
)

func TestHandler_StreamsMatchingEvents(t *testing.T) {
	logger := &testfixtures.Logger{}
	broker := feed.NewBroker(feed.DefaultSubscriberBuffer, logger)
	h := stream_slot_updates.NewHandler(broker, time.Minute, logger)

	router := mux.NewRouter()
	router.HandleFunc("/merchants/{merchantId}/slots/stream", h.Handle).Methods(http.MethodGet)
	server := httptest.NewServer(router)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		server.URL+"/merchants/42/slots/stream?date=2025-10-15&types=slot.booked", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	require.Eventually(t, func() bool { return broker.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

	base := domain.SlotEvent{MerchantID: 42, Date: "2025-10-15", Slot: domain.SlotSnapshot{ID: 7, StartTime: "09:00", EndTime: "09:30"}}

	skipped := base
	skipped.ID, skipped.Type = "evt-created", domain.SlotCreated
	broker.Notify(ctx, skipped)

	otherMerchant := base
	otherMerchant.ID, otherMerchant.Type, otherMerchant.MerchantID = "evt-other", domain.SlotBooked, 43
	broker.Notify(ctx, otherMerchant)

	booked := base
	booked.ID, booked.Type = "evt-booked", domain.SlotBooked
	booked.Slot.IsBooked = true
	broker.Notify(ctx, booked)

	lines := make(chan string, 16)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	var received []string
	timeout := time.After(2 * time.Second)
	for len(received) < 3 {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream closed early")
			if line != "" {
				received = append(received, line)
			}
		case <-timeout:
			t.Fatalf("no event received, got %v", received)
		}
	}

	assert.Equal(t, "id:evt-booked", received[0])
	assert.Equal(t, "event:slot.booked", received[1])
	assert.True(t, strings.HasPrefix(received[2], "data:"))
	assert.Contains(t, received[2], `"merchantId":42`)
	assert.Contains(t, received[2], `"isBooked":true`)

	cancel()
	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHandler_RejectsBadParams(t *testing.T) {
	logger := &testfixtures.Logger{}
	h := stream_slot_updates.NewHandler(feed.NewBroker(1, logger), 0, logger)

	tests := []struct {
		name   string
		target string
	}{
		{name: "bad date", target: "/?date=tomorrow"},
		{name: "unknown type", target: "/?types=slot.deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, tt.target, nil), map[string]string{"merchantId": "42"})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
