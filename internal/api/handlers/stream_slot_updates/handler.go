package stream_slot_updates

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
)

const (
	msgInvalidMerchantID  = "некорректный ID мастера"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTypes       = "некорректный список типов событий"
	msgStreamNotSupported = "потоковая передача не поддерживается"

	// DefaultHeartbeat интервал комментариев-пингов, удерживающих соединение через прокси
	DefaultHeartbeat = 15 * time.Second
)

type Handler struct {
	feed      SlotFeed
	heartbeat time.Duration
	logger    Logger
}

func NewHandler(feed SlotFeed, heartbeat time.Duration, logger Logger) *Handler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &Handler{
		feed:      feed,
		heartbeat: heartbeat,
		logger:    logger,
	}
}

// Handle GET /api/v1/merchants/{merchantId}/slots/stream?date=&types=
// Отдает события изменения слотов мастера как server-sent events до отключения клиента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	merchantID, err := handlers.PathID(r, "merchantId")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/slots/stream - Invalid merchant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMerchantID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/slots/stream - Invalid date: merchant_id=%d", merchantID)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	filter, err := ToEventFilter(merchantID, date, r.URL.Query().Get("types"))
	if err != nil {
		h.logger.Warn("GET /merchants/{id}/slots/stream - Invalid types: merchant_id=%d, error=%v", merchantID, err)
		handlers.RespondBadRequest(w, msgInvalidTypes)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /merchants/{id}/slots/stream - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusNotImplemented, msgStreamNotSupported)
		return
	}

	ctx := r.Context()
	events := h.feed.Subscribe(ctx, filter)

	w.Header().Set("Content-Type", sse.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /merchants/{id}/slots/stream - Client subscribed: merchant_id=%d", merchantID)

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	sent := 0
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("GET /merchants/{id}/slots/stream - Client disconnected: merchant_id=%d, events_sent=%d", merchantID, sent)
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case event, ok := <-events:
			if !ok {
				return
			}
			err := sse.Encode(w, sse.Event{
				Id:    event.ID,
				Event: string(event.Type),
				Data:  event,
			})
			if err != nil {
				h.logger.Warn("GET /merchants/{id}/slots/stream - Failed to write event: merchant_id=%d, error=%v", merchantID, err)
				return
			}
			flusher.Flush()
			sent++
		}
	}
}
