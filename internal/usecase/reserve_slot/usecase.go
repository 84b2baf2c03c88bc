package reserve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/pkg/metrics"
)

// UseCase атомарное бронирование слота
type UseCase struct {
	slotStore SlotStore
	metrics   MetricsCollector
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotStore SlotStore, metrics MetricsCollector, logger Logger) *UseCase {
	return &UseCase{
		slotStore: slotStore,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute переводит слот из свободного в занятый одним условным UPDATE и закрепляет его за клиентом.
// Из N конкурентных вызовов для одного слота успешен ровно один, остальные получают ErrSlotAlreadyBooked.
// Чтение после неудачи нужно только для выбора ошибки и на корректность не влияет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: slot=%d, user=%d", req.SlotID, req.UserID)

	if req.SlotID <= 0 {
		uc.logger.Warn("ReserveSlot: invalid slot id=%d", req.SlotID)
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		uc.logger.Warn("ReserveSlot: invalid user id=%d", req.UserID)
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	slot, err := uc.slotStore.MarkBooked(ctx, req.SlotID, req.UserID)
	if err == nil {
		uc.observe(metrics.ReservationSuccess)
		uc.logger.Info("ReserveSlot: slot=%d reserved by user=%d", req.SlotID, req.UserID)
		return &Response{Slot: slot}, nil
	}

	if !errors.Is(err, slotRepo.ErrSlotNotAvailable) {
		uc.observe(metrics.ReservationError)
		uc.logger.Error("ReserveSlot: failed to mark slot=%d booked: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: mark booked: %v", ErrStoreUnavailable, err)
	}

	// Условие не выполнилось: слота нет или он уже занят
	_, err = uc.slotStore.GetByID(ctx, req.SlotID)
	switch {
	case errors.Is(err, slotRepo.ErrSlotNotFound):
		uc.observe(metrics.ReservationNotFound)
		uc.logger.Warn("ReserveSlot: slot=%d not found", req.SlotID)
		return nil, ErrSlotNotFound
	case err != nil:
		uc.observe(metrics.ReservationError)
		uc.logger.Error("ReserveSlot: failed to read slot=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: read slot: %v", ErrStoreUnavailable, err)
	default:
		uc.observe(metrics.ReservationAlreadyBooked)
		uc.logger.Warn("ReserveSlot: slot=%d is already booked", req.SlotID)
		return nil, ErrSlotAlreadyBooked
	}
}

// CheckAvailability ищет свободный слот мастера на дату и время.
// Результат рекомендательный: между проверкой и Execute слот может занять другой клиент.
func (uc *UseCase) CheckAvailability(ctx context.Context, req *CheckRequest) (*CheckResponse, error) {
	uc.logger.Info("CheckAvailability: merchant=%d, date=%s, start=%s", req.MerchantID, req.Date, req.StartTime)

	if err := validateCheckRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	filter := domain.ForDate(req.MerchantID, req.Date)
	filter.StartTime = &req.StartTime
	filter.EndTime = req.EndTime
	filter.OnlyAvailable = true
	filter.Limit = 1

	slots, err := uc.slotStore.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to read slots: %v", err)
		return nil, fmt.Errorf("%w: read slots: %v", ErrStoreUnavailable, err)
	}

	if len(slots) == 0 {
		return &CheckResponse{Available: false}, nil
	}

	id := slots[0].ID
	return &CheckResponse{Available: true, SlotID: &id}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveReservation(result)
	}
}
