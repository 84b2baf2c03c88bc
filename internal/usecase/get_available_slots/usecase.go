package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/service/availability"
	"github.com/m04kA/SMC-SlotService/internal/usecase/ensure_slots"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	ensurer      SlotEnsurer
	availability AvailabilityIndex
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ensurer SlotEnsurer, availability AvailabilityIndex, logger Logger) *UseCase {
	return &UseCase{
		ensurer:      ensurer,
		availability: availability,
		logger:       logger,
	}
}

// Execute гарантирует наличие слотов на дату и возвращает свободные.
//
// Алгоритм:
// 1. Генерирует слоты дня, если их еще нет (существующий день не меняется)
// 2. Читает свободные слоты из хранилища
// 3. При необходимости группирует их по часу начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, merchant=%d, date=%s, durations=%v",
		req.UserID, req.MerchantID, req.Date, req.ServiceDurations)

	_, err := uc.ensurer.Execute(ctx, &ensure_slots.Request{
		MerchantID:       req.MerchantID,
		Date:             req.Date,
		ServiceDurations: req.ServiceDurations,
	})
	if err != nil {
		return nil, mapEnsureError(err)
	}

	slots, err := uc.availability.ListAvailable(ctx, req.MerchantID, req.Date)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	resp := &Response{
		MerchantID: req.MerchantID,
		Date:       req.Date,
		Slots:      slots,
	}
	if req.GroupByHour {
		resp.Groups = uc.availability.GroupByHour(slots)
	}

	uc.logger.Info("GetAvailableSlots: found %d available slots for merchant=%d, date=%s",
		len(slots), req.MerchantID, req.Date)
	return resp, nil
}

func mapEnsureError(err error) error {
	switch {
	case errors.Is(err, ensure_slots.ErrInvalidDurationSet):
		return fmt.Errorf("%w: %v", ErrInvalidDurationSet, err)
	case errors.Is(err, ensure_slots.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
