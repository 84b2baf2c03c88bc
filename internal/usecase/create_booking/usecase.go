package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
)

// UseCase use case записи бронирования после успешной резервации слота
type UseCase struct {
	slotStore   SlotStore
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotStore SlotStore,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotStore:   slotStore,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute записывает бронирование для слота, который уже занят резервацией этого клиента.
// Проверка занятости здесь защитная: от двойного бронирования защищает условный UPDATE слота,
// а от второй записи на тот же слот частичный уникальный индекс bookings(slot_id).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, merchant=%d, slot=%d, service=%q",
		req.CustomerID, req.MerchantID, req.SlotID, req.ServiceName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверки и вставка в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Слот должен существовать и принадлежать мастеру
		slot, err := uc.slotStore.GetByID(txCtx, req.SlotID)
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot=%d not found", req.SlotID)
			return fmt.Errorf("%w: slot %d does not exist", ErrDependentReservationMissing, req.SlotID)
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slot=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: get slot: %v", ErrStoreUnavailable, err)
		}

		if slot.MerchantID != req.MerchantID {
			uc.logger.Warn("CreateBooking: slot=%d belongs to merchant=%d, not %d", slot.ID, slot.MerchantID, req.MerchantID)
			return fmt.Errorf("%w: slot does not belong to merchant", ErrInvalidInput)
		}

		// 2.2. Слот должен быть занят резервацией этого же клиента
		if !slot.IsBooked {
			uc.logger.Warn("CreateBooking: slot=%d is not reserved", slot.ID)
			return fmt.Errorf("%w: slot %d is not reserved", ErrDependentReservationMissing, slot.ID)
		}
		if !slot.IsReservedBy(req.CustomerID) {
			uc.logger.Warn("CreateBooking: slot=%d is reserved by another customer, not %d", slot.ID, req.CustomerID)
			return fmt.Errorf("%w: slot %d is reserved by another customer", ErrDependentReservationMissing, slot.ID)
		}

		// 2.3. И еще не закреплен за другим бронированием
		existing, err := uc.bookingRepo.GetActiveBySlotID(txCtx, slot.ID)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to get active booking for slot=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: get active booking: %v", ErrStoreUnavailable, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateBooking: slot=%d already has active booking id=%d", slot.ID, existing.ID)
			return fmt.Errorf("%w: slot %d already has a booking", ErrDependentReservationMissing, slot.ID)
		}

		// 2.4. Денормализуем дату и время из слота
		duration := slot.DurationMinutes()
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}

		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			MerchantID:      req.MerchantID,
			SlotID:          slot.ID,
			BookingDate:     slot.Date,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			ServiceName:     strings.TrimSpace(req.ServiceName),
			ServicePrice:    req.ServicePrice,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if errors.Is(err, bookingRepo.ErrSlotAlreadyHasBooking) {
			uc.logger.Warn("CreateBooking: concurrent booking for slot=%d", slot.ID)
			return fmt.Errorf("%w: slot %d already has a booking", ErrDependentReservationMissing, slot.ID)
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: create booking: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for slot=%d", result.ID, result.SlotID)
	return &Response{Booking: result}, nil
}
