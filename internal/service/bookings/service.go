package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SlotService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	slotStore   SlotStore
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotStore SlotStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotStore:   slotStore,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование могут только его клиент и мастер
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента (сначала новые)
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	if req.UserID != req.CustomerID {
		s.logger.Warn("GetCustomerBookings: user=%d cannot read bookings of customer=%d", req.UserID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetMerchantBookings получает бронирования мастера с фильтрацией по периоду и статусу
// Доступно только самому мастеру
func (s *Service) GetMerchantBookings(ctx context.Context, req *models.GetMerchantBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetMerchantBookings: fetching bookings for merchant=%d, user=%d", req.MerchantID, req.UserID)
	if req.StartDate != nil || req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%v to %v", derefOr(req.StartDate, "-"), derefOr(req.EndDate, "-"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info("%s", logMsg)

	if req.UserID != req.MerchantID {
		s.logger.Warn("GetMerchantBookings: user=%d is not merchant=%d", req.UserID, req.MerchantID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetMerchantBookings: invalid filter for merchant=%d: %v", req.MerchantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByMerchantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetMerchantBookings: repository error for merchant=%d: %v", req.MerchantID, err)
		return nil, fmt.Errorf("%w: GetMerchantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMerchantBookings: successfully fetched %d bookings for merchant=%d", len(bookings), req.MerchantID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в confirmed или cancelled
// Клиент может только отменить, мастер может подтвердить или отменить.
// Повторная установка того же статуса ничего не меняет; отмененное бронирование не восстанавливается.
// Запись статуса условная: если статус изменился после чтения, возвращается ErrInvalidTransition.
// При отмене с ReleaseSlot слот освобождается в той же транзакции.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d, releaseSlot=%t",
		bookingID, req.Status, req.UserID, req.ReleaseSlot)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil || !newStatus.IsUpdateTarget() {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: status must be confirmed or cancelled", ErrInvalidInput)
	}

	var result *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}

		// Проверяем права доступа
		if err := s.checkStatusAccess(booking, req.UserID, newStatus); err != nil {
			s.logger.Warn("UpdateStatus: user=%d cannot set status=%s on booking id=%d", req.UserID, newStatus, bookingID)
			return err
		}

		if booking.Status == newStatus {
			s.logger.Info("UpdateStatus: booking id=%d already has status=%s", bookingID, newStatus)
			result = booking
			return nil
		}

		if booking.IsCancelled() {
			s.logger.Warn("UpdateStatus: booking id=%d is cancelled", bookingID)
			return ErrInvalidTransition
		}

		// Условный UPDATE по прочитанному статусу: конкурентная отмена не перезаписывается
		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, booking.Status, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
				return ErrBookingNotFound
			}
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				s.logger.Warn("UpdateStatus: booking id=%d changed status concurrently, expected=%s", bookingID, booking.Status)
				return fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if newStatus == domain.StatusCancelled && req.ReleaseSlot {
			if err := s.releaseSlot(txCtx, booking.SlotID); err != nil {
				return err
			}
		}

		result, err = s.getBooking(txCtx, "UpdateStatus", bookingID)
		return err
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d has status=%s", bookingID, result.Status)
	return models.FromDomainBooking(result), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// releaseSlot возвращает слот в свободные условным UPDATE.
// Уже свободный слот не считается ошибкой.
func (s *Service) releaseSlot(ctx context.Context, slotID int64) error {
	_, err := s.slotStore.MarkAvailable(ctx, slotID)
	if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
		s.logger.Warn("UpdateStatus: slot id=%d was not booked, nothing to release", slotID)
		return nil
	}
	if err != nil {
		s.logger.Error("UpdateStatus: failed to release slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: UpdateStatus - release slot: %v", ErrInternal, err)
	}
	return nil
}

// checkUserAccess проверяет, что пользователь клиент или мастер бронирования
func (s *Service) checkUserAccess(booking *domain.Booking, userID int64) error {
	if !booking.BelongsTo(userID) {
		return ErrAccessDenied
	}
	return nil
}

// checkStatusAccess проверяет право сменить статус: подтверждает только мастер
func (s *Service) checkStatusAccess(booking *domain.Booking, userID int64, status domain.BookingStatus) error {
	if booking.MerchantID == userID {
		return nil
	}
	if booking.CustomerID == userID && status == domain.StatusCancelled {
		return nil
	}
	return ErrAccessDenied
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
