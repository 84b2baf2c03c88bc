package workinghours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Service сервис рабочих часов мастеров
type Service struct {
	repo     WorkingHoursRepository
	defaults domain.WorkingHours
	logger   Logger
}

// NewService создает новый экземпляр сервиса.
// defaults глобальное окно из конфигурации, используется для мастеров без собственных часов.
func NewService(repo WorkingHoursRepository, defaults domain.WorkingHours, logger Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// Get возвращает рабочие часы мастера или глобальные по умолчанию (IsDefault = true)
func (s *Service) Get(ctx context.Context, merchantID int64) (*domain.WorkingHours, error) {
	if merchantID <= 0 {
		return nil, fmt.Errorf("%w: merchantID must be positive", ErrInvalidInput)
	}

	hours, err := s.repo.GetByMerchantID(ctx, merchantID)
	if errors.Is(err, hoursRepo.ErrWorkingHoursNotFound) {
		fallback := s.defaults
		fallback.MerchantID = merchantID
		fallback.IsDefault = true
		return &fallback, nil
	}
	if err != nil {
		s.logger.Error("Get: repository error for merchant=%d: %v", merchantID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return hours, nil
}

// Update сохраняет рабочие часы мастера. Уже сгенерированные дни не пересчитываются.
// Доступно только самому мастеру.
func (s *Service) Update(ctx context.Context, req *UpdateRequest) (*domain.WorkingHours, error) {
	s.logger.Info("Update: merchant=%d, window=%s-%s, step=%d by user=%d",
		req.MerchantID, req.StartTime, req.EndTime, req.StepMinutes, req.UserID)

	if req.UserID != req.MerchantID {
		s.logger.Warn("Update: user=%d is not merchant=%d", req.UserID, req.MerchantID)
		return nil, ErrAccessDenied
	}

	hours, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, hours)
	if err != nil {
		s.logger.Error("Update: repository error for merchant=%d: %v", req.MerchantID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: saved working hours for merchant=%d", req.MerchantID)
	return saved, nil
}

func (s *Service) validate(req *UpdateRequest) (*domain.WorkingHours, error) {
	if req.MerchantID <= 0 {
		return nil, fmt.Errorf("%w: merchantID must be positive", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	step := req.StepMinutes
	if step == 0 {
		step = s.defaults.StepMinutes
	}
	if step < domain.MinStepMinutes || step > domain.MaxStepMinutes {
		return nil, fmt.Errorf("%w: stepMinutes must be in [%d, %d]", ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}

	return &domain.WorkingHours{
		MerchantID:  req.MerchantID,
		StartTime:   start,
		EndTime:     end,
		StepMinutes: step,
	}, nil
}
