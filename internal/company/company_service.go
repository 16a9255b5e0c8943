package company

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	companyerrors "go-outtime/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	morningPreviewText = "Good morning! Ready to start the day?\n\n[Start work] [I'll be late] [Sick / vacation]"
	eveningPreviewText = "The working day is almost over. Tell us:\n\n1. What did you do today?\n2. Any blockers?\n\nSend your report below."
)

var workingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetSettings(ctx context.Context, companyID string) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, companyID string, req UpdateSettingsRequest) (SettingsResponse, error)
	NotificationPreview(ctx context.Context, companyID string) (NotificationPreviewResponse, error)
}

type service struct {
	repo       Repository
	lateOffset time.Duration
	logger     *zap.Logger
}

func NewService(repo Repository, lateOffset time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	if lateOffset <= 0 {
		lateOffset = time.Hour
	}
	return &service{repo: repo, lateOffset: lateOffset, logger: l}
}

func (s *service) load(ctx context.Context, companyID string) (*Company, error) {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) GetSettings(ctx context.Context, companyID string) (SettingsResponse, error) {
	c, err := s.load(ctx, companyID)
	if err != nil {
		return SettingsResponse{}, err
	}
	return mapToSettings(c), nil
}

func (s *service) UpdateSettings(ctx context.Context, companyID string, req UpdateSettingsRequest) (SettingsResponse, error) {
	c, err := s.load(ctx, companyID)
	if err != nil {
		return SettingsResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
			return SettingsResponse{}, companyerrors.ErrInvalidName
		}
		c.Name = name
	}
	if req.MorningNotificationTime != nil {
		v, err := NormalizeClock(*req.MorningNotificationTime)
		if err != nil {
			return SettingsResponse{}, companyerrors.ErrInvalidTimeFormat
		}
		c.MorningNotificationTime = v
	}
	if req.EveningNotificationTime != nil {
		v, err := NormalizeClock(*req.EveningNotificationTime)
		if err != nil {
			return SettingsResponse{}, companyerrors.ErrInvalidTimeFormat
		}
		c.EveningNotificationTime = v
	}
	if req.Timezone != nil {
		tz := strings.TrimSpace(*req.Timezone)
		if _, err := time.LoadLocation(tz); err != nil || tz == "" {
			return SettingsResponse{}, companyerrors.ErrInvalidTimezone
		}
		c.Timezone = tz
	}

	if c.MorningNotificationTime == c.EveningNotificationTime {
		return SettingsResponse{}, companyerrors.ErrSameNotificationTimes
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update settings failed", zap.String("company_id", companyID), zap.Error(err))
		return SettingsResponse{}, err
	}

	s.logger.Info("settings updated",
		zap.String("company_id", companyID),
		zap.String("morning", c.MorningNotificationTime),
		zap.String("evening", c.EveningNotificationTime),
		zap.String("timezone", c.Timezone),
	)
	return mapToSettings(c), nil
}

func (s *service) NotificationPreview(ctx context.Context, companyID string) (NotificationPreviewResponse, error) {
	c, err := s.load(ctx, companyID)
	if err != nil {
		return NotificationPreviewResponse{}, err
	}

	// empty when the reminder would land on the next day; it is not sent then
	lateAt := ""
	if offset, err := ClockOffset(c.MorningNotificationTime); err == nil && offset+s.lateOffset < 24*time.Hour {
		lateAt = time.Time{}.Add(offset + s.lateOffset).Format("15:04:05")
	}

	return NotificationPreviewResponse{
		Morning: NotificationPreview{
			Time:        c.MorningNotificationTime,
			Message:     morningPreviewText,
			Description: "Daily morning prompt to mark the start of work",
		},
		Evening: NotificationPreview{
			Time:        c.EveningNotificationTime,
			Message:     eveningPreviewText,
			Description: "Daily evening prompt to submit the report",
		},
		LateReminderAt: lateAt,
		Timezone:       c.Timezone,
		WorkingDays:    workingDays,
	}, nil
}

func mapToSettings(c *Company) SettingsResponse {
	return SettingsResponse{
		ID:                      c.ID.String(),
		Name:                    c.Name,
		MorningNotificationTime: c.MorningNotificationTime,
		EveningNotificationTime: c.EveningNotificationTime,
		Timezone:                c.Timezone,
	}
}
