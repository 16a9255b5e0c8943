package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-outtime/internal/company"
	"go-outtime/internal/events"
	"go-outtime/internal/telegram"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type OnboardingSender interface {
	SendOnboarding(ctx context.Context, o telegram.Onboarding) error
}

// errPermanent marks a message that will never succeed; it is committed.
var errPermanent = errors.New("permanent")

// OnboardingHandler greets employees once their invite is redeemed.
type OnboardingHandler struct {
	companyRepo company.Repository
	sender      OnboardingSender
}

func NewOnboardingHandler(companyRepo company.Repository, sender OnboardingSender) *OnboardingHandler {
	return &OnboardingHandler{companyRepo: companyRepo, sender: sender}
}

func (h *OnboardingHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	var event events.EmployeeRegistered
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: decode: %v", errPermanent, err)
	}
	if event.EventType != "" && event.EventType != events.EmployeeRegisteredEvent {
		return nil
	}
	if event.TelegramID == 0 {
		return fmt.Errorf("%w: event without telegram id", errPermanent)
	}

	companyID, err := uuid.Parse(event.CompanyID)
	if err != nil {
		return fmt.Errorf("%w: company id %q", errPermanent, event.CompanyID)
	}
	c, err := h.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: company %s not found", errPermanent, event.CompanyID)
		}
		return err
	}

	return h.sender.SendOnboarding(ctx, telegram.Onboarding{
		TelegramID:  event.TelegramID,
		Name:        event.Name,
		CompanyName: c.Name,
		MorningTime: c.MorningNotificationTime,
		EveningTime: c.EveningNotificationTime,
		Timezone:    c.Timezone,
	})
}

// ConsumeEmployeeLifecycle commits after a successful handle. Undecodable or
// otherwise permanent failures are committed and skipped; transient ones are
// left for redelivery.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	handler *OnboardingHandler,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if err := handler.Handle(ctx, msg); err != nil {
			if !errors.Is(err, errPermanent) {
				log.Error("onboarding message failed",
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
			log.Warn("skipping employee lifecycle message",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}
		log.Debug("employee lifecycle message handled", zap.Int64("offset", msg.Offset))
	}
}

func NewReader(brokers []string, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.EmployeeLifecycleTopic,
	})
}
