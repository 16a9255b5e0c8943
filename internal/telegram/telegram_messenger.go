package telegram

import (
	"context"
	"fmt"

	"go-outtime/internal/notification"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of *tgbotapi.BotAPI the bot and messenger use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

var _ notification.Messenger = (*Messenger)(nil)

// Messenger renders scheduler prompts and onboarding messages.
type Messenger struct {
	sender Sender
	logger *zap.Logger
}

func NewMessenger(sender Sender, logger ...*zap.Logger) *Messenger {
	l := zap.L().Named("telegram.messenger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("telegram.messenger")
	}
	return &Messenger{sender: sender, logger: l}
}

func (m *Messenger) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := m.sender.Send(msg); err != nil {
		return fmt.Errorf("telegram send to %d: %w", msg.ChatID, err)
	}
	return nil
}

func (m *Messenger) SendMorningPrompt(ctx context.Context, telegramID int64, name string) error {
	msg := tgbotapi.NewMessage(telegramID, fmt.Sprintf("🌅 Good morning, %s!\n\nAre you starting work today?", name))
	msg.ReplyMarkup = MorningKeyboard()
	return m.send(ctx, msg)
}

func (m *Messenger) SendEveningPrompt(ctx context.Context, telegramID int64, name string) error {
	msg := tgbotapi.NewMessage(telegramID, fmt.Sprintf(
		"🌆 Good evening, %s!\n\nThe working day is ending. Please send a short report on what you did today.", name))
	msg.ReplyMarkup = EveningKeyboard()
	return m.send(ctx, msg)
}

func (m *Messenger) SendLateReminder(ctx context.Context, telegramID int64, _ string) error {
	msg := tgbotapi.NewMessage(telegramID,
		"⏰ Looks like you have not checked in yet. Is everything OK?\n\nUse the buttons below to check in:")
	msg.ReplyMarkup = MorningKeyboard()
	return m.send(ctx, msg)
}

// Onboarding is the schedule summary sent after registration.
type Onboarding struct {
	TelegramID  int64
	Name        string
	CompanyName string
	MorningTime string
	EveningTime string
	Timezone    string
}

func (m *Messenger) SendOnboarding(ctx context.Context, o Onboarding) error {
	text := fmt.Sprintf(
		"🎉 %s, you are now part of %s.\n\n"+
			"Every working day I will:\n"+
			"🌅 ask at %s whether you are starting work\n"+
			"🌆 ask at %s for a short report\n\n"+
			"Times are in %s. Send /help to see what else I can do.",
		o.Name, o.CompanyName, shortTime(o.MorningTime), shortTime(o.EveningTime), o.Timezone,
	)
	return m.send(ctx, tgbotapi.NewMessage(o.TelegramID, text))
}

// shortTime turns HH:MM:SS into HH:MM.
func shortTime(v string) string {
	if len(v) == len("15:04:05") {
		return v[:5]
	}
	return v
}
