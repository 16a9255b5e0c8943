package notification

import "context"

type Kind string

const (
	KindMorning Kind = "morning"
	KindEvening Kind = "evening"
	KindLate    Kind = "late"
	KindCleanup Kind = "cleanup"
)

// Messenger pushes scheduler prompts to an employee's chat.
//
//go:generate mockgen -source=notification_messenger.go -destination=mock/notification_messenger_mock.go -package=mock
type Messenger interface {
	SendMorningPrompt(ctx context.Context, telegramID int64, name string) error
	SendEveningPrompt(ctx context.Context, telegramID int64, name string) error
	SendLateReminder(ctx context.Context, telegramID int64, name string) error
}
