package telegram

import (
	"go-outtime/internal/attendance"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback payloads carried by inline buttons.
const (
	ActionStartWork       = "start_work"
	ActionStartLate       = "start_late"
	ActionSickVacation    = "sick_vacation"
	ActionSickDay         = "sick_day"
	ActionVacationDay     = "vacation_day"
	ActionOtherAbsence    = "other_absence"
	ActionAlreadyFinished = "already_finished"
	ActionWorkingLonger   = "working_longer"
)

func MorningKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, starting", ActionStartWork),
			tgbotapi.NewInlineKeyboardButtonData("⏰ Running late", ActionStartLate),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏥 Sick / vacation", ActionSickVacation),
		),
	)
}

func EveningKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Send report", ActionAlreadyFinished),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💪 Working longer", ActionWorkingLonger),
		),
	)
}

// KeyboardFor picks the buttons that fit the employee's day: start options
// before the day begins, report options while working, none afterwards or
// on an absence day.
func KeyboardFor(today attendance.TodayStatus) *tgbotapi.InlineKeyboardMarkup {
	var m tgbotapi.InlineKeyboardMarkup
	switch {
	case !today.HasStarted:
		m = MorningKeyboard()
	case today.HasEnded:
		return nil
	case today.Status == attendance.DisplayWorking, today.Status == attendance.StatusLate:
		m = EveningKeyboard()
	default:
		return nil
	}
	return &m
}

func AbsenceKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤒 Sick day", ActionSickDay),
			tgbotapi.NewInlineKeyboardButtonData("🏖 Vacation", ActionVacationDay),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Other", ActionOtherAbsence),
		),
	)
}
