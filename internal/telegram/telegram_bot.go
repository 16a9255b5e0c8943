package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-outtime/internal/attendance"
	attendanceerrors "go-outtime/internal/attendance/errors"
	"go-outtime/internal/invite"
	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/contextutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	genericFailure = "😔 Something went wrong. Please try again later or contact your administrator."
	notRegistered  = "👋 Hi! You are not registered yet.\n\nAsk your administrator for an invite link and open it to join your company."
	helpText       = "🤖 OutTime bot\n\n" +
		"/status - today's status\n" +
		"/help - this message\n\n" +
		"Each working morning I ask whether you are starting work, and each evening I ask for a report.\n" +
		"To finish the day, just send your report as a regular message."
	reportPrompt = "📝 Great! Send your report on today's work as a single message."
	keepWorking  = "💪 Got it, keep going. Send your report whenever you are done."
)

var absenceStatus = map[string]string{
	ActionSickDay:      attendance.StatusSick,
	ActionVacationDay:  attendance.StatusVacation,
	ActionOtherAbsence: attendance.StatusOther,
}

// Bot routes chat updates to the attendance and invite services.
type Bot struct {
	sender     Sender
	attendance attendance.Service
	invites    invite.Service
	logger     *zap.Logger
}

func NewBot(sender Sender, attendanceService attendance.Service, inviteService invite.Service, logger ...*zap.Logger) *Bot {
	l := zap.L().Named("telegram.bot")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("telegram.bot")
	}
	return &Bot{sender: sender, attendance: attendanceService, invites: inviteService, logger: l}
}

// Run handles updates one at a time until ctx ends or the channel closes.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	b.logger.Info("bot started")
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopped")
			return
		case upd, ok := <-updates:
			if !ok {
				b.logger.Info("update channel closed")
				return
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	ctx = contextutil.WithRequestID(ctx, uuid.NewString())

	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.IsCommand():
		b.handleCommand(ctx, upd.Message)
	case upd.Message != nil && upd.Message.Text != "":
		b.handleReport(ctx, upd.Message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "status":
		b.replyStatus(ctx, msg.Chat.ID, msg.From.ID)
	case "help":
		b.reply(msg.Chat.ID, helpText, nil)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Send /help for the list of commands.", nil)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	token := strings.TrimSpace(msg.CommandArguments())
	if token == "" {
		st, err := b.attendance.GetStatus(ctx, msg.From.ID)
		if errors.Is(err, attendanceerrors.ErrEmployeeNotFound) {
			b.reply(msg.Chat.ID, notRegistered, nil)
			return
		}
		if err != nil {
			b.replyError(msg.Chat.ID, err)
			return
		}
		b.reply(msg.Chat.ID, fmt.Sprintf("👋 Hi, %s! Send /status any time.", st.Employee.Name), KeyboardFor(st.Today))
		return
	}

	res, err := b.invites.Redeem(ctx, invite.RedeemInviteRequest{
		TelegramID:  msg.From.ID,
		Name:        displayName(msg.From),
		InviteToken: token,
	})
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}
	b.logger.Info("employee registered via bot",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", res.Employee.ID),
		zap.String("company_id", res.Employee.CompanyID),
	)
	b.reply(msg.Chat.ID, "🎉 "+res.Message+"\n\nI will message you every working morning and evening.", nil)
}

func (b *Bot) replyStatus(ctx context.Context, chatID, telegramID int64) {
	st, err := b.attendance.GetStatus(ctx, telegramID)
	if errors.Is(err, attendanceerrors.ErrEmployeeNotFound) {
		b.reply(chatID, notRegistered, nil)
		return
	}
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, FormatStatus(st), KeyboardFor(st.Today))
}

func (b *Bot) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if _, err := b.sender.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		b.logger.Warn("answer callback failed", zap.Error(err))
	}
	if q.Message == nil || q.From == nil {
		return
	}
	chatID := q.Message.Chat.ID

	switch q.Data {
	case ActionStartWork:
		b.startDay(ctx, chatID, q.From.ID, attendance.StatusWork)
	case ActionStartLate:
		b.startDay(ctx, chatID, q.From.ID, attendance.StatusLate)
	case ActionSickVacation:
		markup := AbsenceKeyboard()
		b.reply(chatID, "🏥 What kind of absence?", &markup)
	case ActionSickDay, ActionVacationDay, ActionOtherAbsence:
		b.startDay(ctx, chatID, q.From.ID, absenceStatus[q.Data])
	case ActionAlreadyFinished:
		b.reply(chatID, reportPrompt, nil)
	case ActionWorkingLonger:
		b.reply(chatID, keepWorking, nil)
	default:
		b.logger.Warn("unknown callback", zap.String("data", q.Data))
	}
}

func (b *Bot) startDay(ctx context.Context, chatID, telegramID int64, status string) {
	res, err := b.attendance.StartDay(ctx, attendance.StartDayRequest{TelegramID: telegramID, Status: status})
	if err != nil {
		b.replyError(chatID, err)
		return
	}
	b.reply(chatID, res.Message, nil)
}

func (b *Bot) handleReport(ctx context.Context, msg *tgbotapi.Message) {
	res, err := b.attendance.EndDay(ctx, attendance.EndDayRequest{TelegramID: msg.From.ID, Content: msg.Text})
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}
	b.reply(msg.Chat.ID, "✅ "+res.Message, nil)
}

func (b *Bot) reply(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("send reply failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// replyError shows domain errors verbatim and hides everything else.
func (b *Bot) replyError(chatID int64, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		b.logger.Error("bot action failed", zap.Int64("chat_id", chatID), zap.Error(err))
		b.reply(chatID, genericFailure, nil)
		return
	}
	b.reply(chatID, "❌ "+httpErr.Message, nil)
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return name
}

func FormatStatus(st attendance.StatusResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Status for %s\n\n", st.Employee.Name)

	t := st.Today
	switch {
	case !t.HasStarted:
		sb.WriteString("⏳ Work not started yet")
	case t.HasEnded:
		sb.WriteString("✅ Day finished")
	default:
		fmt.Fprintf(&sb, "🏢 %s", statusLabel(t.Status))
	}
	if t.StartTime != nil {
		fmt.Fprintf(&sb, "\n🕘 Started: %s", *t.StartTime)
	}
	if t.EndTime != nil {
		fmt.Fprintf(&sb, "\n🕕 Ended: %s", *t.EndTime)
	}
	if t.WorkDuration != nil {
		fmt.Fprintf(&sb, "\n⏱ Worked: %s", *t.WorkDuration)
	}
	if t.HasReport {
		sb.WriteString("\n📝 Report submitted")
	} else if t.HasStarted {
		sb.WriteString("\n📝 Report not submitted yet")
	}
	return sb.String()
}

func statusLabel(status string) string {
	switch status {
	case attendance.StatusLate:
		return "Working (late start)"
	case attendance.StatusSick:
		return "Sick day"
	case attendance.StatusVacation:
		return "On vacation"
	case attendance.StatusOther:
		return "Absent"
	default:
		return "Working"
	}
}
