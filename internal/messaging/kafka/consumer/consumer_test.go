package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-outtime/internal/company"
	companyMock "go-outtime/internal/company/mock"
	"go-outtime/internal/events"
	"go-outtime/internal/telegram"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeReader struct {
	queue     []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type fakeSender struct {
	err  error
	sent []telegram.Onboarding
}

func (s *fakeSender) SendOnboarding(_ context.Context, o telegram.Onboarding) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, o)
	return nil
}

func registered(t *testing.T, offset int64, companyID uuid.UUID, telegramID int64) kafkago.Message {
	b, err := json.Marshal(events.EmployeeRegistered{
		EventType:  events.EmployeeRegisteredEvent,
		EmployeeID: uuid.NewString(),
		CompanyID:  companyID.String(),
		TelegramID: telegramID,
		Name:       "Ann",
	})
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := companyMock.NewMockRepository(ctrl)
	acme := &company.Company{
		ID:                      uuid.New(),
		Name:                    "Acme",
		MorningNotificationTime: "09:00:00",
		EveningNotificationTime: "18:00:00",
		Timezone:                "Europe/Berlin",
	}
	missing := uuid.New()
	flaky := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), acme.ID).Return(acme, nil)
	repo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().GetByID(gomock.Any(), flaky).Return(nil, errors.New("connection reset"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &fakeReader{cancel: cancel, queue: []kafkago.Message{
		registered(t, 1, acme.ID, 1001),
		{Offset: 2, Value: []byte("not json")},
		registered(t, 3, missing, 1002),
		registered(t, 4, flaky, 1003),
	}}
	sender := &fakeSender{}

	ConsumeEmployeeLifecycle(ctx, reader, NewOnboardingHandler(repo, sender), zap.NewNop())

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, telegram.Onboarding{
		TelegramID:  1001,
		Name:        "Ann",
		CompanyName: "Acme",
		MorningTime: "09:00:00",
		EveningTime: "18:00:00",
		Timezone:    "Europe/Berlin",
	}, sender.sent[0])
}

func TestOnboardingHandler_SendFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := companyMock.NewMockRepository(ctrl)
	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(&company.Company{ID: id, Name: "Acme"}, nil)

	h := NewOnboardingHandler(repo, &fakeSender{err: errors.New("telegram 502")})
	err := h.Handle(context.Background(), registered(t, 1, id, 1001))

	require.Error(t, err)
	assert.False(t, errors.Is(err, errPermanent))
}
