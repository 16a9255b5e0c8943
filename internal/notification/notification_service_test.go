package notification_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-outtime/internal/attendance"
	attendanceMock "go-outtime/internal/attendance/mock"
	"go-outtime/internal/company"
	"go-outtime/internal/employee"
	employeeMock "go-outtime/internal/employee/mock"
	inviteMock "go-outtime/internal/invite/mock"
	"go-outtime/internal/notification"
	"go-outtime/internal/shared/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type sent struct {
	kind       notification.Kind
	telegramID int64
}

type fakeMessenger struct {
	mu     sync.Mutex
	calls  []sent
	failOn map[int64]error
	after  func()
}

func (f *fakeMessenger) record(kind notification.Kind, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.after != nil {
		defer f.after()
	}
	if err := f.failOn[id]; err != nil {
		return err
	}
	f.calls = append(f.calls, sent{kind, id})
	return nil
}

func (f *fakeMessenger) SendMorningPrompt(_ context.Context, id int64, _ string) error {
	return f.record(notification.KindMorning, id)
}

func (f *fakeMessenger) SendEveningPrompt(_ context.Context, id int64, _ string) error {
	return f.record(notification.KindEvening, id)
}

func (f *fakeMessenger) SendLateReminder(_ context.Context, id int64, _ string) error {
	return f.record(notification.KindLate, id)
}

func (f *fakeMessenger) ids() []int64 {
	out := make([]int64, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.telegramID
	}
	return out
}

type notifierDeps struct {
	employees  *employeeMock.MockRepository
	attendance *attendanceMock.MockRepository
	invites    *inviteMock.MockRepository
	messenger  *fakeMessenger
	notifier   notification.Notifier
	now        time.Time
	today      time.Time
	company    *company.Company
}

func setupNotifier(t *testing.T) *notifierDeps {
	ctrl := gomock.NewController(t)
	d := &notifierDeps{
		employees:  employeeMock.NewMockRepository(ctrl),
		attendance: attendanceMock.NewMockRepository(ctrl),
		invites:    inviteMock.NewMockRepository(ctrl),
		messenger:  &fakeMessenger{failOn: map[int64]error{}},
		now:        time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC),
		today:      time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		company:    &company.Company{ID: uuid.New(), Timezone: "UTC"},
	}
	d.notifier = notification.NewNotifier(d.employees, d.attendance, d.invites, d.messenger,
		clock.Fixed(d.now), notification.Options{})
	return d
}

func (d *notifierDeps) staff(n int) []employee.Employee {
	out := make([]employee.Employee, n)
	for i := range out {
		out[i] = employee.Employee{
			ID:         uuid.New(),
			CompanyID:  d.company.ID,
			TelegramID: int64(100 + i),
			Name:       "E",
			IsActive:   true,
			Company:    d.company,
		}
	}
	return out
}

func (d *notifierDeps) expectRecord(e employee.Employee, rec *attendance.TimeRecord) {
	if rec == nil {
		d.attendance.EXPECT().FindByEmployeeAndDate(gomock.Any(), e.ID.String(), d.today).Return(nil, gorm.ErrRecordNotFound)
		return
	}
	d.attendance.EXPECT().FindByEmployeeAndDate(gomock.Any(), e.ID.String(), d.today).Return(rec, nil)
}

func stamp(h int) *time.Time {
	t := time.Date(2024, 5, 6, h, 0, 0, 0, time.UTC)
	return &t
}

func TestNotifier_MorningPass_SkipsStartedEmployees(t *testing.T) {
	d := setupNotifier(t)
	staff := d.staff(3)

	d.employees.EXPECT().FindAllActive(gomock.Any()).Return(staff, nil)
	d.expectRecord(staff[0], &attendance.TimeRecord{StartTime: stamp(8), Status: attendance.StatusWork})
	d.expectRecord(staff[1], nil)
	// a record without a start still gets the prompt
	d.expectRecord(staff[2], &attendance.TimeRecord{Status: attendance.StatusWork})

	res, err := d.notifier.RunMorningPass(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, notification.PassResult{Kind: notification.KindMorning, Sent: 2, Skipped: 1}, res)
	assert.Equal(t, []int64{101, 102}, d.messenger.ids())
}

func TestNotifier_EveningPass_OnlyOpenWorkingDays(t *testing.T) {
	d := setupNotifier(t)
	staff := d.staff(6)

	d.employees.EXPECT().FindActiveByCompany(gomock.Any(), d.company.ID.String()).Return(staff, nil)
	d.expectRecord(staff[0], nil)
	d.expectRecord(staff[1], &attendance.TimeRecord{Status: attendance.StatusWork})
	d.expectRecord(staff[2], &attendance.TimeRecord{StartTime: stamp(9), EndTime: stamp(17), Status: attendance.StatusWork})
	d.expectRecord(staff[3], &attendance.TimeRecord{StartTime: stamp(9), Status: attendance.StatusSick})
	d.expectRecord(staff[4], &attendance.TimeRecord{StartTime: stamp(9), Status: attendance.StatusWork})
	d.expectRecord(staff[5], &attendance.TimeRecord{StartTime: stamp(10), Status: attendance.StatusLate})

	res, err := d.notifier.RunEveningPass(context.Background(), d.company.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 4, res.Skipped)
	assert.Equal(t, d.company.ID.String(), res.CompanyID)
	assert.Equal(t, []int64{104, 105}, d.messenger.ids())
}

func TestNotifier_LateReminder_IsolatesFailures(t *testing.T) {
	d := setupNotifier(t)
	staff := d.staff(4)
	d.messenger.failOn[101] = errors.New("chat not found")

	d.employees.EXPECT().FindAllActive(gomock.Any()).Return(staff, nil)
	d.attendance.EXPECT().FindByEmployeeAndDate(gomock.Any(), staff[0].ID.String(), d.today).Return(nil, errors.New("timeout"))
	d.expectRecord(staff[1], nil)
	d.expectRecord(staff[2], nil)
	d.expectRecord(staff[3], &attendance.TimeRecord{StartTime: stamp(8), Status: attendance.StatusLate})

	res, err := d.notifier.RunLateReminderPass(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 2, res.Errors)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []sent{{notification.KindLate, 102}}, d.messenger.calls)
}

func TestNotifier_UsesCompanyCalendarDate(t *testing.T) {
	d := setupNotifier(t)
	// 23:30 UTC on the 5th is already the 6th in Tokyo
	d.now = time.Date(2024, 5, 5, 23, 30, 0, 0, time.UTC)
	d.notifier = notification.NewNotifier(d.employees, d.attendance, d.invites, d.messenger,
		clock.Fixed(d.now), notification.Options{})
	d.company.Timezone = "Asia/Tokyo"
	staff := d.staff(1)

	d.employees.EXPECT().FindAllActive(gomock.Any()).Return(staff, nil)
	d.expectRecord(staff[0], nil)

	res, err := d.notifier.RunMorningPass(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
}

func TestNotifier_RosterFailureAbortsPass(t *testing.T) {
	d := setupNotifier(t)
	boom := errors.New("db down")
	d.employees.EXPECT().FindAllActive(gomock.Any()).Return(nil, boom)

	_, err := d.notifier.RunMorningPass(context.Background(), "")
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, d.messenger.calls)
}

func TestNotifier_StopsWhenCancelled(t *testing.T) {
	d := setupNotifier(t)
	staff := d.staff(3)
	ctx, cancel := context.WithCancel(context.Background())
	d.messenger.after = cancel

	d.employees.EXPECT().FindAllActive(gomock.Any()).Return(staff, nil)
	d.expectRecord(staff[0], nil)

	res, err := d.notifier.RunMorningPass(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, res.Sent)
}

func TestNotifier_SendDelayBetweenMessages(t *testing.T) {
	d := setupNotifier(t)
	d.notifier = notification.NewNotifier(d.employees, d.attendance, d.invites, d.messenger,
		clock.Fixed(d.now), notification.Options{SendDelay: 20 * time.Millisecond})
	staff := d.staff(3)

	d.employees.EXPECT().FindAllActive(gomock.Any()).Return(staff, nil)
	for _, e := range staff {
		d.expectRecord(e, nil)
	}

	start := time.Now()
	res, err := d.notifier.RunMorningPass(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Sent)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestNotifier_CleanupPass(t *testing.T) {
	d := setupNotifier(t)
	d.invites.EXPECT().DeleteExpiredUnused(gomock.Any(), d.now).Return(int64(3), nil)

	res, err := d.notifier.RunCleanupPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, notification.KindCleanup, res.Kind)
	assert.Equal(t, int64(3), res.Deleted)
}

func TestNeedsPrompts(t *testing.T) {
	tests := []struct {
		name  string
		rec   *attendance.TimeRecord
		start bool
		end   bool
	}{
		{"no record", nil, true, false},
		{"not started", &attendance.TimeRecord{Status: attendance.StatusWork}, true, false},
		{"working", &attendance.TimeRecord{StartTime: stamp(9), Status: attendance.StatusWork}, false, true},
		{"late", &attendance.TimeRecord{StartTime: stamp(9), Status: attendance.StatusLate}, false, true},
		{"vacation", &attendance.TimeRecord{StartTime: stamp(9), Status: attendance.StatusVacation}, false, false},
		{"other", &attendance.TimeRecord{StartTime: stamp(9), Status: attendance.StatusOther}, false, false},
		{"finished", &attendance.TimeRecord{StartTime: stamp(9), EndTime: stamp(18), Status: attendance.StatusWork}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.start, notification.NeedsStartPrompt(tt.rec))
			assert.Equal(t, tt.end, notification.NeedsEndPrompt(tt.rec))
		})
	}
}
