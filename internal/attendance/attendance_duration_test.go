package attendance_test

import (
	"testing"
	"time"

	"go-outtime/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func ts(hm string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04:05", "2024-03-04 "+hm)
	return t
}

func TestWorkedDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"full day", ts("09:00:00"), ts("17:30:00"), "8h 30m"},
		{"seconds are floored", ts("09:00:00"), ts("09:59:59"), "0h 59m"},
		{"exact hour", ts("10:15:00"), ts("11:15:00"), "1h 0m"},
		{"end before start", ts("12:00:00"), ts("11:00:00"), "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attendance.WorkedDuration(tt.start, tt.end).String())
		})
	}
}

func TestElapsed_OpenRecordUsesNow(t *testing.T) {
	start := ts("09:00:00")
	rec := &attendance.TimeRecord{StartTime: &start, Status: attendance.StatusWork}

	d, ok := attendance.Elapsed(rec, ts("11:45:30"))
	assert.True(t, ok)
	assert.Equal(t, "2h 45m", d.String())
	assert.Nil(t, rec.EndTime)

	_, ok = attendance.Elapsed(&attendance.TimeRecord{}, ts("11:45:30"))
	assert.False(t, ok)
}

func TestDisplayStatus(t *testing.T) {
	start := ts("09:00:00")
	end := ts("18:00:00")

	tests := []struct {
		name string
		rec  *attendance.TimeRecord
		want string
	}{
		{"no record", nil, attendance.DisplayNotStarted},
		{"record without start", &attendance.TimeRecord{Status: attendance.StatusWork}, attendance.DisplayNotStarted},
		{"sick record without start", &attendance.TimeRecord{Status: attendance.StatusSick}, attendance.DisplayNotStarted},
		{"working", &attendance.TimeRecord{StartTime: &start, Status: attendance.StatusWork}, attendance.DisplayWorking},
		{"late label wins", &attendance.TimeRecord{StartTime: &start, Status: attendance.StatusLate}, attendance.StatusLate},
		{"sick label wins", &attendance.TimeRecord{StartTime: &start, Status: attendance.StatusSick}, attendance.StatusSick},
		{"finished", &attendance.TimeRecord{StartTime: &start, EndTime: &end, Status: attendance.StatusLate}, attendance.DisplayFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attendance.DisplayStatus(tt.rec))
		})
	}
}
