package attendance

import (
	"fmt"
	"time"
)

type Duration struct {
	Hours   int64
	Minutes int64
}

// WorkedDuration floors end-start to whole minutes. Negative spans are zero.
func WorkedDuration(start, end time.Time) Duration {
	total := int64(end.Sub(start) / time.Minute)
	if total < 0 {
		total = 0
	}
	return Duration{Hours: total / 60, Minutes: total % 60}
}

func (d Duration) TotalMinutes() int64 {
	return d.Hours*60 + d.Minutes
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}

// Elapsed is the worked time of r as seen at now. An open record is
// measured against now; nothing is written back.
func Elapsed(r *TimeRecord, now time.Time) (Duration, bool) {
	if !r.Started() {
		return Duration{}, false
	}
	end := now
	if r.EndTime != nil {
		end = *r.EndTime
	}
	return WorkedDuration(*r.StartTime, end), true
}

// DisplayStatus derives the externally visible state of a day.
func DisplayStatus(r *TimeRecord) string {
	switch {
	case r == nil, r.StartTime == nil:
		return DisplayNotStarted
	case r.EndTime != nil:
		return DisplayFinished
	case r.Status != "" && r.Status != StatusWork:
		return r.Status
	default:
		return DisplayWorking
	}
}
