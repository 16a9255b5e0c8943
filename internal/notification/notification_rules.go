package notification

import "go-outtime/internal/attendance"

// NeedsStartPrompt holds for the morning prompt and the late reminder: the
// employee has no start recorded for the day.
func NeedsStartPrompt(r *attendance.TimeRecord) bool {
	return r == nil || !r.Started()
}

// NeedsEndPrompt holds only for a day that is started, still open and
// counted as work.
func NeedsEndPrompt(r *attendance.TimeRecord) bool {
	if r == nil || !r.Started() || r.Ended() {
		return false
	}
	return attendance.IsWorkingStatus(r.Status)
}
