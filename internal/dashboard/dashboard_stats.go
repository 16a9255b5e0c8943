package dashboard

import (
	"fmt"
	"sort"
	"time"

	"go-outtime/internal/attendance"
	"go-outtime/internal/employee"
	"go-outtime/internal/report"

	"github.com/google/uuid"
)

const (
	recentReportPreview = 100
	weekDays            = 7
)

type dayKey struct {
	employeeID uuid.UUID
	date       string
}

func dateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func stampSet(stamps []ReportStamp) map[dayKey]bool {
	set := make(map[dayKey]bool, len(stamps))
	for _, s := range stamps {
		set[dayKey{s.EmployeeID, dateKey(s.Date)}] = true
	}
	return set
}

func recordsOn(records []attendance.TimeRecord, date time.Time) []attendance.TimeRecord {
	key := dateKey(date)
	var out []attendance.TimeRecord
	for _, r := range records {
		if dateKey(r.Date) == key {
			out = append(out, r)
		}
	}
	return out
}

// hoursWorked projects an open record to now.
func hoursWorked(r attendance.TimeRecord, now time.Time) (float64, bool) {
	if r.StartTime == nil {
		return 0, false
	}
	end := now
	if r.EndTime != nil {
		end = *r.EndTime
	}
	h := end.Sub(*r.StartTime).Hours()
	if h < 0 {
		h = 0
	}
	return h, true
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}

// startedAfter reports whether start, read as a wall clock in loc, is later
// than the HH:MM:SS threshold.
func startedAfter(start time.Time, threshold string, loc *time.Location) bool {
	at, err := time.Parse(time.TimeOnly, threshold)
	if err != nil {
		return false
	}
	local := start.In(loc)
	limit := time.Date(local.Year(), local.Month(), local.Day(), at.Hour(), at.Minute(), at.Second(), 0, loc)
	return local.After(limit)
}

func isLate(r attendance.TimeRecord, morning string, loc *time.Location) bool {
	if r.StartTime == nil {
		return false
	}
	if r.Status != attendance.StatusWork && r.Status != attendance.StatusLate {
		return false
	}
	return startedAfter(*r.StartTime, morning, loc)
}

// DayInput is everything the per-day rollup reads. Records and reports may span
// more than Date; only the matching date is counted.
type DayInput struct {
	Employees []employee.Employee
	Records   []attendance.TimeRecord
	Reports   []ReportStamp
	Date      time.Time
	Morning   string
	Location  *time.Location
	Now       time.Time
}

func ComputeDayStats(in DayInput) DayStats {
	stats := DayStats{TotalEmployees: len(in.Employees)}

	active := make(map[uuid.UUID]bool, len(in.Employees))
	for _, e := range in.Employees {
		active[e.ID] = true
	}

	var hours float64
	var withHours int
	for _, r := range recordsOn(in.Records, in.Date) {
		if !active[r.EmployeeID] {
			continue
		}
		if r.StartTime != nil {
			stats.WorkingToday++
		}
		switch r.Status {
		case attendance.StatusSick:
			stats.SickToday++
		case attendance.StatusVacation:
			stats.VacationToday++
		}
		if isLate(r, in.Morning, in.Location) {
			stats.LateToday++
		}
		if h, ok := hoursWorked(r, in.Now); ok {
			hours += h
			withHours++
		}
	}
	if withHours > 0 {
		stats.AvgWorkHours = round1(hours / float64(withHours))
	}

	key := dateKey(in.Date)
	for _, s := range in.Reports {
		if active[s.EmployeeID] && dateKey(s.Date) == key {
			stats.ReportsToday++
		}
	}
	return stats
}

func formatClock(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	s := t.In(loc).Format("15:04")
	return &s
}

func EmployeesToday(in DayInput) []EmployeeToday {
	byEmployee := make(map[uuid.UUID]attendance.TimeRecord)
	for _, r := range recordsOn(in.Records, in.Date) {
		byEmployee[r.EmployeeID] = r
	}
	reported := stampSet(in.Reports)
	key := dateKey(in.Date)

	out := make([]EmployeeToday, 0, len(in.Employees))
	for _, e := range in.Employees {
		row := EmployeeToday{
			ID:        e.ID.String(),
			Name:      e.Name,
			Status:    attendance.DisplayNotStarted,
			HasReport: reported[dayKey{e.ID, key}],
		}
		if r, ok := byEmployee[e.ID]; ok {
			row.Status = attendance.DisplayStatus(&r)
			row.StartTime = formatClock(r.StartTime, in.Location)
			row.EndTime = formatClock(r.EndTime, in.Location)
		}
		out = append(out, row)
	}
	return out
}

func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= recentReportPreview {
		return content
	}
	return string(runes[:recentReportPreview]) + "..."
}

func toRecentReport(r report.Report, employeeName string, truncate bool) RecentReport {
	content := r.Content
	if truncate {
		content = Preview(content)
	}
	return RecentReport{
		ID:           r.ID.String(),
		EmployeeName: employeeName,
		Content:      content,
		Date:         dateKey(r.Date),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

// ComputeWeekly builds one point per day ending at end, oldest first. The
// summary averages over all seven days, idle ones included.
func ComputeWeekly(records []attendance.TimeRecord, reports []ReportStamp, end time.Time, now time.Time) WeeklyResponse {
	start := end.AddDate(0, 0, -(weekDays - 1))

	points := make([]WeeklyPoint, 0, weekDays)
	var summary WeeklySummary
	var employees, reportsTotal int
	var hoursTotal float64

	for d := 0; d < weekDays; d++ {
		day := start.AddDate(0, 0, d)
		key := dateKey(day)

		p := WeeklyPoint{Date: key, DayName: day.Weekday().String()}
		var hours float64
		var withHours int
		for _, r := range recordsOn(records, day) {
			if r.StartTime != nil {
				p.WorkingEmployees++
			}
			if h, ok := hoursWorked(r, now); ok {
				hours += h
				withHours++
			}
		}
		if withHours > 0 {
			p.AvgWorkHours = round1(hours / float64(withHours))
		}
		for _, s := range reports {
			if dateKey(s.Date) == key {
				p.ReportsCount++
			}
		}

		if p.WorkingEmployees > 0 {
			summary.TotalWorkingDays++
		}
		employees += p.WorkingEmployees
		reportsTotal += p.ReportsCount
		hoursTotal += p.AvgWorkHours
		points = append(points, p)
	}

	summary.AvgEmployeesPerDay = round1(float64(employees) / weekDays)
	summary.AvgReportsPerDay = round1(float64(reportsTotal) / weekDays)
	summary.AvgHoursPerDay = round1(hoursTotal / weekDays)
	return WeeklyResponse{WeeklyStats: points, Summary: summary}
}

// PendingReports lists employees who started today and have not closed the
// day or have no report yet.
func PendingReports(in DayInput) []PendingReportEmployee {
	names := make(map[uuid.UUID]string, len(in.Employees))
	for _, e := range in.Employees {
		names[e.ID] = e.Name
	}
	reported := stampSet(in.Reports)
	key := dateKey(in.Date)

	var out []PendingReportEmployee
	for _, r := range recordsOn(in.Records, in.Date) {
		name, ok := names[r.EmployeeID]
		if !ok || r.StartTime == nil {
			continue
		}
		if r.EndTime != nil && reported[dayKey{r.EmployeeID, key}] {
			continue
		}
		out = append(out, PendingReportEmployee{
			ID:          r.EmployeeID.String(),
			Name:        name,
			StartedWork: true,
			StartTime:   formatClock(r.StartTime, in.Location),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NotificationInput feeds the admin notification feed.
type NotificationInput struct {
	Employees  []employee.Employee
	Records    []attendance.TimeRecord
	Reports    []ReportStamp
	NewJoiners []employee.Employee
	Today      time.Time
	Morning    string
	Location   *time.Location
	Now        time.Time
}

func BuildNotifications(in NotificationInput) []Notification {
	var out []Notification
	type stamped struct {
		n  Notification
		at time.Time
	}
	var items []stamped

	names := make(map[uuid.UUID]string, len(in.Employees))
	for _, e := range in.Employees {
		names[e.ID] = e.Name
	}

	for _, r := range recordsOn(in.Records, in.Today) {
		name, ok := names[r.EmployeeID]
		if !ok || !isLate(r, in.Morning, in.Location) {
			continue
		}
		items = append(items, stamped{
			n: Notification{
				ID:       fmt.Sprintf("late_%s", r.ID),
				Type:     NotificationLate,
				Message:  fmt.Sprintf("%s started late at %s", name, *formatClock(r.StartTime, in.Location)),
				Employee: NotificationEmployee{ID: r.EmployeeID.String(), Name: name},
			},
			at: *r.StartTime,
		})
	}

	yesterday := in.Today.AddDate(0, 0, -1)
	reported := stampSet(in.Reports)
	for _, r := range recordsOn(in.Records, yesterday) {
		name, ok := names[r.EmployeeID]
		if !ok || r.StartTime == nil || reported[dayKey{r.EmployeeID, dateKey(yesterday)}] {
			continue
		}
		items = append(items, stamped{
			n: Notification{
				ID:       fmt.Sprintf("no_report_%s", r.ID),
				Type:     NotificationNoReport,
				Message:  fmt.Sprintf("%s did not submit a report yesterday", name),
				Employee: NotificationEmployee{ID: r.EmployeeID.String(), Name: name},
			},
			at: *r.StartTime,
		})
	}

	for _, e := range in.NewJoiners {
		items = append(items, stamped{
			n: Notification{
				ID:       fmt.Sprintf("new_employee_%s", e.ID),
				Type:     NotificationNewEmployee,
				Message:  fmt.Sprintf("%s joined the team", e.Name),
				Employee: NotificationEmployee{ID: e.ID.String(), Name: e.Name},
			},
			at: e.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].at.After(items[j].at) })
	for _, it := range items {
		it.n.Timestamp = it.at.Format(time.RFC3339)
		out = append(out, it.n)
	}
	return out
}

// ComputeWeekStats sums worked time over closed records in the range.
func ComputeWeekStats(records []attendance.TimeRecord, reportsCount int) WeekStats {
	var minutes int64
	var days int
	for _, r := range records {
		if !r.Started() {
			continue
		}
		days++
		if r.Ended() {
			minutes += attendance.WorkedDuration(*r.StartTime, *r.EndTime).TotalMinutes()
		}
	}
	total := attendance.Duration{Hours: minutes / 60, Minutes: minutes % 60}
	return WeekStats{TotalDays: days, TotalHours: total.String(), ReportsCount: reportsCount}
}

func weekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}
