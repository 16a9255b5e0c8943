package dashboard

type DayStats struct {
	TotalEmployees int     `json:"total_employees"`
	WorkingToday   int     `json:"working_today"`
	SickToday      int     `json:"sick_today"`
	VacationToday  int     `json:"vacation_today"`
	LateToday      int     `json:"late_today"`
	ReportsToday   int     `json:"reports_today"`
	AvgWorkHours   float64 `json:"avg_work_hours"`
}

type RecentReport struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	Content      string `json:"content"`
	Date         string `json:"date"`
	CreatedAt    string `json:"created_at"`
}

type EmployeeToday struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	HasReport bool    `json:"has_report"`
}

type OverviewResponse struct {
	Date          string          `json:"date"`
	TodayStats    DayStats        `json:"today_stats"`
	RecentReports []RecentReport  `json:"recent_reports"`
	Employees     []EmployeeToday `json:"employees"`
}

type WeeklyPoint struct {
	Date             string  `json:"date"`
	DayName          string  `json:"day_name"`
	WorkingEmployees int     `json:"working_employees"`
	ReportsCount     int     `json:"reports_count"`
	AvgWorkHours     float64 `json:"avg_work_hours"`
}

type WeeklySummary struct {
	TotalWorkingDays   int     `json:"total_working_days"`
	AvgEmployeesPerDay float64 `json:"avg_employees_per_day"`
	AvgReportsPerDay   float64 `json:"avg_reports_per_day"`
	AvgHoursPerDay     float64 `json:"avg_hours_per_day"`
}

type WeeklyResponse struct {
	WeeklyStats []WeeklyPoint `json:"weekly_stats"`
	Summary     WeeklySummary `json:"summary"`
}

type PendingReportEmployee struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartedWork bool    `json:"started_work"`
	StartTime   *string `json:"start_time,omitempty"`
}

type QuickActions struct {
	ActiveInvites         int `json:"active_invites"`
	PendingReports        int `json:"pending_reports"`
	EmployeesWorkingToday int `json:"employees_working_today"`
	TotalActiveEmployees  int `json:"total_active_employees"`
}

type QuickActionsResponse struct {
	QuickActions           QuickActions            `json:"quick_actions"`
	PendingReportEmployees []PendingReportEmployee `json:"pending_report_employees"`
}

const (
	NotificationLate        = "late"
	NotificationNoReport    = "no_report"
	NotificationNewEmployee = "new_employee"
)

type NotificationEmployee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Notification struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Message   string               `json:"message"`
	Employee  NotificationEmployee `json:"employee"`
	Timestamp string               `json:"timestamp"`
}

type WeekStats struct {
	TotalDays    int    `json:"total_days"`
	TotalHours   string `json:"total_hours"`
	ReportsCount int    `json:"reports_count"`
}

type EmployeeDetailsResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	TelegramID    int64          `json:"telegram_id"`
	IsActive      bool           `json:"is_active"`
	Today         EmployeeToday  `json:"today"`
	WeekStats     WeekStats      `json:"week_stats"`
	RecentReports []RecentReport `json:"recent_reports"`
}

type CompanyTotals struct {
	TotalEmployees   int   `json:"total_employees"`
	ActiveEmployees  int   `json:"active_employees"`
	TotalInvitesSent int64 `json:"total_invites_sent"`
	UsedInvites      int64 `json:"used_invites"`
}

type TodayTotals struct {
	WorkingEmployees int     `json:"working_employees"`
	AverageWorkHours float64 `json:"average_work_hours"`
}

type AllTimeTotals struct {
	TotalReports              int64   `json:"total_reports"`
	AverageReportsPerEmployee float64 `json:"average_reports_per_employee"`
}

type SettingsStatsResponse struct {
	Company CompanyTotals `json:"company"`
	Today   TodayTotals   `json:"today"`
	AllTime AllTimeTotals `json:"all_time"`
}
