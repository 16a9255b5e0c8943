package report

type RangeQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type ListQuery struct {
	RangeQuery
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ReportResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Content      string `json:"content"`
	Date         string `json:"date"`
	CreatedAt    string `json:"created_at"`
	WordCount    int    `json:"word_count"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type StatsSummary struct {
	TotalReports          int       `json:"total_reports"`
	UniqueEmployees       int       `json:"unique_employees"`
	AvgReportsPerEmployee float64   `json:"avg_reports_per_employee"`
	DateRange             DateRange `json:"date_range"`
}

type EmployeeReportStats struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalReports int    `json:"total_reports"`
	TotalWords   int    `json:"total_words"`
	AvgWords     int    `json:"avg_words"`
}

type DailyReportCount struct {
	Date         string `json:"date"`
	ReportsCount int    `json:"reports_count"`
}

type StatsResponse struct {
	Summary       StatsSummary          `json:"summary"`
	EmployeeStats []EmployeeReportStats `json:"employee_stats"`
	DailyStats    []DailyReportCount    `json:"daily_stats"`
}

type ExportFile struct {
	FileName string
	Content  []byte
}
