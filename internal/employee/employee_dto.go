package employee

type EmployeeResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	TelegramID int64  `json:"telegram_id"`
	Name       string `json:"name"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

type EmployeeListItem struct {
	EmployeeResponse
	TotalDaysWorked int64   `json:"total_days_worked"`
	TotalReports    int64   `json:"total_reports"`
	AvgHoursPerDay  float64 `json:"avg_hours_per_day"`
}

type EmployeeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	IsActive *bool   `json:"is_active"`
}
