package attendance

type StartDayRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Status     string `json:"status" binding:"omitempty,oneof=work late sick vacation other"`
}

type EndDayRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type RecordSnapshot struct {
	Date      string  `json:"date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Status    string  `json:"status"`
}

type StartDayResponse struct {
	Message string         `json:"message"`
	Record  RecordSnapshot `json:"time_record"`
}

type ReportSnapshot struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

type EndDayResponse struct {
	Message      string         `json:"message"`
	Report       ReportSnapshot `json:"report"`
	WorkDuration string         `json:"work_duration"`
}

type EmployeeSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type TodayStatus struct {
	HasStarted   bool    `json:"has_started"`
	HasEnded     bool    `json:"has_ended"`
	HasReport    bool    `json:"has_report"`
	Status       string  `json:"status"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	WorkDuration *string `json:"work_duration,omitempty"`
}

type StatusResponse struct {
	Employee EmployeeSummary `json:"employee"`
	Today    TodayStatus     `json:"today"`
}
