package company

type SettingsResponse struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	MorningNotificationTime string `json:"morning_notification_time"`
	EveningNotificationTime string `json:"evening_notification_time"`
	Timezone                string `json:"timezone"`
}

type UpdateSettingsRequest struct {
	Name                    *string `json:"name" binding:"omitempty,min=2,max=100"`
	MorningNotificationTime *string `json:"morning_notification_time"`
	EveningNotificationTime *string `json:"evening_notification_time"`
	Timezone                *string `json:"timezone"`
}

type NotificationPreview struct {
	Time        string `json:"time"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

type NotificationPreviewResponse struct {
	Morning        NotificationPreview `json:"morning"`
	Evening        NotificationPreview `json:"evening"`
	LateReminderAt string              `json:"late_reminder_at"`
	Timezone       string              `json:"timezone"`
	WorkingDays    []string            `json:"working_days"`
}
