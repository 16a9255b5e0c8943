package invite

type CreateInviteRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

type InviteResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	EmployeeName string `json:"employee_name"`
	CompanyName  string `json:"company_name,omitempty"`
	InviteLink   string `json:"invite_link,omitempty"`
	ExpiresAt    string `json:"expires_at"`
	CreatedAt    string `json:"created_at"`
}

type RedeemInviteRequest struct {
	TelegramID  int64  `json:"telegram_id" binding:"required"`
	Name        string `json:"name" binding:"omitempty,max=255"`
	InviteToken string `json:"invite_token" binding:"required"`
}

type RegisteredEmployee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}

type RedeemInviteResponse struct {
	Message  string             `json:"message"`
	Employee RegisteredEmployee `json:"employee"`
}
