package domain

// Admin roles stored on users.role.
const (
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
	RoleViewer = "VIEWER"
)

type EnforceRequest struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
