package dto

// LoginRequest payload.
type LoginRequest struct {
	Email string `json:"email"`
}

// OperatorResponse shape.
type OperatorResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// LoginResponse returns the session token and operator profile.
type LoginResponse struct {
	Token    string           `json:"token"`
	Operator OperatorResponse `json:"operator"`
}

// ToastResponse is the live notification, if any.
type ToastResponse struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}
