package models

// ErrorResponse is the uniform error envelope returned by the HTTP layer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse acknowledges a mutating operation that returns no payload.
type OKResponse struct {
	Success bool `json:"success"`
}

// SignupResponse is returned by POST /api/signup.
type SignupResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
}

// LoginUser is the user payload inside a LoginResponse. Token is the opaque
// session token the client must present on authenticated requests.
type LoginUser struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
}

// ExpenseResponse is returned by POST /api/expenses and echoes the expense
// with its server-assigned identifier.
type ExpenseResponse struct {
	Success bool    `json:"success"`
	Expense Expense `json:"expense"`
}

// UserInfo is the public projection of a user account returned by
// GET /api/users. It never carries credentials.
type UserInfo struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
}
