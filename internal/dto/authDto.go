package dto

// LoginDTO is the allowlist login request. There is no password; the email
// allowlist is the whole gate.
type LoginDTO struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// UserInfo is the identity baked into the issued token
type UserInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}

// LoginResponse carries the issued token and the identity it encodes
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
