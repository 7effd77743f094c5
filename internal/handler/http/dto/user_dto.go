package dto

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Login    string `json:"login" binding:"required"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Lastname string `json:"lastname"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the DTO for a successful login. Role keeps the stored
// list shape for compatibility with existing clients.
type LoginResponse struct {
	Token string   `json:"token"`
	Role  []string `json:"role"`
	ID    string   `json:"id"`
}
