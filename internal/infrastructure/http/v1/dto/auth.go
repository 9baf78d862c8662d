package dto

// LoginRequest carries operator credentials. They pass through to the
// inventory backend unchanged; the gateway never stores them.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the upstream-issued token together with the resolved
// store role the console should operate under.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
}
