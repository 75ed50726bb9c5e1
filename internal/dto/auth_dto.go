package dto

// SignupDTO is the request body for user registration.
type SignupDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignupResponseDTO confirms a created account.
type SignupResponseDTO struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// LoginDTO is the request body for logging in.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PrincipalDTO describes the authenticated user, as returned by /auth/me.
type PrincipalDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// MeResponseDTO is the /auth/me body. LoggedIn is false (with no user) when
// the session cookie is absent or invalid.
type MeResponseDTO struct {
	LoggedIn bool          `json:"logged_in"`
	User     *PrincipalDTO `json:"user,omitempty"`
}
