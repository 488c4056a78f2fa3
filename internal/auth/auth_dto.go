package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toResponse(s Session) SessionResponse {
	return SessionResponse{
		ID:    s.ID,
		Email: s.Email,
		Name:  s.Name,
		Role:  s.Role,
	}
}
