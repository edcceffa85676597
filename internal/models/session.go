package models

// Session binds an opaque token to an authenticated identity. The role tag
// is part of the record so administrative gates can check it explicitly
// instead of inferring it from the username shape.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
