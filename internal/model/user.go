package model

// UserView is the display-ready user handed to the layout shell and the /api/me endpoint.
// Built per request, never persisted or cached.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
