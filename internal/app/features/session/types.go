// internal/app/features/session/types.go
package session

type issueRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type issueResponse struct {
	Token string `json:"token"`
}
