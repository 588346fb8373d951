package usecase

import "context"

// --- Input DTOs ---

// LoginInput defines the credentials forwarded to the backend.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the sign-up data forwarded to the backend.
// AccountType is either "customer" or "store_owner".
type RegisterInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=customer store_owner"`
}

// --- Output DTOs ---

// SessionOutput returns the backend tokens together with the resolved viewer.
type SessionOutput struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token,omitempty"`
	ExpiresIn    int     `json:"expires_in,omitempty"`
	Viewer       *Viewer `json:"viewer"`
}

// AuthUsecase defines the session operations of the BFF.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
	Register(ctx context.Context, input RegisterInput) (*SessionOutput, error)
	Logout(ctx context.Context, token string) error

	// CurrentViewer resolves the viewer from the session cache, falling back to the backend profile.
	CurrentViewer(ctx context.Context, token string) (*Viewer, error)
}
