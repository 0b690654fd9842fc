package api

import (
	"context"
	"encoding/json"
)

const authBasePath = "/api/auth"

// AuthService wraps the backend auth resource. Sign-in, sign-up and password
// reset go out unauthenticated; profile update and account deletion require a
// token and fail locally when none is stored.
type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Credentials is the login form input. The backend keys on username, which
// the client mirrors from the email field.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the sign-up form input.
type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Currency  string
}

// ProfileUpdate is the authenticated profile form payload.
type ProfileUpdate struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Currency  string `json:"currency"`
}

// AuthResponse is the backend's sign-in payload.
type AuthResponse struct {
	Token     string   `json:"token"`
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	Currency  string   `json:"currency"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Currency  string `json:"currency"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// Login signs the user in. The email is sent as the username field; that
// mapping is a backend contract.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	err := s.client.post(ctx, authBasePath+"/signin", signinRequest{
		Username: creds.Email,
		Password: creds.Password,
	}, &resp, false)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a regular account. The email doubles as the username.
func (s *AuthService) Register(ctx context.Context, reg Registration) (json.RawMessage, error) {
	return s.signup(ctx, authBasePath+"/signup", reg)
}

// RegisterAdmin creates a privileged account with the same request shape.
func (s *AuthService) RegisterAdmin(ctx context.Context, reg Registration) (json.RawMessage, error) {
	return s.signup(ctx, authBasePath+"/signup-admin", reg)
}

func (s *AuthService) signup(ctx context.Context, path string, reg Registration) (json.RawMessage, error) {
	var resp json.RawMessage
	err := s.client.post(ctx, path, signupRequest{
		Username:  reg.Email,
		Email:     reg.Email,
		Password:  reg.Password,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Currency:  reg.Currency,
	}, &resp, false)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateProfile updates the authenticated user's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := s.client.put(ctx, authBasePath+"/profile", update, &resp, true); err != nil {
		return nil, err
	}
	return resp, nil
}

// ResetPassword sets a new password for the account matching email.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := s.client.post(ctx, authBasePath+"/reset-password", resetPasswordRequest{
		Email:       email,
		NewPassword: newPassword,
	}, &resp, false)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteAccount removes the authenticated user's account.
func (s *AuthService) DeleteAccount(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := s.client.delete(ctx, authBasePath+"/delete-account", &resp, true); err != nil {
		return nil, err
	}
	return resp, nil
}
