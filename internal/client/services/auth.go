// Package services contains the application services and view-models for the
// EzyCook client: session management, the favorites cache, and the
// state-machine layer the CLI renders from.
package services

import (
	"context"
	"fmt"

	"github.com/mbopage/ezycook-cli/internal/client/api"
	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/client/repositories/credentials"
	"github.com/mbopage/ezycook-cli/internal/common"
)

// userAPI is the slice of api.UserClient the auth service needs. Kept small
// so tests can substitute a fake.
type userAPI interface {
	Signup(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (models.MessageResponse, error)
	GetProfile(ctx context.Context, token string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, update api.ProfileUpdate) (models.UserProfile, error)
}

// AuthService owns the session: it signs users up and in, keeps the bearer
// token in the encrypted credential store, and serves the profile endpoints.
//
// Contract:
//   - Signup/Login: call the backend and persist the returned token.
//   - Logout: drop the stored token; never touches the network.
//   - Token: return the stored token or common.ErrNotLoggedIn.
//   - Profile/UpdateProfile: authenticated reads/writes of the user profile.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error)
	Profile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (models.UserProfile, error)
}

type authService struct {
	client      userAPI
	credentials credentials.Repository
}

// NewAuthService constructs an AuthService bound to the given API client and
// credential store.
func NewAuthService(client userAPI, creds credentials.Repository) AuthService {
	return &authService{client: client, credentials: creds}
}

func (a *authService) Signup(ctx context.Context, username, email, password string) (models.User, error) {
	user, err := a.client.Signup(ctx, username, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("signup error: %w", err)
	}
	if err := a.saveToken(ctx, user.Token); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}
	if err := a.saveToken(ctx, user.Token); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (a *authService) saveToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("server response did not include a token")
	}
	if err := a.credentials.Save(ctx, common.CredentialKeyAuthToken, []byte(token)); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}
	return nil
}

// Logout removes the stored token. It is local only: the backend keeps no
// session state for bearer tokens.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.credentials.Delete(ctx, common.CredentialKeyAuthToken); err != nil {
		return fmt.Errorf("token removal error: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or common.ErrNotLoggedIn when no
// session exists.
func (a *authService) Token(ctx context.Context) (string, error) {
	value, err := a.credentials.Load(ctx, common.CredentialKeyAuthToken)
	if err != nil {
		return "", fmt.Errorf("token loading error: %w", err)
	}
	if len(value) == 0 {
		return "", common.ErrNotLoggedIn
	}
	return string(value), nil
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *authService) ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error) {
	resp, err := a.client.ResetPassword(ctx, email, otp, newPassword)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *authService) Profile(ctx context.Context) (models.UserProfile, error) {
	token, err := a.Token(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}
	return a.client.GetProfile(ctx, token)
}

func (a *authService) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (models.UserProfile, error) {
	token, err := a.Token(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}
	return a.client.UpdateProfile(ctx, token, update)
}
