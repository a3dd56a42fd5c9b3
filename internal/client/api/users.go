package api

import (
	"context"
	"net/http"

	"github.com/mbopage/ezycook-cli/internal/client/imgx"
	"github.com/mbopage/ezycook-cli/internal/client/models"
)

// UserClient is the typed façade over the user/auth endpoints.
type UserClient struct {
	gw *Gateway
}

func NewUserClient(gw *Gateway) *UserClient {
	return &UserClient{gw: gw}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates a new account. The response carries the bearer token.
func (c *UserClient) Signup(ctx context.Context, username, email, password string) (models.User, error) {
	return Do[models.User](ctx, c.gw, Request{
		Method: http.MethodPost,
		Path:   "/api/users/signup",
		Body:   signupRequest{Username: username, Email: email, Password: password},
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates and returns the user with a fresh bearer token.
func (c *UserClient) Login(ctx context.Context, username, password string) (models.User, error) {
	return Do[models.User](ctx, c.gw, Request{
		Method: http.MethodPost,
		Path:   "/api/users/login",
		Body:   loginRequest{Username: username, Password: password},
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword asks the backend to send a one-time code to the given email.
func (c *UserClient) ForgotPassword(ctx context.Context, email string) (models.MessageResponse, error) {
	return Do[models.MessageResponse](ctx, c.gw, Request{
		Method: http.MethodPost,
		Path:   "/api/users/forgot-password",
		Body:   forgotPasswordRequest{Email: email},
	})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Otp         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword exchanges a one-time code for a new password.
func (c *UserClient) ResetPassword(ctx context.Context, email, otp, newPassword string) (models.MessageResponse, error) {
	return Do[models.MessageResponse](ctx, c.gw, Request{
		Method: http.MethodPut,
		Path:   "/api/users/reset-password",
		Body:   resetPasswordRequest{Email: email, Otp: otp, NewPassword: newPassword},
	})
}

// profileEnvelope unwraps the {user: {...}} envelope the profile endpoints
// use.
type profileEnvelope struct {
	User models.UserProfile `json:"user"`
}

// GetProfile fetches the authenticated user's profile.
func (c *UserClient) GetProfile(ctx context.Context, token string) (models.UserProfile, error) {
	resp, err := Do[profileEnvelope](ctx, c.gw, Request{
		Method:        http.MethodGet,
		Path:          "/api/users/profile",
		Token:         token,
		Authenticated: true,
	})
	if err != nil {
		return models.UserProfile{}, err
	}
	return resp.User, nil
}

// ProfileUpdate carries the editable profile fields. Empty strings are
// omitted from the form; Image, when present, is resized and attached as the
// profileImage file part.
type ProfileUpdate struct {
	Username    string
	Email       string
	Name        string
	PhoneNumber string
	Image       []byte
}

// UpdateProfile replaces profile fields via a multipart PUT.
func (c *UserClient) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (models.UserProfile, error) {
	form := NewMultipartForm()
	for _, f := range []struct{ name, value string }{
		{"username", update.Username},
		{"email", update.Email},
		{"name", update.Name},
		{"phoneNumber", update.PhoneNumber},
	} {
		if f.value != "" {
			form.AddField(f.name, f.value)
		}
	}

	if len(update.Image) > 0 {
		jpg, err := imgx.PrepareJPEG(update.Image, imgx.MaxUploadWidth)
		if err != nil {
			return models.UserProfile{}, err
		}
		form.SetFile("profileImage", "profile.jpg", "image/jpeg", jpg)
	}

	resp, err := Do[profileEnvelope](ctx, c.gw, Request{
		Method:        http.MethodPut,
		Path:          "/api/users/profile",
		Form:          form,
		Token:         token,
		Authenticated: true,
	})
	if err != nil {
		return models.UserProfile{}, err
	}
	return resp.User, nil
}
