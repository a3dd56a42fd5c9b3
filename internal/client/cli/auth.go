package cli

import (
	"context"
	"os"

	"github.com/mbopage/ezycook-cli/internal/client/services"
	"github.com/mbopage/ezycook-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for account details and creates a new account. On success
// the session token is stored and the prompt picks up the username.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.users.Signup(ctx, username, email, string(password))

	if status := a.users.Status(services.OpUserSignup); status.State == services.StateFailed {
		printlnFn("Signup failed:", status.Err)
		return nil
	}
	a.userName = a.users.User().Username
	printlnFn("Success!")
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.users.Login(ctx, username, string(password))

	if status := a.users.Status(services.OpUserLogin); status.State == services.StateFailed {
		printlnFn("Login failed:", status.Err)
		return nil
	}
	a.userName = a.users.User().Username
	printlnFn("Logged in as", a.userName)
	return nil
}

// Logout drops the stored session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.userName = ""
	printlnFn("Logged out")
	return nil
}

// ForgotPassword asks the backend to email a one-time reset code.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	a.users.ForgotPassword(ctx, email)

	if status := a.users.Status(services.OpUserForgot); status.State == services.StateFailed {
		printlnFn("Request failed:", status.Err)
		return nil
	}
	printlnFn(a.users.Message())
	return nil
}

// ResetPassword exchanges the emailed one-time code for a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	otp, err := getSimpleText(a.reader, "Enter the code from the email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.users.ResetPassword(ctx, email, otp, string(password))

	if status := a.users.Status(services.OpUserReset); status.State == services.StateFailed {
		printlnFn("Reset failed:", status.Err)
		return nil
	}
	printlnFn(a.users.Message())
	return nil
}
