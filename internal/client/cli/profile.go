package cli

import (
	"context"
	"os"

	"github.com/mbopage/ezycook-cli/internal/client/api"
	"github.com/mbopage/ezycook-cli/internal/client/services"
)

// Profile fetches and prints the authenticated user's profile.
func (a *App) Profile(ctx context.Context) error {
	a.users.LoadProfile(ctx)

	if status := a.users.Status(services.OpUserProfile); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}

	p := a.users.Profile()
	printlnFn("Username:", p.Username)
	printlnFn("Email:", p.Email)
	if p.Name != nil {
		printlnFn("Name:", *p.Name)
	}
	if p.PhoneNumber != nil {
		printlnFn("Phone:", *p.PhoneNumber)
	}
	return nil
}

// EditProfile prompts for new profile values; empty answers leave the field
// unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "New username (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "New phone number (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Profile image file path (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	update := api.ProfileUpdate{
		Username:    username,
		Email:       email,
		Name:        name,
		PhoneNumber: phone,
	}
	if imagePath != "" {
		image, err := os.ReadFile(imagePath)
		if err != nil {
			printlnFn("Cannot read image:", err.Error())
			return nil
		}
		update.Image = image
	}

	a.users.UpdateProfile(ctx, update)

	if status := a.users.Status(services.OpUserUpdate); status.State == services.StateFailed {
		printlnFn("Error:", status.Err)
		return nil
	}
	if username != "" {
		a.userName = username
	}
	printlnFn("Profile updated")
	return nil
}
