package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	My(ctx context.Context) error
	Filter(ctx context.Context) error
	Suggest(ctx context.Context) error
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context) error
	Favorite(ctx context.Context) error
	Favorites(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the EzyCook CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help           — show available commands
//	  - list           — list the public recipe collection
//	  - filter         — filter recipes by tools/meal time/ingredients
//	  - suggest        — search suggestions for a query
//	  - show           — show a single recipe (interactive ID prompt)
//	  - fav            — toggle a recipe in the local favorites
//	  - favs           — list local favorites
//	  - exit | quit    — leave the program
//
//	Not logged in:
//	  - signup         — create an account
//	  - login          — authenticate
//	  - forgot         — request a password-reset code
//	  - reset          — reset the password with the code
//
//	Logged in:
//	  - my             — list own recipes
//	  - add            — create a recipe
//	  - delete         — delete an own recipe
//	  - profile        — show the profile
//	  - edit           — edit the profile
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ezycook %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, filter, suggest, show, fav, favs, exit")
			if a.isLoggedIn() {
				printlnFn("Session commands: my, add, delete, profile, edit, logout")
			} else {
				printlnFn("Session commands: signup, login, forgot, reset")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "my":
			_ = a.My(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "suggest":
			_ = a.Suggest(ctx)

		case "show":
			_ = a.Show(ctx)

		case "add":
			_ = a.Add(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "fav":
			_ = a.Favorite(ctx)

		case "favs":
			_ = a.Favorites(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
