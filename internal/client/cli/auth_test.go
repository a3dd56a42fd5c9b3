package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/mbopage/ezycook-cli/internal/client/api"
	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/client/services"
	"github.com/mbopage/ezycook-cli/internal/common"
	"github.com/mbopage/ezycook-cli/internal/logging"
)

func stubInputs(t *testing.T, answers []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		answer := answers[i%len(answers)]
		i++
		return answer, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// fakeAuth implements services.AuthService for handler tests.
type fakeAuth struct {
	loginUser  string
	loginPass  string
	loginErr   error
	token      string
	logoutDone bool
}

func (f *fakeAuth) Signup(_ context.Context, username, _, _ string) (models.User, error) {
	f.token = "tok"
	return models.User{Username: username, Token: "tok"}, nil
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (models.User, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	f.token = "tok"
	return models.User{Username: username, Token: "tok"}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutDone = true
	f.token = ""
	return nil
}

func (f *fakeAuth) Token(context.Context) (string, error) {
	if f.token == "" {
		return "", common.ErrNotLoggedIn
	}
	return f.token, nil
}

func (f *fakeAuth) ForgotPassword(context.Context, string) (string, error) {
	return "OTP sent", nil
}

func (f *fakeAuth) ResetPassword(context.Context, string, string, string) (string, error) {
	return "Password updated", nil
}

func (f *fakeAuth) Profile(context.Context) (models.UserProfile, error) {
	return models.UserProfile{Username: f.loginUser}, nil
}

func (f *fakeAuth) UpdateProfile(context.Context, api.ProfileUpdate) (models.UserProfile, error) {
	return models.UserProfile{}, nil
}

func newAuthTestApp(auth services.AuthService) *App {
	return &App{
		auth:  auth,
		users: services.NewUserViewModel(auth, logging.Noop{}),
	}
}

func TestLogin_Success(t *testing.T) {
	silencePrintln(t)
	restore := stubInputs(t, []string{"chef"}, []byte("secret"))
	defer restore()

	f := &fakeAuth{}
	a := newAuthTestApp(f)

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "chef" || f.loginPass != "secret" {
		t.Fatalf("credentials mismatch: %q / %q", f.loginUser, f.loginPass)
	}
	if a.userName != "chef" {
		t.Fatalf("userName not set: %q", a.userName)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in state")
	}
}

func TestLogin_FailureKeepsLoggedOut(t *testing.T) {
	silencePrintln(t)
	restore := stubInputs(t, []string{"chef"}, []byte("wrong"))
	defer restore()

	f := &fakeAuth{loginErr: &api.ServerError{Status: 401, Message: "Invalid credentials"}}
	a := newAuthTestApp(f)

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if a.userName != "" {
		t.Fatalf("userName should stay empty, got %q", a.userName)
	}
	if a.isLoggedIn() {
		t.Fatalf("expected logged-out state")
	}
}

func TestLogout(t *testing.T) {
	silencePrintln(t)

	f := &fakeAuth{token: "tok"}
	a := newAuthTestApp(f)
	a.userName = "chef"

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutDone {
		t.Fatalf("Logout not forwarded to auth service")
	}
	if a.userName != "" {
		t.Fatalf("userName not cleared")
	}
}

func TestSignup_SetsUserName(t *testing.T) {
	silencePrintln(t)
	restore := stubInputs(t, []string{"chef", "chef@example.com"}, []byte("secret"))
	defer restore()

	a := newAuthTestApp(&fakeAuth{})

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if a.userName != "chef" {
		t.Fatalf("userName not set: %q", a.userName)
	}
}
