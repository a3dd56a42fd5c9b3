package services

import (
	"context"
	"sync"

	"github.com/mbopage/ezycook-cli/internal/client/api"
	"github.com/mbopage/ezycook-cli/internal/client/models"
	"github.com/mbopage/ezycook-cli/internal/logging"
)

// User operation kinds tracked by UserViewModel.
const (
	OpUserSignup  = "user.signup"
	OpUserLogin   = "user.login"
	OpUserProfile = "user.profile"
	OpUserUpdate  = "user.update"
	OpUserForgot  = "user.forgot"
	OpUserReset   = "user.reset"
)

// UserViewModel drives the auth and profile screens with the same
// Idle -> Loading -> Success|Failed machine as RecipeViewModel.
type UserViewModel struct {
	auth AuthService
	log  logging.Logger

	mu       sync.Mutex
	statuses map[string]OpStatus
	user     *models.User
	profile  *models.UserProfile
	message  string
	onChange func()
}

func NewUserViewModel(auth AuthService, log logging.Logger) *UserViewModel {
	return &UserViewModel{
		auth:     auth,
		log:      log,
		statuses: make(map[string]OpStatus),
	}
}

// OnChange registers a callback invoked after every state transition.
func (vm *UserViewModel) OnChange(fn func()) {
	vm.mu.Lock()
	vm.onChange = fn
	vm.mu.Unlock()
}

// Status returns the current status of one operation kind.
func (vm *UserViewModel) Status(op string) OpStatus {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.statuses[op]
}

// User returns the account from the last successful signup or login.
func (vm *UserViewModel) User() *models.User {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.user
}

// Profile returns the last loaded profile, or nil.
func (vm *UserViewModel) Profile() *models.UserProfile {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.profile
}

// Message returns the informational message from the last password-recovery
// call.
func (vm *UserViewModel) Message() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.message
}

func (vm *UserViewModel) setLoading(op string) {
	vm.mu.Lock()
	vm.statuses[op] = OpStatus{State: StateLoading}
	fn := vm.onChange
	vm.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (vm *UserViewModel) apply(ctx context.Context, op string, err error, mutate func()) {
	vm.mu.Lock()
	if err != nil {
		vm.log.Warn(ctx, "operation failed", "op", op, "error", err)
		vm.statuses[op] = OpStatus{State: StateFailed, Err: failureMessage(err)}
	} else {
		vm.statuses[op] = OpStatus{State: StateSuccess}
		if mutate != nil {
			mutate()
		}
	}
	fn := vm.onChange
	vm.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Signup creates an account and opens a session.
func (vm *UserViewModel) Signup(ctx context.Context, username, email, password string) {
	vm.setLoading(OpUserSignup)
	user, err := vm.auth.Signup(ctx, username, email, password)
	vm.apply(ctx, OpUserSignup, err, func() { vm.user = &user })
}

// Login opens a session.
func (vm *UserViewModel) Login(ctx context.Context, username, password string) {
	vm.setLoading(OpUserLogin)
	user, err := vm.auth.Login(ctx, username, password)
	vm.apply(ctx, OpUserLogin, err, func() { vm.user = &user })
}

// Logout drops the session and clears the cached user and profile.
func (vm *UserViewModel) Logout(ctx context.Context) error {
	if err := vm.auth.Logout(ctx); err != nil {
		return err
	}
	vm.mu.Lock()
	vm.user = nil
	vm.profile = nil
	fn := vm.onChange
	vm.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}

// LoadProfile fetches the authenticated profile.
func (vm *UserViewModel) LoadProfile(ctx context.Context) {
	vm.setLoading(OpUserProfile)
	profile, err := vm.auth.Profile(ctx)
	vm.apply(ctx, OpUserProfile, err, func() { vm.profile = &profile })
}

// UpdateProfile submits profile edits and stores the returned profile.
func (vm *UserViewModel) UpdateProfile(ctx context.Context, update api.ProfileUpdate) {
	vm.setLoading(OpUserUpdate)
	profile, err := vm.auth.UpdateProfile(ctx, update)
	vm.apply(ctx, OpUserUpdate, err, func() { vm.profile = &profile })
}

// ForgotPassword asks the backend to email a one-time code.
func (vm *UserViewModel) ForgotPassword(ctx context.Context, email string) {
	vm.setLoading(OpUserForgot)
	msg, err := vm.auth.ForgotPassword(ctx, email)
	vm.apply(ctx, OpUserForgot, err, func() { vm.message = msg })
}

// ResetPassword exchanges the one-time code for a new password.
func (vm *UserViewModel) ResetPassword(ctx context.Context, email, otp, newPassword string) {
	vm.setLoading(OpUserReset)
	msg, err := vm.auth.ResetPassword(ctx, email, otp, newPassword)
	vm.apply(ctx, OpUserReset, err, func() { vm.message = msg })
}
