// Package common defines shared constants and sentinel errors used across
// the EzyCook client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Credential errors. ErrNotLoggedIn is returned whenever an operation
	// requires a bearer token and none is stored.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrStorage wraps local persistence failures raised by the repositories.
	ErrStorage = errors.New("storage error")

	// Validation errors.
	ErrorInvalidInput = errors.New("invalid input")
)

// CredentialKeyAuthToken is the credential-store key under which the bearer
// token is persisted. Exactly one token is stored per installation.
const CredentialKeyAuthToken = "auth_token"
