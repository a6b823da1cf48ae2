package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for a wrong username or password at
	// login, and for a malformed, expired, forged or otherwise unverifiable
	// token at validation. The causes are deliberately indistinguishable to
	// the caller.
	ErrInvalidCredentials = errors.New("could not validate credentials")

	// ErrInactiveAccount is returned when credentials or a token are valid
	// but the principal is disabled.
	ErrInactiveAccount = errors.New("inactive account")
)
