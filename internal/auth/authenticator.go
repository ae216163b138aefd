package auth

import "context"

// Authenticator defines the interface for host authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the host credential.
	// Returns ErrInvalidCredentials if it does not match.
	Authenticate(ctx context.Context, credential string) error
}
