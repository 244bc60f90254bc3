package ports

import "context"

// Principal is the authenticated caller as reported by the identity provider.
type Principal struct {
	Subject string
	Email   string
}

// IdentityVerifier is the contract consumed from the identity collaborator.
// Authorization is enforced entirely at the HTTP boundary: the workflow core
// never consults identity, so handlers invoked outside the guarded surface
// are not independently authorization-safe.
type IdentityVerifier interface {
	// Verify checks a bearer token with the identity provider and returns the
	// principal it identifies. An invalid, expired, or unknown token returns
	// an error.
	Verify(ctx context.Context, token string) (Principal, error)
}
