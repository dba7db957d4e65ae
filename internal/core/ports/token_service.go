package ports

// TokenService issues and verifies stateless identity tokens bound to an
// account id.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify fails with domain.ErrTokenExpired past expiry and
	// domain.ErrTokenInvalid on a bad signature or missing claims;
	// otherwise it returns the bound account id.
	Verify(token string) (string, error)
}
