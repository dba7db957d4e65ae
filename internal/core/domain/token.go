package domain

import "errors"

// Token verification distinguishes expiry from malformation so the
// transport layer can surface a precise message. Login deliberately does
// not make the analogous distinction (see ErrInvalidCredentials).
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
