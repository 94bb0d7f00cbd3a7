package praixy

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry inspects an API key and, if it is a JWT, returns its expiry.
// The signature is NOT verified; this exists only so callers can warn about
// credentials that are already expired before the proxy rejects them.
//
// Opaque (non-JWT) keys return a zero time and no error. A JWT without an
// exp claim also returns a zero time.
func TokenExpiry(key string) (time.Time, error) {
	parser := jwt.NewParser()

	token, _, err := parser.ParseUnverified(key, jwt.MapClaims{})
	if err != nil {
		// Not a JWT. Opaque keys are the common case.
		return time.Time{}, nil
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
