package jwt

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AssertionClaims are the claims carried in an assertion used for the jwt-bearer grant. In
// addition to the registered claims, token endpoints commonly accept a space-delimited scope
// claim to scope down the issued access token.
type AssertionClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}

// Scopes returns the individual scope identifiers from the space-delimited scope claim.
func (c *AssertionClaims) Scopes() []string {
	if c == nil || c.Scope == "" {
		return nil
	}

	return strings.Fields(c.Scope)
}
