// Package auth verifies bearer tokens and gates privileged endpoints.
package auth

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Authentication and authorization failures, ordered by how far the request
// got: no usable token, a token that failed verification, a verified identity
// without the required privilege.
var (
	ErrUnauthenticated = errors.New("no bearer token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("not authorized as admin")
)

// Claims is the decoded identity carried by a verified token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 bearer tokens against a shared secret. It is
// stateless: the same header and secret always produce the same result.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given signing secret.
func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// VerifyBearer extracts the token from an Authorization header value and
// verifies its signature and registered claims. A missing or malformed
// header yields ErrUnauthenticated; a token that fails verification, or one
// without an email claim, yields ErrInvalidToken.
func (v *Verifier) VerifyBearer(header string) (*Claims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, ErrUnauthenticated
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// AdminGate wraps a Verifier with an allowlist of administrator identities.
// The original system compiled a single admin address into the source; the
// allowlist is configuration here so deployments can rotate admins without a
// rebuild. An empty allowlist closes the admin surface entirely.
type AdminGate struct {
	verifier *Verifier
	admins   map[string]struct{}
}

// NewAdminGate creates an AdminGate allowing exactly the given emails,
// matched case-insensitively.
func NewAdminGate(verifier *Verifier, adminEmails []string) *AdminGate {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.TrimSpace(strings.ToLower(e))
		if e != "" {
			admins[e] = struct{}{}
		}
	}
	return &AdminGate{verifier: verifier, admins: admins}
}

// VerifyAdmin verifies the bearer token and additionally requires the decoded
// email to be on the admin allowlist. A valid token for a non-admin identity
// yields ErrForbidden, distinct from the verification failures.
func (g *AdminGate) VerifyAdmin(header string) (*Claims, error) {
	claims, err := g.verifier.VerifyBearer(header)
	if err != nil {
		return nil, err
	}
	if _, ok := g.admins[strings.ToLower(claims.Email)]; !ok {
		return nil, ErrForbidden
	}
	return claims, nil
}
