// Package token is responsible for generating and validating session tokens
package token

import (
	"context"

	"github.com/google/uuid"
	"github.com/lordvidex/x/auth"
)

// Claims identify the session a token was issued for.
type Claims struct {
	Session uuid.UUID `json:"session"`
	Profile string    `json:"profile"`
}

type Handler interface {
	// Generate generates a new token for the given claims
	Generate(context.Context, Claims) (auth.Token, error)
	// Validate validates the given token and returns its claims
	Validate(context.Context, auth.Token) (Claims, error)
}
