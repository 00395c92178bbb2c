package token

import (
	"context"
	"errors"
	"time"

	"github.com/lordvidex/x/auth"
	"github.com/o1egl/paseto/v2"
)

var (
	defaultFooter = "wordle"

	ErrKeyLength = errors.New("invalid key length, key must be 32 bytes long")
)

type Paseto struct {
	footer       string
	symmetricKey []byte
	period       time.Duration
}

func New(key []byte, footer string, validity time.Duration) (*Paseto, error) {
	if len(key) != 32 {
		return nil, ErrKeyLength
	}
	if footer == "" {
		footer = defaultFooter
	}
	pas := Paseto{
		symmetricKey: key,
		footer:       footer,
		period:       validity,
	}
	return &pas, nil
}

func (p *Paseto) Generate(_ context.Context, claims Claims) (auth.Token, error) {
	payload := p.fromClaims(claims)
	str, err := paseto.Encrypt(p.symmetricKey, payload, p.footer)
	if err != nil {
		return "", err
	}
	return auth.Token(str), nil
}

func (p *Paseto) Validate(_ context.Context, token auth.Token) (Claims, error) {
	var (
		payload paseto.JSONToken
		footer  string
	)
	if err := paseto.Decrypt(string(token), p.symmetricKey, &payload, &footer); err != nil {
		return Claims{}, err
	}
	if err := payload.Validate(paseto.IssuedBy(p.footer), paseto.ValidAt(time.Now())); err != nil {
		return Claims{}, err
	}
	return p.toClaims(payload)
}

func (p *Paseto) fromClaims(claims Claims) paseto.JSONToken {
	now := time.Now()
	payload := paseto.JSONToken{
		IssuedAt:   now,
		NotBefore:  now,
		Expiration: now.Add(p.period),
		Issuer:     p.footer,
		Subject:    claims.Profile,
	}
	payload.Set("claims", claims)
	return payload
}

func (p *Paseto) toClaims(t paseto.JSONToken) (Claims, error) {
	var claims Claims
	if err := t.Get("claims", &claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
