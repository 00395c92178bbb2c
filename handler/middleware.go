package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/lordvidex/errs"
	"github.com/lordvidex/x/auth"
	"github.com/lordvidex/x/resp"

	"github.com/kodekulture/wordle/handler/token"
)

const (
	authHeaderKey  = "Authorization"
	authQueryParam = "token"
)

type contextKey struct {
	name string
}

// private vars
var (
	claimsKey = &contextKey{"claims"}
)

// Errors
var (
	ErrUnauthenticated = errs.B().Code(errs.Unauthenticated).Msg("user is unauthenticated").Err()
	ErrInternal        = errs.B().Code(errs.Internal).Msg("internal error").Err()
)

// Claims returns the claims injected by authMiddleware, nil if there are none.
func Claims(ctx context.Context) *token.Claims {
	v, _ := ctx.Value(claimsKey).(*token.Claims)
	return v
}

// authMiddleware extracts the token from the authorization header of the request,
// or from the token query parameter since browsers cannot set headers on websockets,
// validates it, and returns a new context that contains the claims.
//
// The injected claims can be gotten with the function Claims.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tok, err := decodeRequest(r)
		if err != nil {
			resp.Error(w, err)
			return
		}
		claims, err := h.token.Validate(ctx, auth.Token(tok))
		if err != nil {
			resp.Error(w, ErrUnauthenticated)
			return
		}
		// replace the request context
		ctx = context.WithValue(ctx, claimsKey, &claims)
		r = r.WithContext(ctx)

		// pass to the next handler
		next.ServeHTTP(w, r)
	})
}

func decodeRequest(r *http.Request) (string, error) {
	if header := r.Header.Get(authHeaderKey); header != "" {
		return decodeHeader(header)
	}
	if tok := r.URL.Query().Get(authQueryParam); tok != "" {
		return tok, nil
	}
	return "", ErrUnauthenticated
}

func decodeHeader(auth string) (string, error) {
	spl := strings.Split(auth, " ")
	switch len(spl) {
	case 1:
		if spl[0] == "" || strings.ToLower(spl[0]) == "bearer" {
			return "", ErrUnauthenticated
		}
		return spl[0], nil
	case 2:
		if strings.ToLower(spl[0]) != "bearer" {
			return "", ErrUnauthenticated
		}
		return spl[1], nil
	default:
		return "", ErrUnauthenticated
	}
}
