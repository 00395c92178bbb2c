package token

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/lordvidex/x/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("12345678901234567890123456789012")

func TestNew(t *testing.T) {
	type args struct {
		key      []byte
		footer   string
		validity time.Duration
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "valid key len",
			args: args{
				key:      testKey,
				footer:   "footer",
				validity: 24 * time.Hour,
			},
			wantErr: false,
		},
		{
			name: "invalid key len",
			args: args{
				key:      []byte("key"),
				footer:   "footer",
				validity: 24 * time.Hour,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.args.key, tt.args.footer, tt.args.validity)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrKeyLength)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPaseto(t *testing.T) {
	ctx := context.Background()
	p := newPasetoTest(t, "footer", time.Hour)

	claims := Claims{Session: uuid.New(), Profile: gofakeit.Name()}
	tok, err := p.Generate(ctx, claims)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	got, err := p.Validate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestPasetoValidate(t *testing.T) {
	ctx := context.Background()
	claims := Claims{Session: uuid.New(), Profile: gofakeit.Name()}

	generate := func(p *Paseto) auth.Token {
		tok, err := p.Generate(ctx, claims)
		require.NoError(t, err)
		return tok
	}
	valid := newPasetoTest(t, "footer", time.Hour)

	tests := []struct {
		name  string
		token auth.Token
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "v2.local.garbage"},
		{name: "expired", token: generate(newPasetoTest(t, "footer", -time.Minute))},
		{name: "other issuer", token: generate(newPasetoTest(t, "other", time.Hour))},
		{name: "tampered", token: generate(valid) + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := valid.Validate(ctx, tt.token)
			assert.Error(t, err)
		})
	}
}

// newPasetoTest creates a new paseto instance for testing purposes
func newPasetoTest(t *testing.T, footer string, validity time.Duration) *Paseto {
	p, err := New(testKey, footer, validity)
	require.NoError(t, err, "failed to create paseto")
	return p
}
