package token_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/tokenecho/internal/token"
)

func TestHMACSigner_Sign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sub      string
		email    string
		duration time.Duration
		want     token.Claims
	}{
		{"Subject only", "user-1", "", 0, token.Claims{Subject: "user-1"}},
		{"Subject and email", "user-2", "b@example.com", time.Hour, token.Claims{Subject: "user-2", Email: strPtr("b@example.com")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			signer := token.NewHMACSigner([]byte(testKey))
			tok, err := signer.Sign(tt.sub, tt.email, tt.duration)
			if err != nil {
				t.Fatalf("signer.Sign(%q, %q, %v) returned an error: %v", tt.sub, tt.email, tt.duration, err)
			}

			got := token.NewHMACVerifier([]byte(testKey)).Verify(tok)
			if got.Kind() != token.KindValid {
				t.Fatalf("verifier.Verify(%q) = %v, want Valid", tok, got)
			}

			claims := got.Claims()
			if claims.Subject != tt.want.Subject {
				t.Errorf("claims.Subject = %q, want: %q", claims.Subject, tt.want.Subject)
			}

			if (claims.Email == nil) != (tt.want.Email == nil) || (claims.Email != nil && *claims.Email != *tt.want.Email) {
				t.Errorf("claims.Email = %v, want: %v", claims.Email, tt.want.Email)
			}
		})
	}
}

func TestHMACSigner_SignSetsExpiry(t *testing.T) {
	t.Parallel()

	before := time.Now()
	tok, err := token.NewHMACSigner([]byte(testKey)).Sign("u", "", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	body, _, _ := strings.Cut(tok, ".")
	payload, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	if lo, hi := before.Add(time.Minute).Unix(), time.Now().Add(time.Minute).Unix(); claims.Exp < lo || claims.Exp > hi {
		t.Errorf("claims.Exp = %d, want between %d and %d", claims.Exp, lo, hi)
	}

	if got := token.Verify(tok, []byte(testKey), before.Add(2*time.Minute)); got.Reason() != token.ReasonExpired {
		t.Errorf("token.Verify(tok) after expiry = %v, want: %v", got, token.Invalid(token.ReasonExpired))
	}
}
