package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues credentials that a Verifier holding the same key accepts.
type Signer interface {
	Sign(sub, email string, duration time.Duration) (string, error)
}

type issuedClaims struct {
	Subject string `json:"sub"`
	Email   string `json:"email,omitempty"`
	Expiry  int64  `json:"exp,omitempty"`
}

// HMACSigner produces body.signature credentials with HMAC-SHA256 over the
// base64 encoded body.
type HMACSigner struct {
	key []byte
	now func() time.Time
}

var _ Signer = (*HMACSigner)(nil)

func NewHMACSigner(key []byte) *HMACSigner {
	return &HMACSigner{
		key: bytes.Clone(key),
		now: time.Now,
	}
}

// Sign issues a credential for sub. An empty email is left out of the payload
// and a zero duration issues a credential that never expires.
func (s *HMACSigner) Sign(sub, email string, duration time.Duration) (string, error) {
	claims := issuedClaims{
		Subject: sub,
		Email:   email,
	}
	if duration > 0 {
		claims.Expiry = s.now().Add(duration).Unix()
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	body := base64.StdEncoding.EncodeToString(payload)
	sig, err := jwt.SigningMethodHS256.Sign(body, s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return body + segmentSep + base64.StdEncoding.EncodeToString(sig), nil
}
