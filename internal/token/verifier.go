package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
)

const (
	segmentSep     = "."
	unknownSubject = "unknown"
)

// Verifier classifies a bearer credential.
type Verifier interface {
	Verify(token string) Status
}

// HMACVerifier checks body.signature credentials signed with HMAC-SHA256
// over the base64 encoded body.
type HMACVerifier struct {
	key []byte
	now func() time.Time
}

var _ Verifier = (*HMACVerifier)(nil)

type Option func(*HMACVerifier)

// WithClock replaces the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(v *HMACVerifier) {
		v.now = now
	}
}

// NewHMACVerifier returns a verifier holding a private copy of key.
func NewHMACVerifier(key []byte, opts ...Option) *HMACVerifier {
	v := &HMACVerifier{
		key: bytes.Clone(key),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *HMACVerifier) Verify(token string) Status {
	return Verify(token, v.key, v.now())
}

// Verify checks token against secret at the given instant. Every failure is
// reported as an Invalid status; the checks run in a fixed order and the
// first failing one wins.
func Verify(token string, secret []byte, now time.Time) Status {
	parts := strings.Split(token, segmentSep)
	if len(parts) != 2 {
		return Invalid(ReasonFormat)
	}
	encodedBody, encodedSig := parts[0], parts[1]

	body, err := decodeSegment(encodedBody)
	if err != nil {
		return Invalid(ReasonBodyEncoding)
	}

	// An undecodable signature is compared as empty and so fails as a mismatch.
	sig, err := decodeSegment(encodedSig)
	if err != nil {
		sig = []byte{}
	}

	// The MAC covers the encoded body, not the decoded JSON.
	if err := jwt.SigningMethodHS256.Verify(encodedBody, sig, secret); err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return Invalid(ReasonSignature)
		}
		return Invalid(ReasonSigningKey)
	}

	payload, err := parsePayload(body)
	if err != nil {
		return Invalid(ReasonPayload)
	}

	exp, _ := intClaim(payload, "exp")
	if exp > 0 && now.Unix() > exp {
		return Invalid(ReasonExpired)
	}

	return Valid(Claims{
		Subject: subject(payload),
		Email:   stringClaim(payload, "email"),
	})
}

// decodeSegment decodes canonical padded standard base64. The decoder skips
// CR and LF, so those are rejected up front.
func decodeSegment(seg string) ([]byte, error) {
	if strings.ContainsAny(seg, "\r\n") {
		return nil, errors.New("segment contains a line break")
	}
	return base64.StdEncoding.Strict().DecodeString(seg)
}

// parsePayload accepts any JSON value. Only objects carry claims; for other
// values the returned map is nil.
func parsePayload(body []byte) (map[string]any, error) {
	if !utf8.Valid(body) {
		return nil, errors.New("payload is not utf-8")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var val any
	if err := dec.Decode(&val); err != nil {
		return nil, err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after payload")
	}

	obj, _ := val.(map[string]any)
	return obj, nil
}

func intClaim(payload map[string]any, name string) (int64, bool) {
	num, ok := payload[name].(json.Number)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func stringClaim(payload map[string]any, name string) *string {
	s, ok := payload[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func subject(payload map[string]any) string {
	if n, ok := intClaim(payload, "sub"); ok {
		return strconv.FormatInt(n, 10)
	}
	if s := stringClaim(payload, "sub"); s != nil {
		return *s
	}
	return unknownSubject
}
