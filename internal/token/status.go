package token

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which variant a Status holds.
type Kind int

const (
	KindMissing Kind = iota
	KindValid
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "Missing"
	case KindValid:
		return "Valid"
	case KindInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Reason is the short diagnostic attached to an invalid token.
type Reason string

const (
	ReasonFormat          Reason = "token format must be body.signature"
	ReasonBodyEncoding    Reason = "body is not valid base64"
	ReasonSigningKey      Reason = "failed to load signing key"
	ReasonSignature       Reason = "signature mismatch"
	ReasonPayload         Reason = "payload is not valid JSON"
	ReasonExpired         Reason = "token expired"
	ReasonNotBearerScheme Reason = "authorization header must be Bearer"
)

// Claims are the normalized fields of an accepted token.
type Claims struct {
	Subject string  `json:"sub"`
	Email   *string `json:"email"`
}

// Status is the outcome of verifying a credential. The zero value is Missing.
type Status struct {
	kind   Kind
	reason Reason
	claims Claims
}

func Missing() Status {
	return Status{kind: KindMissing}
}

func Invalid(reason Reason) Status {
	return Status{kind: KindInvalid, reason: reason}
}

func Valid(claims Claims) Status {
	return Status{kind: KindValid, claims: claims}
}

func (s Status) Kind() Kind {
	return s.kind
}

// Reason returns the rejection reason. It is empty unless Kind is KindInvalid.
func (s Status) Reason() Reason {
	return s.reason
}

// Claims returns the accepted claims. It is the zero value unless Kind is KindValid.
func (s Status) Claims() Claims {
	return s.claims
}

func (s Status) String() string {
	switch s.kind {
	case KindInvalid:
		return fmt.Sprintf("Invalid(%s)", s.reason)
	case KindValid:
		return fmt.Sprintf("Valid(%s)", s.claims.Subject)
	default:
		return s.kind.String()
	}
}

type statusJSON struct {
	Status string `json:"status"`
	Detail any    `json:"detail,omitempty"`
}

// MarshalJSON encodes the status as {"status": ..., "detail": ...}.
func (s Status) MarshalJSON() ([]byte, error) {
	payload := statusJSON{Status: s.kind.String()}

	switch s.kind {
	case KindMissing:
	case KindValid:
		payload.Detail = s.claims
	case KindInvalid:
		payload.Detail = s.reason
	default:
		return nil, fmt.Errorf("marshal status: unknown kind %d", s.kind)
	}

	return json.Marshal(payload)
}
