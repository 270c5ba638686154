package token_test

import (
	"encoding/json"
	"testing"

	"github.com/ferdiebergado/tokenecho/internal/token"
)

func TestStatus_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status token.Status
		want   string
	}{
		{"Missing", token.Missing(), `{"status":"Missing"}`},
		{"Zero value is missing", token.Status{}, `{"status":"Missing"}`},
		{"Invalid", token.Invalid(token.ReasonExpired), `{"status":"Invalid","detail":"token expired"}`},
		{
			"Valid with email",
			token.Valid(token.Claims{Subject: "42", Email: strPtr("a@example.com")}),
			`{"status":"Valid","detail":{"sub":"42","email":"a@example.com"}}`,
		},
		{
			"Valid without email",
			token.Valid(token.Claims{Subject: "unknown"}),
			`{"status":"Valid","detail":{"sub":"unknown","email":null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.status)
			if err != nil {
				t.Fatalf("json.Marshal(%v): %v", tt.status, err)
			}

			if string(got) != tt.want {
				t.Errorf("json.Marshal(%v) = %s, want: %s", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatus_Accessors(t *testing.T) {
	t.Parallel()

	invalid := token.Invalid(token.ReasonSignature)
	if invalid.Kind() != token.KindInvalid {
		t.Errorf("invalid.Kind() = %v, want: %v", invalid.Kind(), token.KindInvalid)
	}
	if invalid.Reason() != token.ReasonSignature {
		t.Errorf("invalid.Reason() = %q, want: %q", invalid.Reason(), token.ReasonSignature)
	}
	if invalid.Claims() != (token.Claims{}) {
		t.Errorf("invalid.Claims() = %+v, want zero value", invalid.Claims())
	}

	valid := token.Valid(token.Claims{Subject: "1"})
	if valid.Reason() != "" {
		t.Errorf("valid.Reason() = %q, want empty", valid.Reason())
	}
	if got := valid.String(); got != "Valid(1)" {
		t.Errorf("valid.String() = %q, want: %q", got, "Valid(1)")
	}
}
