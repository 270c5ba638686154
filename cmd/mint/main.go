// Command mint issues a bearer token for local testing against the echo
// endpoint. It signs with JWT_SIGNING_KEY, or the development key when unset.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ferdiebergado/tokenecho/internal/config"
	"github.com/ferdiebergado/tokenecho/internal/pkg/env"
	"github.com/ferdiebergado/tokenecho/internal/token"
)

func main() {
	sub := flag.String("sub", "dev-user", "subject claim")
	email := flag.String("email", "", "email claim, omitted when empty")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime, 0 for no expiry")
	flag.Parse()

	key := env.Env("JWT_SIGNING_KEY", config.DevSigningKey)
	if key == config.DevSigningKey {
		slog.Warn("Signing with the public development key.")
	}

	tok, err := token.NewHMACSigner([]byte(key)).Sign(*sub, *email, *ttl)
	if err != nil {
		slog.Error("Failed to mint token.", "reason", err)
		os.Exit(1)
	}

	fmt.Println(tok)
}
