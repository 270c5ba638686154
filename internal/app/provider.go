package app

import (
	"github.com/ferdiebergado/tokenecho/internal/config"
	"github.com/ferdiebergado/tokenecho/internal/platform/router"
	"github.com/ferdiebergado/tokenecho/internal/token"
)

func newProviders(cfg *config.Config) *Providers {
	return &Providers{
		Verifier: token.NewHMACVerifier(cfg.SigningKey.Bytes()),
		Router:   router.NewGoexpressRouter(),
	}
}
