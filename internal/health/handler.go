// Package health serves the liveness probe.
package health

import (
	"net/http"

	"github.com/ferdiebergado/tokenecho/internal/pkg/web"
)

const OK = "ok"

func Handler(w http.ResponseWriter, _ *http.Request) {
	web.SendText(w, http.StatusOK, OK)
}
