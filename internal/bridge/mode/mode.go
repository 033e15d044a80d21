// Package mode decides whether requests are served by the deterministic mock
// responder or the live agent runtime. The decision is made once at startup
// and injected into the dispatcher, so per-request code never touches the
// environment.
package mode

import (
	"strings"

	"github.com/brightbridge/server/internal/bridge/model"
)

// Signals is the configuration snapshot the selector inspects.
type Signals struct {
	HasCredential bool
	Development   bool
	Hosted        bool
}

// SignalsFromConfig derives selector signals from the loaded mode config.
// A blank or whitespace-only API key counts as absent.
func SignalsFromConfig(cfg model.ModeConfig) Signals {
	return Signals{
		HasCredential: strings.TrimSpace(cfg.APIKey) != "",
		Development:   cfg.Development,
		Hosted:        cfg.Hosted,
	}
}

// Select picks the serving mode. Any signal pointing away from the live
// runtime wins, so a misconfigured deployment degrades to the dependency-free
// mock path instead of failing at request time.
func Select(sig Signals) model.Mode {
	if sig.Development || sig.Hosted || !sig.HasCredential {
		return model.ModeMock
	}
	return model.ModeLive
}
