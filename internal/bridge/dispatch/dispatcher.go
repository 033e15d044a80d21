// Package dispatch is the outermost boundary of the bridge: it parses inbound
// requests, routes them to the mock responder or the live agent, and always
// emits a well-formed result. Nothing escapes it as an uncaught fault.
package dispatch

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/brightbridge/server/internal/bridge/model"
	"github.com/brightbridge/server/internal/bridge/respond"
	errx "github.com/brightbridge/server/internal/core/error"
	logx "github.com/brightbridge/server/pkg/logger"
)

// DefaultUserName substitutes for a missing user_name field.
const DefaultUserName = "User"

const (
	parseApology = "I'm sorry, there was a communication error. Please try again."
	agentApology = "I apologize, but I'm experiencing some technical difficulties right now. Please try again in a moment."
)

// Dispatcher routes requests according to the mode decided at startup. It
// holds no mutable state, so one instance serves concurrent requests.
type Dispatcher struct {
	mode    model.Mode
	adapter model.AgentAdapter
	timeout time.Duration
}

// New builds a dispatcher for the given mode. A live dispatcher without an
// adapter degrades to mock instead of failing per request.
func New(m model.Mode, adapter model.AgentAdapter, timeout time.Duration) *Dispatcher {
	if m == model.ModeLive && adapter == nil {
		logx.Warn().Msg("live mode selected without an agent adapter; falling back to mock")
		m = model.ModeMock
	}
	return &Dispatcher{mode: m, adapter: adapter, timeout: timeout}
}

// Mode reports the cached serving mode.
func (d *Dispatcher) Mode() model.Mode {
	return d.mode
}

// Handle parses a raw JSON request and dispatches it. Parse failures yield an
// unsuccessful result with a user-safe apology; they never panic or crash.
func (d *Dispatcher) Handle(ctx context.Context, raw []byte) model.Result {
	var req model.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		logx.Warn().Err(err).Msg("failed to parse inbound request")
		return model.Result{
			Success:   false,
			Reply:     parseApology,
			Category:  respond.CategoryGeneral,
			Mode:      d.mode,
			Error:     errx.InvalidInputMessage,
			Timestamp: time.Now().UTC(),
		}
	}
	return d.HandleRequest(ctx, req)
}

// HandleRequest dispatches an already-parsed request. Missing fields are
// defaulted; live-path failures are masked into an apology reply so the
// caller always gets a usable response.
func (d *Dispatcher) HandleRequest(ctx context.Context, req model.Request) model.Result {
	req = applyDefaults(req)

	var reply string
	if d.mode == model.ModeLive {
		reply = d.generateLive(ctx, req)
	} else {
		reply = respond.Respond(req.Category, req.Message, req.UserName)
	}

	return model.Result{
		Success:   true,
		Reply:     reply,
		Category:  req.Category,
		Mode:      d.mode,
		Timestamp: time.Now().UTC(),
	}
}

// generateLive makes one bounded best-effort call to the agent adapter. Any
// error, including the deadline, is logged and masked; no retries.
func (d *Dispatcher) generateLive(ctx context.Context, req model.Request) string {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	reply, err := d.adapter.Generate(ctx, req)
	if err != nil {
		logx.Warn().Err(err).Str("category", req.Category).Msg("agent generation failed; returning fallback reply")
		return agentApology
	}
	if strings.TrimSpace(reply) == "" {
		logx.Warn().Str("category", req.Category).Msg("agent returned empty reply; returning fallback reply")
		return agentApology
	}
	return reply
}

func applyDefaults(req model.Request) model.Request {
	if strings.TrimSpace(req.Category) == "" {
		req.Category = respond.CategoryGeneral
	}
	if strings.TrimSpace(req.UserName) == "" {
		req.UserName = DefaultUserName
	}
	if req.History == nil {
		req.History = []model.HistoryTurn{}
	}
	return req
}
