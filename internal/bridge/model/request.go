package model

import "time"

// Mode identifies which path served a request.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

// String returns the wire representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// HistoryTurn is a single prior turn of the conversation. The bridge passes
// it through to the live agent untouched; the mock path ignores it.
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one inbound chat request. Missing fields are defaulted by the
// dispatcher, so every field is optional on the wire.
type Request struct {
	Category string        `json:"category"`
	Message  string        `json:"message"`
	UserName string        `json:"user_name"`
	History  []HistoryTurn `json:"conversation_history"`
}

// Result is the structured response returned for every request. Error is set
// only when the request itself could not be parsed; agent-side failures are
// masked into Reply with Success still true.
type Result struct {
	Success   bool      `json:"success"`
	Reply     string    `json:"reply"`
	Category  string    `json:"category"`
	Mode      Mode      `json:"mode"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
