package model

import "context"

// AgentAdapter is the single operation the dispatcher needs from the live
// agent runtime. Implementations may take arbitrary time and may fail; the
// dispatcher bounds the call with a context deadline and masks any error.
type AgentAdapter interface {
	Generate(ctx context.Context, req Request) (string, error)
}
