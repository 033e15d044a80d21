package model

// ================ Config ================

// ModeConfig carries the environment signals the mode selector inspects.
// The credential doubles as the live agent's API key.
type ModeConfig struct {
	APIKey      string `envconfig:"GEMINI_API_KEY"`
	BaseURL     string `envconfig:"GEMINI_BASE_URL"`
	Development bool   `envconfig:"DEVELOPMENT_MODE" default:"false"`
	Hosted      bool   `envconfig:"HOSTED_DEPLOYMENT" default:"false"`
}

// AgentModelConfig configures the live response model.
type AgentModelConfig struct {
	Model       string  `envconfig:"AGENT_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"AGENT_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"AGENT_TEMPERATURE" default:"0.4"`
	Timeout     string  `envconfig:"AGENT_TIMEOUT" default:"30s"`
}

// ServerConfig configures the HTTP surface and its request limits.
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"3001"`
	Environment     string `envconfig:"APP_ENVIRONMENT" default:"development"`
	MaxMessageChars int    `envconfig:"MAX_MESSAGE_CHARS" default:"2000"`
	MaxNameChars    int    `envconfig:"MAX_NAME_CHARS" default:"50"`
	MaxHistoryTurns int    `envconfig:"MAX_HISTORY_TURNS" default:"10"`
}
