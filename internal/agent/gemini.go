// Package agent implements the live agent adapter over Google Gemini. The
// bridge treats it as a black box with one operation; everything here may
// fail or time out, and the dispatcher is responsible for masking that.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/brightbridge/server/internal/agent/prompts"
	"github.com/brightbridge/server/internal/bridge/model"
	"github.com/brightbridge/server/internal/bridge/respond"
	errx "github.com/brightbridge/server/internal/core/error"
	logx "github.com/brightbridge/server/pkg/logger"
)

// Config holds everything needed to construct the Gemini-backed adapter.
type Config struct {
	APIKey  string
	BaseURL string
	Model   model.AgentModelConfig
}

// GeminiAdapter generates replies with a single Gemini chat model call.
type GeminiAdapter struct {
	chatModel *gemini.ChatModel
	modelName string
}

var _ model.AgentAdapter = (*GeminiAdapter)(nil)

// NewGeminiAdapter creates the Gemini client and chat model.
func NewGeminiAdapter(ctx context.Context, cfg Config) (*GeminiAdapter, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model.Model,
		Temperature: &cfg.Model.Temperature,
		MaxTokens:   &cfg.Model.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating response model")
		return nil, fmt.Errorf("error creating response model: %w", err)
	}

	return &GeminiAdapter{chatModel: chatModel, modelName: cfg.Model.Model}, nil
}

// Generate produces a reply for the request. The category picks a specialist
// persona; when the caller left it at general, the message itself is
// classified so the model still answers in the right voice.
func (a *GeminiAdapter) Generate(ctx context.Context, req model.Request) (string, error) {
	category := req.Category
	if category == "" || category == respond.CategoryGeneral {
		category = respond.DetectCategory(req.Message)
	}

	systemPrompt, err := prompts.RenderPersona(ctx, category, req.UserName)
	if err != nil {
		return "", fmt.Errorf("render persona prompt: %w", err)
	}

	messages := buildMessages(systemPrompt, req)

	out, err := a.chatModel.Generate(ctx, messages)
	if err != nil {
		logx.Error().Err(err).Str("model", a.modelName).Str("category", category).Msg("Gemini generation failed")
		return "", errx.WrapAgent(err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", errx.WrapAgent(fmt.Errorf("empty model response"))
	}

	a.logUsage(out, category)
	return out.Content, nil
}

// buildMessages assembles system prompt, prior turns, and the new message.
// History roles other than user/assistant are dropped.
func buildMessages(systemPrompt string, req model.Request) []*schema.Message {
	messages := make([]*schema.Message, 0, len(req.History)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	for _, turn := range req.History {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		switch turn.Role {
		case "user":
			messages = append(messages, schema.UserMessage(turn.Content))
		case "assistant":
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		}
	}
	messages = append(messages, schema.UserMessage(req.Message))
	return messages
}

func (a *GeminiAdapter) logUsage(out *schema.Message, category string) {
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	inC, outC, totalC := ComputeCost(usage, ResolvePricing(a.modelName))
	logx.Debug().
		Str("model", a.modelName).
		Str("category", category).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")
}
