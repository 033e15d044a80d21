package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/brightbridge/server/internal/bridge/respond"
)

//go:embed template/persona_prompt.txt
var personaSystemPrompt string

// persona describes the specialist the live model should role-play for a
// support category.
type persona struct {
	Name      string
	Expertise string
}

var personas = map[string]persona{
	respond.CategoryGeneral:     {"Support Companion", "everyday support and encouragement"},
	respond.CategoryEducation:   {"Educator", "learning strategies and academic support"},
	respond.CategoryTherapy:     {"Therapist", "mental health and emotional support"},
	respond.CategorySocial:      {"Social Skills Coach", "communication and social interaction"},
	respond.CategoryInterview:   {"Interview Coach", "job interview preparation and professional development"},
	respond.CategoryDailyLiving: {"Daily Living Coach", "life skills and independent living"},
	respond.CategoryScreening:   {"Screening Guide", "educational information about neurodivergent conditions"},
	respond.CategoryCaregiver:   {"Caregiver Advisor", "family support and guidance"},
	respond.CategoryCrisis:      {"Crisis Support Specialist", "immediate support and de-escalation"},
}

// RenderPersona renders the specialist system prompt for a category via the
// Eino prompt component. This triggers Prompt callbacks and returns the final
// system prompt string. Unknown categories use the general persona.
func RenderPersona(ctx context.Context, category, userName string) (string, error) {
	p, ok := personas[category]
	if !ok {
		p = personas[respond.CategoryGeneral]
	}
	if strings.TrimSpace(userName) == "" {
		userName = respond.PlaceholderName
	}

	// Safely render known tokens only so free text in the template cannot
	// collide with format directives.
	content := strings.NewReplacer(
		"{persona_name}", p.Name,
		"{persona_expertise}", p.Expertise,
		"{user_name}", userName,
	).Replace(personaSystemPrompt)

	tpl := prompt.FromMessages(
		schema.FString,
		schema.MessagesPlaceholder("system_messages", false),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"system_messages": []*schema.Message{schema.SystemMessage(content)},
	})
	if err != nil {
		return "", fmt.Errorf("persona prompt callbacks: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("persona prompt callbacks: empty result")
	}
	return msgs[0].Content, nil
}
