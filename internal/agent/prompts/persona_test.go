package prompts

import (
	"context"
	"testing"

	"github.com/brightbridge/server/internal/bridge/respond"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPersona(t *testing.T) {
	ctx := context.Background()

	out, err := RenderPersona(ctx, respond.CategoryTherapy, "Sam")
	require.NoError(t, err)
	assert.Contains(t, out, "Therapist")
	assert.Contains(t, out, "mental health and emotional support")
	assert.Contains(t, out, "Sam")
}

func TestRenderPersonaUnknownCategory(t *testing.T) {
	out, err := RenderPersona(context.Background(), "unknown_tag", "Sam")
	require.NoError(t, err)
	assert.Contains(t, out, "Support Companion")
}

func TestRenderPersonaBlankName(t *testing.T) {
	out, err := RenderPersona(context.Background(), respond.CategoryGeneral, "  ")
	require.NoError(t, err)
	assert.Contains(t, out, respond.PlaceholderName)
}

func TestPersonasCoverAllCategories(t *testing.T) {
	for _, category := range respond.Categories() {
		_, ok := personas[category]
		assert.True(t, ok, "missing persona for category %s", category)
	}
}
