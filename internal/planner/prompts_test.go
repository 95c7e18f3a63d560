package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcus-aca/openai-planner/internal/plan"
)

func TestOverviewUserPrompt(t *testing.T) {
	got := overviewUserPrompt("\n  Build a todo app.  \n\n")

	assert.True(t, strings.HasPrefix(got, "Project design:\nBuild a todo app.\n\n"),
		"design text should be trimmed and prefixed: %q", got)
	assert.True(t, strings.HasSuffix(got,
		"Return JSON that matches the provided schema. "+
			"Each section must include a concise summary and a detailed markdown plan."))
}

func TestOverviewSystemPrompt(t *testing.T) {
	// The fallback scope named in the prompt matches the one the parser
	// substitutes, case aside.
	assert.Contains(t, overviewSystemPrompt, "'4 week MVP'")
	assert.Equal(t, plan.DefaultScopeClassification, strings.ToLower("4 week MVP"))
}

func TestDetailSystemPrompt(t *testing.T) {
	got := detailSystemPrompt("Sync Engine")

	assert.Contains(t, got, "Required headings:\n"+strings.Join(plan.DetailHeadings, "\n"))
	assert.True(t, strings.HasSuffix(got, "Section title: Sync Engine"))

	for _, heading := range plan.DetailHeadings {
		assert.Contains(t, got, heading)
	}
}
