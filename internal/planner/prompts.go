package planner

import (
	"strings"

	"github.com/marcus-aca/openai-planner/internal/plan"
)

// overviewSystemPrompt frames the overview call. The scope fallback it
// names matches plan.DefaultScopeClassification.
const overviewSystemPrompt = "You are a product and engineering planner. " +
	"Design an implementation plan from the given project design. " +
	"If scope is unclear, classify the plan as '4 week MVP'. " +
	"Create clear, distinct sections suitable for streamlined implementation."

// overviewUserPrompt wraps the design document for the overview call.
func overviewUserPrompt(design string) string {
	return "Project design:\n" + strings.TrimSpace(design) +
		"\n\nReturn JSON that matches the provided schema. " +
		"Each section must include a concise summary and a detailed markdown plan."
}

// detailSystemPrompt frames the refinement call for one section. The
// required headings are spelled out so the model preserves the document
// structure instead of inventing its own.
func detailSystemPrompt(title string) string {
	return "You are validating and enriching a detailed implementation plan section. " +
		"Keep the structure and headings exactly as shown below. " +
		"Fill in missing details, remove contradictions, and ensure the plan is actionable. " +
		"Return the full updated section in Markdown, preserving the headings." +
		"\n\nRequired headings:\n" + strings.Join(plan.DetailHeadings, "\n") +
		"\n\nSection title: " + title
}
