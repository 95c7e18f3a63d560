package plan

import "strings"

// DetailHeadings lists the seven headings every detail document carries,
// in the order they must appear.
var DetailHeadings = []string{
	"# Section",
	"## Summary",
	"## Design",
	"## Implementation Steps",
	"## Risks",
	"## Dependencies",
	"## Acceptance Criteria",
}

// NormalizeDetail prepares a section's detail markdown for refinement.
// Content that already carries the detail structure (it starts with
// "# Section") is passed through trimmed. Anything else is wrapped in the
// full heading skeleton with the raw content preserved verbatim under
// "## Acceptance Criteria". The result always ends with exactly one
// trailing newline.
func NormalizeDetail(title, content string) string {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, DetailHeadings[0]) {
		return trimmed + "\n"
	}

	var sb strings.Builder
	sb.WriteString(DetailHeadings[0] + "\n")
	sb.WriteString(title + "\n\n")
	for _, heading := range DetailHeadings[1:] {
		sb.WriteString(heading + "\n\n")
	}
	sb.WriteString(trimmed + "\n")
	return sb.String()
}

// NormalizeRefined applies the trailing-newline policy to a refined
// document coming back from the model. The model's structure is trusted
// as-is; only the surrounding whitespace is cleaned up.
func NormalizeRefined(content string) string {
	return strings.TrimSpace(content) + "\n"
}
