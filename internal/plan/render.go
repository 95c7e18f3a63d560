package plan

import "strings"

// RenderOverview renders the overview plan document: project title, scope
// classification, overview text, then one block per section carrying its
// status line and summary, in plan order. The document is trimmed and ends
// with exactly one trailing newline.
func RenderOverview(p *Result) string {
	lines := []string{
		"# " + p.ProjectTitle,
		"",
		"Scope classification: " + p.ScopeClassification,
		"",
		"## Overview",
		p.Overview,
		"",
		"## Sections",
		"",
	}

	for _, section := range p.Sections {
		lines = append(lines,
			"### "+section.ID+": "+section.Title,
			"Status: "+string(section.Status),
			"",
			section.Summary,
			"",
		)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
