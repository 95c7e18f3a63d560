package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDetail_PassthroughForStructuredContent(t *testing.T) {
	content := "\n\n# Section\nAuth\n\n## Summary\nLogin flows.\n\n"
	got := NormalizeDetail("Auth", content)
	assert.Equal(t, strings.TrimSpace(content)+"\n", got)
}

func TestNormalizeDetail_WrapsRawContent(t *testing.T) {
	raw := "Users must be able to sign in with email.\nSessions expire after 30 days."
	got := NormalizeDetail("Auth", raw)

	// All seven headings appear, in order.
	pos := -1
	for _, heading := range DetailHeadings {
		idx := strings.Index(got, heading+"\n")
		require.GreaterOrEqual(t, idx, 0, "heading %q missing", heading)
		assert.Greater(t, idx, pos, "heading %q out of order", heading)
		pos = idx
	}

	// The title sits directly under "# Section".
	assert.True(t, strings.HasPrefix(got, "# Section\nAuth\n\n"), "title not under # Section: %q", got)

	// The raw content survives verbatim under the final heading.
	assert.Contains(t, got, "## Acceptance Criteria\n\n"+raw+"\n")
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.False(t, strings.HasSuffix(got, "\n\n"))
}

func TestNormalizeDetail_EmptyContent(t *testing.T) {
	got := NormalizeDetail("Auth", "   ")
	for _, heading := range DetailHeadings {
		assert.Contains(t, got, heading)
	}
	assert.True(t, strings.HasSuffix(got, "## Acceptance Criteria\n\n\n"))
}

func TestNormalizeDetail_Idempotent(t *testing.T) {
	raw := "Some free text."
	once := NormalizeDetail("Auth", raw)
	twice := NormalizeDetail("Auth", once)
	assert.Equal(t, once, twice)
}

func TestNormalizeRefined(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"adds trailing newline", "# Section\nAuth", "# Section\nAuth\n"},
		{"collapses trailing blank lines", "# Section\nAuth\n\n\n", "# Section\nAuth\n"},
		{"strips leading whitespace", "\n\n  # Section\nAuth\n", "# Section\nAuth\n"},
		{"interior spacing preserved", "a\n\n\nb", "a\n\n\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRefined(tt.content))
		})
	}
}
