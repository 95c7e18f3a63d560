package plan

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteOverview renders the plan and writes it to path.
func WriteOverview(p *Result, path string) error {
	if err := os.WriteFile(path, []byte(RenderOverview(p)), 0o644); err != nil {
		return fmt.Errorf("write overview file: %w", err)
	}
	return nil
}

// WriteSectionDetail writes a section's normalized detail document into
// dir and returns the full path. An existing file with the same name is
// overwritten; duplicate section ids therefore resolve last-write-wins.
func WriteSectionDetail(s Section, dir string) (string, error) {
	path := filepath.Join(dir, SectionFilename(s))
	content := NormalizeDetail(s.Title, s.DetailsMarkdown)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write section file: %w", err)
	}
	return path, nil
}
