package plan

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// rawResult mirrors Result with pointer fields so that a key absent from
// the model's JSON is distinguishable from a key present with an empty
// value. Only absence is an error; empty strings are accepted.
type rawResult struct {
	ProjectTitle        *string      `json:"project_title"`
	ScopeClassification *string      `json:"scope_classification"`
	Overview            *string      `json:"overview"`
	Sections            []rawSection `json:"sections"`
}

type rawSection struct {
	ID              *string `json:"id"`
	Title           *string `json:"title"`
	Status          *string `json:"status"`
	Summary         *string `json:"summary"`
	DetailsMarkdown *string `json:"details_markdown"`
}

// Validate reports which required keys are missing. The scope
// classification is exempt: it is defaulted before validation runs.
func (r *rawResult) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectTitle, validation.NotNil),
		validation.Field(&r.Overview, validation.NotNil),
		validation.Field(&r.Sections),
	)
}

func (s rawSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.NotNil),
		validation.Field(&s.Title, validation.NotNil),
		validation.Field(&s.Status, validation.NotNil),
		validation.Field(&s.Summary, validation.NotNil),
		validation.Field(&s.DetailsMarkdown, validation.NotNil),
	)
}

// Parse decodes a model's overview output into a Result.
//
// Semantics match the planner contract: invalid JSON and missing required
// keys are fatal; an absent or empty scope classification is replaced with
// DefaultScopeClassification; an absent sections array yields an empty
// plan; status values are carried as-is without enum enforcement (the
// request schema constrains conformant providers).
func Parse(raw []byte) (*Result, error) {
	var decoded rawResult
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("parse model output as JSON: %w", err)
	}

	if decoded.ScopeClassification == nil || *decoded.ScopeClassification == "" {
		scope := DefaultScopeClassification
		decoded.ScopeClassification = &scope
	}

	if err := decoded.Validate(); err != nil {
		return nil, fmt.Errorf("plan is missing required fields: %w", err)
	}

	sections := make([]Section, 0, len(decoded.Sections))
	for _, item := range decoded.Sections {
		sections = append(sections, Section{
			ID:              *item.ID,
			Title:           *item.Title,
			Status:          Status(*item.Status),
			Summary:         *item.Summary,
			DetailsMarkdown: *item.DetailsMarkdown,
		})
	}

	return &Result{
		ProjectTitle:        *decoded.ProjectTitle,
		ScopeClassification: *decoded.ScopeClassification,
		Overview:            *decoded.Overview,
		Sections:            sections,
	}, nil
}
