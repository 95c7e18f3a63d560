package plan

import "github.com/marcus-aca/openai-planner/internal/provider"

// SchemaName identifies the overview plan schema in structured requests.
const SchemaName = "overview_plan"

// Schema returns the JSON Schema document the overview call must satisfy.
// Every field is required and no extra properties are allowed, so a
// conformant provider can only return a complete plan.
func Schema() map[string]interface{} {
	statuses := Statuses()
	statusEnum := make([]string, len(statuses))
	for i, s := range statuses {
		statusEnum[i] = string(s)
	}

	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"project_title":        map[string]interface{}{"type": "string"},
			"scope_classification": map[string]interface{}{"type": "string"},
			"overview":             map[string]interface{}{"type": "string"},
			"sections": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]interface{}{
						"id":               map[string]interface{}{"type": "string"},
						"title":            map[string]interface{}{"type": "string"},
						"status":           map[string]interface{}{"type": "string", "enum": statusEnum},
						"summary":          map[string]interface{}{"type": "string"},
						"details_markdown": map[string]interface{}{"type": "string"},
					},
					"required": []string{"id", "title", "status", "summary", "details_markdown"},
				},
			},
		},
		"required": []string{"project_title", "scope_classification", "overview", "sections"},
	}
}

// SchemaFormat returns the schema wrapped for a structured generation
// request: named, strict, ready to attach to a provider call.
func SchemaFormat() *provider.SchemaFormat {
	return &provider.SchemaFormat{
		Name:   SchemaName,
		Schema: Schema(),
		Strict: true,
	}
}
