package plan

// Status tracks the implementation state of a plan section.
type Status string

// Allowed section statuses, in schema order.
const (
	StatusNotStarted     Status = "not started"
	StatusWorkInProgress Status = "work in progress"
	StatusComplete       Status = "complete"
	StatusToBeUpdated    Status = "to be updated"
)

// Statuses returns every allowed status in schema order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusWorkInProgress, StatusComplete, StatusToBeUpdated}
}

// DefaultScopeClassification is substituted when the model omits the scope
// or returns an empty one.
const DefaultScopeClassification = "4 week mvp"

// Section is one implementable unit of the overview plan.
type Section struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Status          Status `json:"status"`
	Summary         string `json:"summary"`
	DetailsMarkdown string `json:"details_markdown"`
}

// Result is the parsed overview plan for a whole project.
type Result struct {
	ProjectTitle        string    `json:"project_title"`
	ScopeClassification string    `json:"scope_classification"`
	Overview            string    `json:"overview"`
	Sections            []Section `json:"sections"`
}
