package match

import "github.com/zestie-cloud/pawmatch/internal/domain/dog"

// Section is the output partition a result landed in.
type Section string

// Sections.
const (
	SectionBest    Section = "best"
	SectionExplore Section = "explore"
)

// Outcome describes how a preference field evaluated for a dog.
type Outcome string

// Outcomes.
const (
	// OutcomeMatched is a full match (degree 1).
	OutcomeMatched Outcome = "matched"
	// OutcomePartial is partial credit: numeric proximity or the
	// boolean-unknown half-credit policy.
	OutcomePartial Outcome = "partial"
	// OutcomeUnmatched is a known non-match, or an unknown value on a field
	// that does not tolerate unknowns.
	OutcomeUnmatched Outcome = "unmatched"
	// OutcomeUnknownSkipped is an unknown value excluded from scoring
	// entirely (allow_unknown on a non-boolean field).
	OutcomeUnknownSkipped Outcome = "unknown_skipped"
)

// Reason is one explainability entry attached to a result.
type Reason struct {
	Field   string  `json:"field"`
	Outcome Outcome `json:"outcome"`
	Detail  string  `json:"detail"`
}

// Result is one scored, sectioned dog.
type Result struct {
	Dog          dog.Record
	Score        float64
	Completeness float64
	Section      Section
	Reasons      []Reason
}

// Prompt triggers surfaced in response metadata.
const (
	PromptNoMatches  = "no_matches"
	PromptLowResults = "low_results"
)

// Response is the engine's full output for one request.
type Response struct {
	Results []Result
	// TotalFound is the compatible pool size before seen-exclusion and
	// capping.
	TotalFound int
	// PromptTrigger is a hint for the caller to ask for wider criteria
	// ("" when results are healthy).
	PromptTrigger string
}
