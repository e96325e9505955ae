package models

// MappingRule is one pattern→template rule in the generator cascade.
// Patterns are ordered; the first match wins, so list position encodes priority.
type MappingRule struct {
	Pattern     string   `json:"pattern"`
	Category    Category `json:"category"`
	Template    string   `json:"template"`
	Confidence  float64  `json:"confidence"`
	Description string   `json:"description"`
}

// Rule confidence gates. Results at or above AcceptConfidence are taken
// outright; results in [RetryConfidence, AcceptConfidence) are taken only
// once higher-confidence and fuzzy paths are exhausted; anything lower is rejected.
const (
	AcceptConfidence = 0.7
	RetryConfidence  = 0.5
)

// RuleResult is the outcome of a successful pattern match.
type RuleResult struct {
	Fragment        string  `json:"fragment"`
	Confidence      float64 `json:"confidence"`
	RuleDescription string  `json:"rule_description"`
}
