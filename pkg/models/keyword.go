package models

// ExtractionSource identifies which path produced a keyword set.
type ExtractionSource string

const (
	// SourceModel means the remote text-completion service produced the keywords.
	SourceModel ExtractionSource = "model"
	// SourceLocal means the local keyword-table fallback produced the keywords.
	SourceLocal ExtractionSource = "local"
)

// CategoryKeywordSet maps each category to exactly one source-language keyword,
// or DefaultKeyword when extraction found nothing. Produced per message,
// consumed once, never persisted.
type CategoryKeywordSet struct {
	Keywords   map[Category]string  `json:"keywords"`
	Confidence map[Category]float64 `json:"confidence"`
	Source     ExtractionSource     `json:"source"`
}

// NewDefaultKeywordSet returns a set with every category at the default sentinel.
func NewDefaultKeywordSet(source ExtractionSource) CategoryKeywordSet {
	kw := make(map[Category]string, 5)
	conf := make(map[Category]float64, 5)
	for _, c := range Categories() {
		kw[c] = DefaultKeyword
		conf[c] = 0.3
	}
	return CategoryKeywordSet{Keywords: kw, Confidence: conf, Source: source}
}

// Keyword returns the keyword for a category, or DefaultKeyword if unset.
func (s CategoryKeywordSet) Keyword(c Category) string {
	if s.Keywords == nil {
		return DefaultKeyword
	}
	if kw, ok := s.Keywords[c]; ok && kw != "" {
		return kw
	}
	return DefaultKeyword
}

// ConfidenceFor returns the post-hoc confidence for a category, 0.3 if unset.
func (s CategoryKeywordSet) ConfidenceFor(c Category) float64 {
	if s.Confidence == nil {
		return 0.3
	}
	if v, ok := s.Confidence[c]; ok {
		return v
	}
	return 0.3
}

// Filled returns how many categories carry a non-default keyword.
func (s CategoryKeywordSet) Filled() int {
	n := 0
	for _, c := range Categories() {
		if s.Keyword(c) != DefaultKeyword {
			n++
		}
	}
	return n
}
