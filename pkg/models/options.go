package models

// Gender selects the subject fragment family.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// ParseGender maps a raw caller value to a Gender, defaulting to female
// on absent or unrecognized input.
func ParseGender(raw string) Gender {
	switch Gender(raw) {
	case GenderMale:
		return GenderMale
	default:
		return GenderFemale
	}
}

// QualityLevel is a caller-selected preset controlling enhancer/suppressor tag density.
type QualityLevel string

const (
	QualityDraft    QualityLevel = "draft"
	QualityStandard QualityLevel = "standard"
	QualityHigh     QualityLevel = "high"
	QualityPremium  QualityLevel = "premium"
)

// ParseQualityLevel maps a raw caller value to a QualityLevel, defaulting to standard.
func ParseQualityLevel(raw string) QualityLevel {
	switch QualityLevel(raw) {
	case QualityDraft, QualityHigh, QualityPremium:
		return QualityLevel(raw)
	default:
		return QualityStandard
	}
}

// ConvertOptions enumerates every recognized conversion option and its default.
type ConvertOptions struct {
	Gender         Gender       `json:"gender"`
	Age            int          `json:"age,omitempty"` // 0 = unspecified
	Quality        QualityLevel `json:"quality"`
	RecentTurns    []string     `json:"recent_turns,omitempty"`
	CharacterHints string       `json:"character_hints,omitempty"`
}

// Normalized returns a copy with defaults applied to absent or invalid fields.
func (o ConvertOptions) Normalized() ConvertOptions {
	o.Gender = ParseGender(string(o.Gender))
	o.Quality = ParseQualityLevel(string(o.Quality))
	if o.Age < 0 {
		o.Age = 0
	}
	return o
}
