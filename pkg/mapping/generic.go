package mapping

import (
	"fmt"

	"github.com/haneul-ai/promptgen/pkg/models"
)

// genericSuffixes complete the last-resort template "<keyword> <suffix>".
var genericSuffixes = map[models.Category]string{
	models.CategoryLocation:   "background, detailed scenery",
	models.CategoryOutfit:     "outfit, detailed clothing",
	models.CategoryAction:     "pose, natural posture",
	models.CategoryExpression: "expression, expressive face",
	models.CategoryAtmosphere: "mood, atmospheric lighting",
}

// defaultFragments fill a category when extraction returned the default
// sentinel. Calm/indoor values, also used by the total-failure fallback prompt.
var defaultFragments = map[models.Category]string{
	models.CategoryLocation:   "simple indoor background, soft daylight",
	models.CategoryOutfit:     "casual comfortable clothing",
	models.CategoryAction:     "standing naturally, relaxed posture",
	models.CategoryExpression: "gentle soft smile",
	models.CategoryAtmosphere: "calm warm atmosphere, balanced lighting",
}

// GenericFragment renders the always-succeeding template for a keyword.
func GenericFragment(category models.Category, keyword string) string {
	suffix, ok := genericSuffixes[category]
	if !ok {
		suffix = "detailed"
	}
	return fmt.Sprintf("%s %s", keyword, suffix)
}

// DefaultFragment returns the calm default fragment for a category.
func DefaultFragment(category models.Category) string {
	if frag, ok := defaultFragments[category]; ok {
		return frag
	}
	return "detailed, high quality"
}

// TranslatedFragment reformats a machine-translated keyword into a
// category-appropriate phrase.
func TranslatedFragment(category models.Category, translated string) string {
	switch category {
	case models.CategoryLocation:
		return fmt.Sprintf("%s, detailed scenery", translated)
	case models.CategoryOutfit:
		return fmt.Sprintf("wearing %s", translated)
	case models.CategoryAction:
		return fmt.Sprintf("%s, natural movement", translated)
	case models.CategoryExpression:
		return fmt.Sprintf("%s expression", translated)
	case models.CategoryAtmosphere:
		return fmt.Sprintf("%s atmosphere", translated)
	default:
		return translated
	}
}
