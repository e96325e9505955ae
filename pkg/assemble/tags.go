package assemble

import "github.com/haneul-ai/promptgen/pkg/models"

// qualityTags holds the enhancer/suppressor tag sets for one quality level.
type qualityTags struct {
	prefix   []string
	suffix   []string
	negative []string // appended to the negative baseline
}

var qualityPresets = map[models.QualityLevel]qualityTags{
	models.QualityDraft: {
		prefix: []string{"simple illustration"},
		suffix: []string{"clean lines"},
	},
	models.QualityStandard: {
		prefix: []string{"masterpiece", "best quality"},
		suffix: []string{"detailed", "soft shading"},
	},
	models.QualityHigh: {
		prefix: []string{"masterpiece", "best quality", "ultra-detailed", "8k"},
		suffix: []string{"intricate details", "sharp focus", "cinematic lighting"},
		negative: []string{"jpeg artifacts", "chromatic aberration"},
	},
	models.QualityPremium: {
		prefix: []string{"masterpiece", "best quality", "ultra-detailed", "8k", "photorealistic", "award-winning"},
		suffix: []string{"intricate details", "sharp focus", "cinematic lighting", "perfect composition", "rich color grading"},
		negative: []string{"jpeg artifacts", "chromatic aberration", "oversaturated", "flat lighting"},
	},
}

// negativeBaseline suppresses the anatomical, quality, and content defects
// every quality level rejects.
var negativeBaseline = []string{
	"lowres",
	"worst quality",
	"low quality",
	"bad anatomy",
	"bad hands",
	"extra digits",
	"fewer digits",
	"missing fingers",
	"extra limbs",
	"deformed face",
	"blurry",
	"watermark",
	"signature",
	"text",
	"nsfw",
	"nude",
	"explicit",
}

// compositionFragment is the fixed camera/composition slot.
const compositionFragment = "upper body portrait, looking at viewer, depth of field, professional composition"

// subjectFragment derives the fixed subject slot from gender and optional age.
func subjectFragment(gender models.Gender, age int) string {
	var base string
	switch gender {
	case models.GenderMale:
		base = "1boy, handsome detailed face"
	default:
		base = "1girl, beautiful detailed face"
	}
	switch {
	case age <= 0:
		return base
	case age < 30:
		return base + ", youthful appearance"
	case age < 50:
		return base + ", mature appearance"
	default:
		return base + ", elderly appearance, dignified"
	}
}
