// Package mapping holds the static source-language keyword tables consumed by
// the mapper and the extractor's local fallback. Keys are Korean keywords as
// they appear in chat (particle-suffixed forms like "카페에서" are listed
// alongside the root form); values are English prompt fragments.
package mapping

import "github.com/haneul-ai/promptgen/pkg/models"

// locationTable maps location/environment keywords to scene fragments.
var locationTable = map[string]string{
	"카페":     "cozy cafe interior, wooden tables, warm ambient lighting",
	"카페에서":   "cozy cafe interior, wooden tables, warm ambient lighting",
	"커피숍":    "cozy cafe interior, wooden tables, warm ambient lighting",
	// The home sentinel ("집", "집에서") is deliberately absent: the mapper's
	// contextual tier specializes it from the surrounding message instead.
	"해변":     "sunny beach, white sand, turquoise ocean waves",
	"해변에서":   "sunny beach, white sand, turquoise ocean waves",
	"바다":     "seaside scenery, open ocean horizon, gentle waves",
	"공원":     "lush green park, tree-lined path, flower beds",
	"공원에서":   "lush green park, tree-lined path, flower beds",
	"학교":     "school campus, classroom windows, bright hallway",
	"교실":     "school classroom, rows of desks, chalkboard, afternoon light",
	"사무실":    "modern office interior, desks and monitors, city view windows",
	"도서관":    "quiet library, tall bookshelves, reading lamps",
	"지하철":    "subway station platform, fluorescent lights, arriving train",
	"거리":     "city street, storefronts, crosswalk, urban scenery",
	"길거리":    "city street, storefronts, crosswalk, urban scenery",
	"옥상":     "rooftop terrace, city skyline view, railing",
	"호텔":     "luxury hotel room, king bed, floor-to-ceiling windows",
	"수영장":    "outdoor swimming pool, clear blue water, poolside loungers",
	"산":      "mountain trail, pine forest, distant peaks",
	"숲":      "deep forest, sunbeams through leaves, mossy ground",
	"놀이공원":   "amusement park, ferris wheel, colorful rides",
	"레스토랑":   "elegant restaurant interior, candlelit tables, wine glasses",
	"식당":     "casual restaurant interior, warm lighting, set tables",
	"편의점":    "convenience store interior, bright shelves, refrigerated section",
	"노래방":    "karaoke room, neon mood lighting, microphone and screen",
	"체육관":    "gymnasium interior, polished floor, sports equipment",
	"병원":     "hospital corridor, clean white walls, soft daylight",
	"교회":     "old church interior, stained glass windows, wooden pews",
	"미술관":    "art gallery, white walls, framed paintings, track lighting",
	"온천":     "outdoor hot spring, rising steam, stone bath, evening light",
	"캠핑장":    "campsite at dusk, tent and campfire, forest clearing",
	"한강":     "riverside park at the Han river, bridge lights, picnic blankets",
	"벚꽃길":    "cherry blossom lane, falling petals, spring afternoon",
	"바닷가":    "seaside scenery, open ocean horizon, gentle waves",
	"수족관":    "aquarium hall, giant glass tank, blue underwater glow",
	"테라스":    "sunlit terrace, potted plants, wrought-iron table",
	"서점":     "small bookstore, crowded shelves, paper lantern light",
	"버스정류장":  "bus stop on a quiet street, bench, evening glow",
}

// outfitTable maps outfit/style keywords to clothing fragments.
var outfitTable = map[string]string{
	"교복":   "school uniform, pleated skirt, neat ribbon",
	"드레스":  "elegant evening dress, flowing fabric",
	"원피스":  "casual one-piece dress, light fabric",
	"수영복":  "stylish swimsuit",
	"비키니":  "bikini swimwear",
	"정장":   "tailored business suit, crisp shirt",
	"캐주얼":  "casual outfit, comfortable everyday wear",
	"한복":   "traditional hanbok, vibrant silk colors",
	"후드티":  "oversized hoodie, relaxed streetwear",
	"청바지":  "denim jeans, simple top, casual style",
	"코트":   "long wool coat, winter layers",
	"스웨터":  "knit sweater, soft warm tones",
	"니트":   "knit sweater, soft warm tones",
	"잠옷":   "cozy pajamas, loungewear",
	"유니폼":  "work uniform, neat and tidy",
	"가디건":  "light cardigan over a simple dress",
	"트레이닝복": "athletic tracksuit, sporty look",
	"운동복":  "athletic sportswear, sporty look",
	"블라우스": "silk blouse, high-waisted skirt",
	"가죽자켓": "leather jacket, edgy street style",
	"치마":   "pleated skirt, casual blouse",
	"셔츠":   "crisp button-up shirt, rolled sleeves",
}

// actionTable maps action/pose keywords to pose fragments.
var actionTable = map[string]string{
	"웃는":    "smiling brightly",
	"웃고있는":  "smiling brightly",
	"앉아있는":  "sitting gracefully",
	"앉은":    "sitting gracefully",
	"서있는":   "standing naturally, relaxed posture",
	"걷는":    "walking casually",
	"걷고있는":  "walking casually",
	"달리는":   "running, dynamic motion",
	"춤추는":   "dancing, graceful movement",
	"요리하는":  "cooking at the counter",
	"책읽는":   "reading a book, absorbed",
	"독서하는":  "reading a book, absorbed",
	"자는":    "sleeping peacefully",
	"먹는":    "eating happily",
	"마시는":   "sipping a drink",
	"손흔드는":  "waving hand cheerfully",
	"스트레칭":  "stretching, limber pose",
	"기대어있는": "leaning against the wall, casual pose",
	"누워있는":  "lying down, relaxed",
	"뛰는":    "jumping mid-air, energetic",
	"공부하는":  "studying at a desk, focused",
	"사진찍는":  "taking a photo, holding a camera",
	"전화하는":  "talking on the phone",
}

// expressionTable maps expression/emotion keywords to face fragments.
var expressionTable = map[string]string{
	"웃음":   "bright cheerful smile",
	"미소":   "gentle soft smile",
	"행복":   "happy expression, sparkling eyes",
	"행복한":  "happy expression, sparkling eyes",
	"슬픔":   "sorrowful expression, downcast eyes",
	"슬픈":   "sorrowful expression, downcast eyes",
	"화남":   "angry expression, furrowed brows",
	"화난":   "angry expression, furrowed brows",
	"놀람":   "surprised expression, wide eyes",
	"놀란":   "surprised expression, wide eyes",
	"부끄러움": "shy blushing expression",
	"수줍음":  "bashful expression, averted gaze",
	"수줍은":  "bashful expression, averted gaze",
	"윙크":   "playful wink",
	"눈물":   "teary eyes, emotional expression",
	"지루함":  "bored expression, resting chin on hand",
	"피곤한":  "tired sleepy expression",
	"진지한":  "serious focused expression",
	"장난스러운": "mischievous grin",
	"평온한":  "serene calm expression",
	"설레는":  "fluttering excited expression, light blush",
}

// atmosphereTable maps atmosphere/lighting keywords to mood fragments.
var atmosphereTable = map[string]string{
	"아침":   "fresh morning light, soft sunrise glow",
	"점심":   "bright midday sunlight",
	"저녁":   "warm evening light, golden hour",
	"밤":    "night scene, deep blue darkness, city lights",
	"노을":   "sunset glow, orange and pink sky",
	"햇살":   "warm sunbeams, lens flare",
	"비":    "rainy mood, wet reflections, overcast sky",
	"비오는":  "rainy mood, wet reflections, overcast sky",
	"눈":    "falling snow, winter stillness",
	"안개":   "misty fog, diffused soft light",
	"네온":   "neon glow, vibrant cyberpunk colors",
	"촛불":   "candlelight, intimate warm flicker",
	"달빛":   "moonlight, cool silver illumination",
	"별":    "starry night sky, glittering stars",
	"따뜻한":  "warm cozy atmosphere, soft tones",
	"차가운":  "cold crisp atmosphere, cool tones",
	"몽환적":  "dreamy ethereal atmosphere, soft bokeh",
	"쓸쓸한":  "lonely melancholic mood, muted palette",
	"활기찬":  "lively vibrant atmosphere, saturated colors",
	"로맨틱":  "romantic mood, soft warm glow",
	"신비로운": "mysterious atmosphere, dramatic shadows",
}

var tables = map[models.Category]map[string]string{
	models.CategoryLocation:   locationTable,
	models.CategoryOutfit:     outfitTable,
	models.CategoryAction:     actionTable,
	models.CategoryExpression: expressionTable,
	models.CategoryAtmosphere: atmosphereTable,
}

// Lookup returns the static fragment for a keyword in a category.
// Matching is exact and case-sensitive.
func Lookup(category models.Category, keyword string) (string, bool) {
	table, ok := tables[category]
	if !ok {
		return "", false
	}
	frag, ok := table[keyword]
	return frag, ok
}

// Keys returns all static keys for a category. Order is unspecified.
func Keys(category models.Category) []string {
	table := tables[category]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}

// Size returns the number of static entries for a category.
func Size(category models.Category) int {
	return len(tables[category])
}
