package mapping

// The generic "home" keyword loses information that is usually present in the
// surrounding sentence ("집에서 요리하다" means the kitchen, not a hallway).
// These ordered sub-keyword lists let the mapper specialize the scene by
// scanning the original message. Kept deliberately narrow: only the home
// sentinel gets this treatment.

// HomeKeywords are the location keywords treated as the ambiguous home sentinel.
var HomeKeywords = []string{"집", "집에서", "집안"}

// HomeScene pairs an ordered list of message sub-keywords with the
// specialized fragment to use when one of them appears.
type HomeScene struct {
	Name     string
	Keywords []string
	Fragment string
}

// HomeScenes are scanned in order; the first scene whose sub-keyword appears
// in the message wins.
var HomeScenes = []HomeScene{
	{
		Name:     "bathroom",
		Keywords: []string{"욕실", "화장실", "샤워", "욕조"},
		Fragment: "modern bathroom interior, tiled walls, soft steam",
	},
	{
		Name:     "bedroom",
		Keywords: []string{"침실", "침대", "이불", "베개"},
		Fragment: "cozy bedroom, soft bedding, warm bedside lamp",
	},
	{
		Name:     "living",
		Keywords: []string{"거실", "소파", "텔레비전", "티비"},
		Fragment: "comfortable living room, plush sofa, large window",
	},
	{
		Name:     "kitchen",
		Keywords: []string{"주방", "부엌", "요리", "냉장고"},
		Fragment: "bright kitchen interior, counter and cookware",
	},
}

// HomeGenericFragment is used when the message names no specific room.
const HomeGenericFragment = "cozy home interior, soft natural light"

// IsHomeKeyword reports whether a keyword is the ambiguous home sentinel.
func IsHomeKeyword(keyword string) bool {
	for _, k := range HomeKeywords {
		if keyword == k {
			return true
		}
	}
	return false
}
