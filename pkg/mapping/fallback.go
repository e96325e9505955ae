package mapping

import (
	"strings"

	"github.com/haneul-ai/promptgen/pkg/models"
)

// ScanEntry pairs a message substring with the keyword it implies. The
// extractor's local fallback scans these in order and takes the first match
// per category, so broader needles go last.
type ScanEntry struct {
	Needle  string
	Keyword string
}

// scanTables back the extractor when the completion service is unavailable.
// Every produced keyword resolves through the static tables, except the home
// sentinel which the mapper's contextual tier handles.
var scanTables = map[models.Category][]ScanEntry{
	models.CategoryLocation: {
		{"카페", "카페"},
		{"커피", "카페"},
		{"해변", "해변"},
		{"바다", "바다"},
		{"수영장", "수영장"},
		{"공원", "공원"},
		{"도서관", "도서관"},
		{"학교", "학교"},
		{"교실", "교실"},
		{"사무실", "사무실"},
		{"지하철", "지하철"},
		{"옥상", "옥상"},
		{"호텔", "호텔"},
		{"노래방", "노래방"},
		{"식당", "식당"},
		{"레스토랑", "레스토랑"},
		{"편의점", "편의점"},
		{"거리", "거리"},
		{"집", "집"},
	},
	models.CategoryOutfit: {
		{"교복", "교복"},
		{"드레스", "드레스"},
		{"원피스", "원피스"},
		{"수영복", "수영복"},
		{"비키니", "비키니"},
		{"한복", "한복"},
		{"정장", "정장"},
		{"후드", "후드티"},
		{"청바지", "청바지"},
		{"코트", "코트"},
		{"스웨터", "스웨터"},
		{"잠옷", "잠옷"},
	},
	models.CategoryAction: {
		{"앉아", "앉아있는"},
		{"서있", "서있는"},
		{"걷", "걷는"},
		{"달리", "달리는"},
		{"춤", "춤추는"},
		{"요리", "요리하는"},
		{"책", "책읽는"},
		{"자고", "자는"},
		{"먹", "먹는"},
		{"마시", "마시는"},
		{"공부", "공부하는"},
		{"웃", "웃는"},
	},
	models.CategoryExpression: {
		{"웃", "웃음"},
		{"미소", "미소"},
		{"행복", "행복"},
		{"슬프", "슬픔"},
		{"슬픈", "슬픔"},
		{"화나", "화남"},
		{"화난", "화남"},
		{"놀라", "놀람"},
		{"놀란", "놀람"},
		{"부끄", "부끄러움"},
		{"수줍", "수줍음"},
		{"눈물", "눈물"},
		{"피곤", "피곤한"},
	},
	models.CategoryAtmosphere: {
		{"아침", "아침"},
		{"저녁", "저녁"},
		{"밤", "밤"},
		{"노을", "노을"},
		{"석양", "노을"},
		{"비", "비"},
		{"눈", "눈"},
		{"안개", "안개"},
		{"네온", "네온"},
		{"달빛", "달빛"},
		{"촛불", "촛불"},
		{"별", "별"},
	},
}

// ScanMessage returns the first scan-table keyword whose needle appears in
// the message, or DefaultKeyword when nothing matches. The message is
// lowercased before scanning; Korean is unaffected but embedded Latin
// keywords match case-insensitively.
func ScanMessage(category models.Category, message string) string {
	lowered := strings.ToLower(message)
	for _, entry := range scanTables[category] {
		if strings.Contains(lowered, entry.Needle) {
			return entry.Keyword
		}
	}
	return models.DefaultKeyword
}
