package mapping

import "github.com/haneul-ai/promptgen/pkg/models"

// synonymTables map hand-maintained synonyms to a canonical term that is
// guaranteed to exist in the category's static table. Used by the mapper's
// fuzzy tier when substring matching fails.
var synonymTables = map[models.Category]map[string]string{
	models.CategoryLocation: {
		"커피집":  "카페",
		"다방":   "카페",
		"모래사장": "해변",
		"백사장":  "해변",
		"피트니스": "체육관",
		"헬스장":  "체육관",
		"회사":   "사무실",
		"직장":   "사무실",
		"학원":   "교실",
		"풀장":   "수영장",
		"등산로":  "산",
		"밥집":   "식당",
		"맛집":   "식당",
		"마트":   "편의점",
		"슈퍼":   "편의점",
	},
	models.CategoryOutfit: {
		"양복":   "정장",
		"수트":   "정장",
		"맨투맨":  "후드티",
		"데님":   "청바지",
		"스커트":  "치마",
		"나시":   "캐주얼",
		"평상복":  "캐주얼",
		"운동화룩": "운동복",
	},
	models.CategoryAction: {
		"조깅":  "달리는",
		"산책":  "걷는",
		"식사":  "먹는",
		"낮잠":  "자는",
		"댄스":  "춤추는",
		"통화":  "전화하는",
		"셀카":  "사진찍는",
	},
	models.CategoryExpression: {
		"기쁨":  "행복",
		"즐거운": "행복",
		"우울":  "슬픔",
		"분노":  "화남",
		"깜짝":  "놀람",
		"부끄럼": "부끄러움",
		"무표정": "진지한",
	},
	models.CategoryAtmosphere: {
		"새벽":  "아침",
		"일몰":  "노을",
		"석양":  "노을",
		"야경":  "밤",
		"눈오는": "눈",
		"장마":  "비",
		"감성적": "몽환적",
	},
}

// Synonym returns the canonical static-table term for a synonym, if any.
func Synonym(category models.Category, keyword string) (string, bool) {
	table, ok := synonymTables[category]
	if !ok {
		return "", false
	}
	canonical, ok := table[keyword]
	return canonical, ok
}
