package models

// Category is one of the five semantic slots extracted from a chat message.
type Category string

const (
	CategoryLocation   Category = "location_environment"
	CategoryOutfit     Category = "outfit_style"
	CategoryAction     Category = "action_pose"
	CategoryExpression Category = "expression_emotion"
	CategoryAtmosphere Category = "atmosphere_lighting"
)

// DefaultKeyword is the sentinel used when extraction found nothing for a category.
const DefaultKeyword = "default"

// Categories returns all categories in their canonical assembly order.
func Categories() []Category {
	return []Category{
		CategoryLocation,
		CategoryOutfit,
		CategoryAction,
		CategoryExpression,
		CategoryAtmosphere,
	}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryLocation, CategoryOutfit, CategoryAction, CategoryExpression, CategoryAtmosphere:
		return true
	}
	return false
}
