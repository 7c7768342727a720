package constants

import (
	"strings"
)

type Category string

const (
	Produce  Category = "פירות וירקות"
	Dairy    Category = "מוצרי חלב"
	MeatFish Category = "בשר ודגים"
	Bakery   Category = "לחם ומאפים"
	Pantry   Category = "מזון יבש"
	Frozen   Category = "קפואים"
	Drinks   Category = "משקאות"
	Snacks   Category = "חטיפים ומתוקים"
	Cleaning Category = "ניקיון וחד פעמי"
	Other    Category = "אחר"
)

var allCategories = []Category{
	Produce,
	Dairy,
	MeatFish,
	Bakery,
	Pantry,
	Frozen,
	Drinks,
	Snacks,
	Cleaning,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// IsKnown reports whether the input matches one of the defined categories.
func IsKnown(input string) bool {
	normalized := strings.TrimSpace(input)
	for _, cat := range allCategories {
		if normalized == string(cat) {
			return true
		}
	}
	return false
}
