// Package catalog holds the read-only lookup tables the extraction engine
// matches against: store name aliases and category keywords. Both tables are
// ordered; matching is first-hit-wins in declaration order, so order is part
// of the contract.
package catalog

import (
	"github.com/benshabbat/receipt-scanner/constants"
)

// StorePattern maps a canonical store name to the textual variants it appears
// as on scanned receipts, native script and transliterations alike.
type StorePattern struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// CategoryRule maps a category label to the keywords that select it.
// Keywords are matched as substrings of the cleaned item name.
type CategoryRule struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// Catalog bundles both tables. It is constructed once at startup and never
// mutated during parsing.
type Catalog struct {
	Stores     []StorePattern `json:"stores"`
	Categories []CategoryRule `json:"categories"`
}

// Default returns the built-in catalog covering the common Israeli retail
// chains and a grocery keyword taxonomy.
func Default() *Catalog {
	return &Catalog{
		Stores: []StorePattern{
			{Name: "רמי לוי", Aliases: []string{"רמי לוי", "רמי-לוי", "rami levy", "rami levi"}},
			{Name: "שופרסל", Aliases: []string{"שופרסל", "שופרסל דיל", "שופרסל שלי", "shufersal", "shufersal deal"}},
			{Name: "ויקטורי", Aliases: []string{"ויקטורי", "victory"}},
			{Name: "יוחננוף", Aliases: []string{"יוחננוף", "yohananof", "yochananof"}},
			{Name: "מגה", Aliases: []string{"מגה בעיר", "מגה", "mega"}},
			{Name: "טיב טעם", Aliases: []string{"טיב טעם", "tiv taam"}},
			{Name: "אושר עד", Aliases: []string{"אושר עד", "osher ad"}},
			{Name: "יינות ביתן", Aliases: []string{"יינות ביתן", "yeinot bitan"}},
			{Name: "חצי חינם", Aliases: []string{"חצי חינם", "hatzi hinam", "hazi hinam"}},
			{Name: "מחסני השוק", Aliases: []string{"מחסני השוק", "machsanei hashuk"}},
			{Name: "סופר פארם", Aliases: []string{"סופר פארם", "סופר-פארם", "super pharm", "super-pharm"}},
			{Name: "am:pm", Aliases: []string{"am:pm", "am pm", "ampm", "אם פם"}},
		},
		Categories: []CategoryRule{
			{Category: string(constants.Dairy), Keywords: []string{
				"חלב", "גבינה", "קוטג", "יוגורט", "שמנת", "חמאה", "לבן",
				"milk", "cheese", "yogurt", "butter",
			}},
			{Category: string(constants.Bakery), Keywords: []string{
				"לחם", "חלה", "פיתה", "לחמניה", "לחמניות", "בגט", "מאפה", "עוגה", "טורטיה",
				"bread", "baguette", "pita",
			}},
			{Category: string(constants.Produce), Keywords: []string{
				"עגבני", "מלפפון", "תפוח", "בננה", "תפוז", "גזר", "בצל", "פלפל", "חסה",
				"אבוקדו", "לימון", "ענבים", "ירקות", "פירות",
				"tomato", "cucumber", "apple", "banana", "orange",
			}},
			{Category: string(constants.MeatFish), Keywords: []string{
				"עוף", "הודו", "בקר", "בשר", "שניצל", "נקניק", "דג", "סלמון", "טונה",
				"chicken", "beef", "turkey", "fish", "salmon", "tuna",
			}},
			{Category: string(constants.Frozen), Keywords: []string{
				"קפוא", "גלידה", "שלגון",
				"frozen", "ice cream",
			}},
			{Category: string(constants.Drinks), Keywords: []string{
				"מים", "מיץ", "קולה", "סודה", "בירה", "יין", "קפה", "תה", "משקה", "סיידר",
				"water", "juice", "cola", "beer", "wine", "coffee",
			}},
			{Category: string(constants.Snacks), Keywords: []string{
				"שוקולד", "חטיף", "במבה", "ביסלי", "עוגיות", "ממתק", "סוכריות", "וופל", "צ'יפס",
				"chocolate", "snack", "cookies", "candy", "chips",
			}},
			{Category: string(constants.Pantry), Keywords: []string{
				"אורז", "פסטה", "קמח", "סוכר", "מלח", "שמן", "קטשופ", "מיונז", "טחינה",
				"חומוס", "שימורים", "קורנפלקס", "דגני", "תבלין",
				"rice", "pasta", "flour", "sugar", "oil",
			}},
			{Category: string(constants.Cleaning), Keywords: []string{
				"נייר", "סבון", "אקונומיקה", "מגבונים", "שמפו", "כביסה", "ניקוי", "אבקת",
				"מטליות", "שקיות", "כלים",
				"soap", "shampoo", "detergent", "paper",
			}},
		},
	}
}
