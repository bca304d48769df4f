package gallery

// Item is one gallery tile. Items are defined at startup and never mutated.
type Item struct {
	ID       int      `json:"id"`
	Src      string   `json:"src"`
	Alt      string   `json:"alt"`
	Caption  string   `json:"caption"`
	Category Category `json:"category"`
}

var defaultItems = []Item{
	{ID: 1, Src: "/images/gym-facility-1.jpg", Alt: "אולם אימונים מרכזי", Caption: "אולם האימונים המרכזי שלנו עם ציוד חדיש", Category: CategoryFacilities},
	{ID: 2, Src: "/images/gym-equipment-1.jpg", Alt: "משקולות חופשיות", Caption: "מגוון רחב של משקולות חופשיות לאימון מקצועי", Category: CategoryEquipment},
	{ID: 3, Src: "/images/gym-class-1.jpg", Alt: "שיעור ספינינג", Caption: "שיעור ספינינג אנרגטי בהדרכת מאמנים מוסמכים", Category: CategoryClasses},
	{ID: 4, Src: "/images/transformation-1.jpg", Alt: "סיפור הצלחה - דני", Caption: "דני הוריד 15 ק״ג תוך 3 חודשים בליווי המאמנים שלנו", Category: CategoryTransformations},
	{ID: 5, Src: "/images/gym-facility-2.jpg", Alt: "אזור קרדיו", Caption: "אזור הקרדיו המרווח שלנו עם נוף לעיר", Category: CategoryFacilities},
	{ID: 6, Src: "/images/gym-equipment-2.jpg", Alt: "מכונות כוח", Caption: "מכונות כוח מתקדמות לאימון מדויק של קבוצות שרירים", Category: CategoryEquipment},
	{ID: 7, Src: "/images/gym-class-2.jpg", Alt: "שיעור יוגה", Caption: "שיעורי יוגה להגמשת הגוף והרגעת הנפש", Category: CategoryClasses},
	{ID: 8, Src: "/images/transformation-2.jpg", Alt: "סיפור הצלחה - מיכל", Caption: "מיכל שיפרה את הכושר והבריאות שלה תוך חצי שנה", Category: CategoryTransformations},
}

// DefaultItems returns a copy of the built-in catalog in declaration order.
func DefaultItems() []Item {
	out := make([]Item, len(defaultItems))
	copy(out, defaultItems)
	return out
}

// Filter returns the items visible under c, preserving order.
// CategoryAll yields the full list.
func Filter(items []Item, c Category) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if c == CategoryAll || it.Category == c {
			out = append(out, it)
		}
	}
	return out
}
