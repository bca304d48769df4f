package gallery

import "strings"

// Category is a gallery filter token. Only the constants below are valid.
type Category string

const (
	CategoryAll             Category = "all"
	CategoryFacilities      Category = "facilities"
	CategoryEquipment       Category = "equipment"
	CategoryClasses         Category = "classes"
	CategoryTransformations Category = "transformations"
)

// Categories returns the selectable tokens in button order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryFacilities,
		CategoryEquipment,
		CategoryClasses,
		CategoryTransformations,
	}
}

var labels = map[Category]string{
	CategoryAll:             "הכל",
	CategoryFacilities:      "מתקנים",
	CategoryEquipment:       "ציוד",
	CategoryClasses:         "שיעורים",
	CategoryTransformations: "שינויים",
}

// Label is the display name shown on the filter button and item badge.
func (c Category) Label() string {
	return labels[c]
}

func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Concrete reports whether an item may carry this category.
func (c Category) Concrete() bool {
	return c.Valid() && c != CategoryAll
}

func (c Category) String() string { return string(c) }

// ParseCategory converts an untrusted token. An empty token means "all".
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryAll, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}
