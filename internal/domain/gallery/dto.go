package gallery

// SelectCategoryRequest is the body of POST /gallery/filter.
type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// CategoryOption is one filter button.
type CategoryOption struct {
	Token Category `json:"token"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}

// ListResponse is returned by the stateless listing.
type ListResponse struct {
	Category Category `json:"category"`
	Items    []Item   `json:"items"`
	Empty    bool     `json:"empty"`
}

// Options builds the filter buttons with item counts for items.
func Options(items []Item) []CategoryOption {
	out := make([]CategoryOption, 0, len(Categories()))
	for _, c := range Categories() {
		out = append(out, CategoryOption{
			Token: c,
			Label: c.Label(),
			Count: len(Filter(items, c)),
		})
	}
	return out
}
