package filter

import "net/url"

var projectKeys = []string{
	"search",
	"city",
	"state",
	"status",
	"min_price",
	"max_price",
	"is_featured",
	"page",
	"page_size",
}

// ProjectFilters is the filter state for development project list pages.
type ProjectFilters struct {
	Search     *string
	City       *string
	State      *string
	Status     *string
	MinPrice   *float64
	MaxPrice   *float64
	IsFeatured *bool
	Page       *int
	PageSize   *int
}

// DecodeProjects reads recognized keys from a query string.
func DecodeProjects(q url.Values) ProjectFilters {
	return ProjectFilters{
		Search:     readString(q, "search"),
		City:       readString(q, "city"),
		State:      readString(q, "state"),
		Status:     readString(q, "status"),
		MinPrice:   readFloat(q, "min_price"),
		MaxPrice:   readFloat(q, "max_price"),
		IsFeatured: readBool(q, "is_featured"),
		Page:       readInt(q, "page"),
		PageSize:   readInt(q, "page_size"),
	}
}

// Encode serializes the set fields, swapping an inverted price range.
func (f ProjectFilters) Encode() url.Values {
	minPrice, maxPrice := f.MinPrice, f.MaxPrice
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}

	v := url.Values{}
	setString(v, "search", f.Search)
	setString(v, "city", f.City)
	setString(v, "state", f.State)
	setString(v, "status", f.Status)
	setFloat(v, "min_price", minPrice)
	setFloat(v, "max_price", maxPrice)
	setBool(v, "is_featured", f.IsFeatured)
	setInt(v, "page", f.Page)
	setInt(v, "page_size", f.PageSize)
	return v
}

// Query returns the encoded filters as a query string.
func (f ProjectFilters) Query() string {
	return f.Encode().Encode()
}

// Apply overlays these filters onto an existing query string, dropping page.
func (f ProjectFilters) Apply(base url.Values) url.Values {
	return merge(base, f.Encode(), projectKeys)
}
