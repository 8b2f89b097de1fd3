package filter

import "net/url"

// propertyKeys are the query parameters the property list recognizes, in
// encoding order.
var propertyKeys = []string{
	"search",
	"property_type",
	"listing_type",
	"city",
	"state",
	"min_price",
	"max_price",
	"min_bedrooms",
	"max_bedrooms",
	"min_bathrooms",
	"min_area",
	"max_area",
	"is_featured",
	"is_beachfront",
	"is_new_construction",
	"is_investment_opportunity",
	"status",
	"ordering",
	"page",
	"page_size",
}

// PropertyFilters is the filter state for the property list pages. Nil means
// unconstrained.
type PropertyFilters struct {
	Search                  *string
	PropertyType            *string
	ListingType             *string
	City                    *string
	State                   *string
	MinPrice                *float64
	MaxPrice                *float64
	MinBedrooms             *int
	MaxBedrooms             *int
	MinBathrooms            *float64
	MinArea                 *float64
	MaxArea                 *float64
	IsFeatured              *bool
	IsBeachfront            *bool
	IsNewConstruction       *bool
	IsInvestmentOpportunity *bool
	Status                  *string
	Ordering                *string
	Page                    *int
	PageSize                *int
}

// DecodeProperties reads recognized keys from a query string. Unknown keys
// are ignored for forward compatibility.
func DecodeProperties(q url.Values) PropertyFilters {
	return PropertyFilters{
		Search:                  readString(q, "search"),
		PropertyType:            readString(q, "property_type"),
		ListingType:             readString(q, "listing_type"),
		City:                    readString(q, "city"),
		State:                   readString(q, "state"),
		MinPrice:                readFloat(q, "min_price"),
		MaxPrice:                readFloat(q, "max_price"),
		MinBedrooms:             readInt(q, "min_bedrooms"),
		MaxBedrooms:             readInt(q, "max_bedrooms"),
		MinBathrooms:            readFloat(q, "min_bathrooms"),
		MinArea:                 readFloat(q, "min_area"),
		MaxArea:                 readFloat(q, "max_area"),
		IsFeatured:              readBool(q, "is_featured"),
		IsBeachfront:            readBool(q, "is_beachfront"),
		IsNewConstruction:       readBool(q, "is_new_construction"),
		IsInvestmentOpportunity: readBool(q, "is_investment_opportunity"),
		Status:                  readString(q, "status"),
		Ordering:                readString(q, "ordering"),
		Page:                    readInt(q, "page"),
		PageSize:                readInt(q, "page_size"),
	}
}

// Encode serializes the set fields. An inverted price range is swapped so an
// impossible min > max pair is never emitted.
func (f PropertyFilters) Encode() url.Values {
	minPrice, maxPrice := f.MinPrice, f.MaxPrice
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}

	v := url.Values{}
	setString(v, "search", f.Search)
	setString(v, "property_type", f.PropertyType)
	setString(v, "listing_type", f.ListingType)
	setString(v, "city", f.City)
	setString(v, "state", f.State)
	setFloat(v, "min_price", minPrice)
	setFloat(v, "max_price", maxPrice)
	setInt(v, "min_bedrooms", f.MinBedrooms)
	setInt(v, "max_bedrooms", f.MaxBedrooms)
	setFloat(v, "min_bathrooms", f.MinBathrooms)
	setFloat(v, "min_area", f.MinArea)
	setFloat(v, "max_area", f.MaxArea)
	setBool(v, "is_featured", f.IsFeatured)
	setBool(v, "is_beachfront", f.IsBeachfront)
	setBool(v, "is_new_construction", f.IsNewConstruction)
	setBool(v, "is_investment_opportunity", f.IsInvestmentOpportunity)
	setString(v, "status", f.Status)
	setString(v, "ordering", f.Ordering)
	setInt(v, "page", f.Page)
	setInt(v, "page_size", f.PageSize)
	return v
}

// Query returns the encoded filters as a query string.
func (f PropertyFilters) Query() string {
	return f.Encode().Encode()
}

// Apply overlays these filters onto an existing query string and drops the
// page key, so narrowing results lands on page 1.
func (f PropertyFilters) Apply(base url.Values) url.Values {
	return merge(base, f.Encode(), propertyKeys)
}
