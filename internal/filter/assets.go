package filter

import "net/url"

var assetKeys = []string{
	"asset_type",
	"status",
	"floor",
	"min_price",
	"max_price",
	"min_area",
	"max_area",
	"min_bedrooms",
	"page",
}

// AssetFilters is the filter state for a project's sellable-asset list.
type AssetFilters struct {
	AssetType   *string
	Status      *string
	Floor       *int
	MinPrice    *float64
	MaxPrice    *float64
	MinArea     *float64
	MaxArea     *float64
	MinBedrooms *int
	Page        *int
}

// DecodeAssets reads recognized keys from a query string.
func DecodeAssets(q url.Values) AssetFilters {
	return AssetFilters{
		AssetType:   readString(q, "asset_type"),
		Status:      readString(q, "status"),
		Floor:       readInt(q, "floor"),
		MinPrice:    readFloat(q, "min_price"),
		MaxPrice:    readFloat(q, "max_price"),
		MinArea:     readFloat(q, "min_area"),
		MaxArea:     readFloat(q, "max_area"),
		MinBedrooms: readInt(q, "min_bedrooms"),
		Page:        readInt(q, "page"),
	}
}

// Encode serializes the set fields, swapping an inverted price range.
func (f AssetFilters) Encode() url.Values {
	minPrice, maxPrice := f.MinPrice, f.MaxPrice
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}

	v := url.Values{}
	setString(v, "asset_type", f.AssetType)
	setString(v, "status", f.Status)
	setInt(v, "floor", f.Floor)
	setFloat(v, "min_price", minPrice)
	setFloat(v, "max_price", maxPrice)
	setFloat(v, "min_area", f.MinArea)
	setFloat(v, "max_area", f.MaxArea)
	setInt(v, "min_bedrooms", f.MinBedrooms)
	setInt(v, "page", f.Page)
	return v
}

// Query returns the encoded filters as a query string.
func (f AssetFilters) Query() string {
	return f.Encode().Encode()
}

// Apply overlays these filters onto an existing query string, dropping page.
func (f AssetFilters) Apply(base url.Values) url.Values {
	return merge(base, f.Encode(), assetKeys)
}
