package filter

import (
	"net/url"
	"reflect"
	"testing"
)

func strPtr(s string) *string    { return &s }
func intPtr(n int) *int          { return &n }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool       { return &b }

func TestDecodePropertiesEmptyQuery(t *testing.T) {
	f := DecodeProperties(url.Values{})
	if !reflect.DeepEqual(f, PropertyFilters{}) {
		t.Errorf("decode of empty query = %+v, want zero value", f)
	}
}

func TestDecodePropertiesEmptyValuesStayUnset(t *testing.T) {
	q := url.Values{}
	q.Set("search", "")
	q.Set("min_price", "  ")
	q.Set("city", "")

	f := DecodeProperties(q)
	if f.Search != nil || f.MinPrice != nil || f.City != nil {
		t.Errorf("empty values decoded as set: %+v", f)
	}
}

func TestDecodePropertiesIgnoresUnknownKeys(t *testing.T) {
	q := url.Values{}
	q.Set("utm_source", "newsletter")
	q.Set("search", "beach")

	f := DecodeProperties(q)
	if f.Search == nil || *f.Search != "beach" {
		t.Errorf("search = %v", f.Search)
	}
}

func TestDecodePropertiesRejectsNonNumeric(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "cheap")
	q.Set("min_bedrooms", "three")
	q.Set("page", "2.5")

	f := DecodeProperties(q)
	if f.MinPrice != nil {
		t.Errorf("min_price = %v, want nil", *f.MinPrice)
	}
	if f.MinBedrooms != nil {
		t.Errorf("min_bedrooms = %v, want nil", *f.MinBedrooms)
	}
	if f.Page != nil {
		t.Errorf("page = %v, want nil", *f.Page)
	}
}

func TestDecodePropertiesBooleanOnlyLiteralTrue(t *testing.T) {
	q := url.Values{}
	q.Set("is_featured", "false")
	q.Set("is_beachfront", "1")
	q.Set("is_new_construction", "true")

	f := DecodeProperties(q)
	if f.IsFeatured != nil {
		t.Error("is_featured=false should stay unset")
	}
	if f.IsBeachfront != nil {
		t.Error("is_beachfront=1 should stay unset")
	}
	if f.IsNewConstruction == nil || !*f.IsNewConstruction {
		t.Error("is_new_construction=true should be set")
	}
}

func TestEncodeOmitsFalseAndUnset(t *testing.T) {
	f := PropertyFilters{
		Search:       strPtr("beach house"),
		IsFeatured:   boolPtr(false),
		IsBeachfront: nil,
	}

	v := f.Encode()
	if v.Has("is_featured") {
		t.Error("false boolean must not be encoded")
	}
	if v.Has("is_beachfront") {
		t.Error("unset boolean must not be encoded")
	}
	if got := v.Get("search"); got != "beach house" {
		t.Errorf("search = %q", got)
	}
}

func TestEncodeSwapsInvertedPriceRange(t *testing.T) {
	f := PropertyFilters{
		MinPrice: floatPtr(500000),
		MaxPrice: floatPtr(100000),
	}

	v := f.Encode()
	if got := v.Get("min_price"); got != "100000" {
		t.Errorf("min_price = %q, want 100000", got)
	}
	if got := v.Get("max_price"); got != "500000" {
		t.Errorf("max_price = %q, want 500000", got)
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	f := PropertyFilters{
		Search:       strPtr("beach house"),
		PropertyType: strPtr("villa"),
		ListingType:  strPtr("sale"),
		City:         strPtr("Lecheria"),
		MinPrice:     floatPtr(100000),
		MaxPrice:     floatPtr(500000),
		MinBedrooms:  intPtr(3),
		IsBeachfront: boolPtr(true),
		Page:         intPtr(2),
	}

	decoded := DecodeProperties(f.Encode())
	if !reflect.DeepEqual(decoded, f) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, f)
	}
}

func TestRoundTripStability(t *testing.T) {
	q := url.Values{}
	q.Set("search", "penthouse")
	q.Set("listing_type", "rent")
	q.Set("min_bedrooms", "2")
	q.Set("is_featured", "true")

	once := DecodeProperties(q).Encode()
	twice := DecodeProperties(once).Encode()
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("encoding is not stable:\n once %v\ntwice %v", once, twice)
	}
}

func TestApplyDropsPage(t *testing.T) {
	base := url.Values{}
	base.Set("page", "3")
	base.Set("search", "beach")

	f := DecodeProperties(base)
	f.PropertyType = strPtr("villa")
	f.Page = nil

	v := f.Apply(base)
	if v.Has("page") {
		t.Errorf("page survived apply: %v", v)
	}
	if v.Get("property_type") != "villa" || v.Get("search") != "beach" {
		t.Errorf("applied query = %v", v)
	}
}

func TestApplyClearsRemovedFilters(t *testing.T) {
	base := url.Values{}
	base.Set("city", "Caracas")
	base.Set("min_price", "100000")

	f := DecodeProperties(base)
	f.City = nil

	v := f.Apply(base)
	if v.Has("city") {
		t.Error("cleared filter still present after apply")
	}
	if v.Get("min_price") != "100000" {
		t.Errorf("min_price = %q", v.Get("min_price"))
	}
}

func TestApplyPreservesUnrecognizedKeys(t *testing.T) {
	base := url.Values{}
	base.Set("utm_source", "newsletter")

	v := PropertyFilters{Search: strPtr("finca")}.Apply(base)
	if v.Get("utm_source") != "newsletter" {
		t.Errorf("unrecognized key dropped: %v", v)
	}
}

func TestSaleListingSearchQuery(t *testing.T) {
	f := PropertyFilters{
		Search:      strPtr("beach house"),
		ListingType: strPtr("sale"),
	}
	if got := f.Query(); got != "listing_type=sale&search=beach+house" {
		t.Errorf("Query() = %q", got)
	}
}
