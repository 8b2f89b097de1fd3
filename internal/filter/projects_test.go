package filter

import (
	"net/url"
	"reflect"
	"testing"
)

func TestProjectRoundTrip(t *testing.T) {
	f := ProjectFilters{
		Search:     strPtr("marina"),
		City:       strPtr("Porlamar"),
		Status:     strPtr("presale"),
		MinPrice:   floatPtr(80000),
		IsFeatured: boolPtr(true),
		Page:       intPtr(4),
	}

	decoded := DecodeProjects(f.Encode())
	if !reflect.DeepEqual(decoded, f) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, f)
	}
}

func TestProjectEncodeSwapsPriceRange(t *testing.T) {
	f := ProjectFilters{MinPrice: floatPtr(300000), MaxPrice: floatPtr(90000)}
	v := f.Encode()
	if v.Get("min_price") != "90000" || v.Get("max_price") != "300000" {
		t.Errorf("encoded range = %q..%q", v.Get("min_price"), v.Get("max_price"))
	}
}

func TestProjectApplyDropsPage(t *testing.T) {
	base := url.Values{}
	base.Set("page", "2")
	base.Set("status", "presale")

	f := DecodeProjects(base)
	f.City = strPtr("Porlamar")
	f.Page = nil

	v := f.Apply(base)
	if v.Has("page") {
		t.Errorf("page survived apply: %v", v)
	}
}

func TestAssetRoundTrip(t *testing.T) {
	f := AssetFilters{
		AssetType:   strPtr("apartment"),
		Status:      strPtr("available"),
		Floor:       intPtr(3),
		MinArea:     floatPtr(65.5),
		MinBedrooms: intPtr(2),
	}

	decoded := DecodeAssets(f.Encode())
	if !reflect.DeepEqual(decoded, f) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, f)
	}
}

func TestAssetEncodeFormatsFloats(t *testing.T) {
	f := AssetFilters{MinArea: floatPtr(65.5), MaxPrice: floatPtr(120000)}
	v := f.Encode()
	if got := v.Get("min_area"); got != "65.5" {
		t.Errorf("min_area = %q", got)
	}
	if got := v.Get("max_price"); got != "120000" {
		t.Errorf("max_price = %q", got)
	}
}
