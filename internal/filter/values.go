// Package filter maps listing-page filter state to and from URL query
// strings. A nil field means "unconstrained": empty values are never decoded
// into fields and never serialized back out, so unchecked filters stay out
// of the URL entirely.
package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// readString returns the query value for key, or nil when absent or empty.
func readString(q url.Values, key string) *string {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil
	}
	return &s
}

// readInt parses an integer query value. Non-numeric input leaves the field
// unset rather than propagating a bad value.
func readInt(q url.Values, key string) *int {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// readFloat parses a numeric query value, nil on absence or parse failure.
func readFloat(q url.Values, key string) *float64 {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// readBool recognizes only the literal "true"; anything else is unset.
func readBool(q url.Values, key string) *bool {
	if strings.TrimSpace(q.Get(key)) == "true" {
		b := true
		return &b
	}
	return nil
}

func setString(v url.Values, key string, p *string) {
	if p != nil && *p != "" {
		v.Set(key, *p)
	}
}

func setInt(v url.Values, key string, p *int) {
	if p != nil {
		v.Set(key, strconv.Itoa(*p))
	}
}

func setFloat(v url.Values, key string, p *float64) {
	if p != nil {
		v.Set(key, strconv.FormatFloat(*p, 'f', -1, 64))
	}
}

// setBool writes the literal "true" for set-and-true values only; false
// booleans are omitted so unchecked filters do not appear in the URL.
func setBool(v url.Values, key string, p *bool) {
	if p != nil && *p {
		v.Set(key, "true")
	}
}

// merge overlays encoded onto a copy of base for the given keys: each key is
// set when present in encoded and deleted otherwise. Keys outside the list
// pass through untouched, so unrecognized query parameters survive an apply.
func merge(base, encoded url.Values, keys []string) url.Values {
	out := url.Values{}
	for k, vs := range base {
		out[k] = append([]string(nil), vs...)
	}
	for _, key := range keys {
		if v := encoded.Get(key); v != "" {
			out.Set(key, v)
		} else {
			out.Del(key)
		}
	}
	// Applying filters always returns to the first page.
	out.Del("page")
	return out
}
