package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/KodeaLabs/viventa/internal/api"
)

func newTestServer(t *testing.T, backend http.Handler) *Server {
	t.Helper()
	apiServer := httptest.NewServer(backend)
	t.Cleanup(apiServer.Close)

	var config Config
	config.LoginURL = "https://id.example.com/login"
	config.Limiter.Enabled = false

	s, err := NewServer(api.New(apiServer.URL), config)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func postForm(t *testing.T, s *Server, path, referer string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestRootRedirectsToNegotiatedLocale(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "es-VE,es;q=0.9")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/es" {
		t.Errorf("Location = %q, want /es", got)
	}
}

func TestPropertiesPagePopulated(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/properties/cities") {
			w.Write([]byte(`{"success": true, "data": ["Lecheria"]}`))
			return
		}
		w.Write([]byte(`{
			"success": true,
			"data": [{"slug": "casa-playa", "title": "Casa Playa", "price": 250000, "status": "active", "listing_type": "sale"}],
			"meta": {"page": 1, "page_size": 12, "total_pages": 1, "total_count": 1, "has_next": false, "has_previous": false}
		}`))
	}))

	rec := get(t, s, "/en/properties")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Casa Playa") {
		t.Error("listing title missing from page")
	}
	if !strings.Contains(body, "$250,000") {
		t.Error("formatted price missing from page")
	}
	if strings.Contains(body, "No properties match") {
		t.Error("empty state rendered alongside results")
	}
}

func TestPropertiesPageEmptyAndErrorAreDistinct(t *testing.T) {
	empty := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": []}`))
	}))

	rec := get(t, empty, "/en/properties")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No properties match") {
		t.Error("empty result should render the no-results state")
	}
	if strings.Contains(rec.Body.String(), "error-state") {
		t.Error("empty result rendered as an error")
	}

	failing := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "error": {"message": "database unavailable"}}`))
	}))

	rec = get(t, failing, "/en/properties")
	body := rec.Body.String()
	if !strings.Contains(body, "database unavailable") {
		t.Error("server error message missing from error state")
	}
	if strings.Contains(body, "No properties match") {
		t.Error("error state must not render the no-results message")
	}
}

func TestPropertyFilterRedirectResetsPage(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	form := url.Values{}
	form.Set("search", "beach house")
	form.Set("listing_type", "sale")
	form.Set("is_featured", "false")

	rec := postForm(t, s, "/en/filters/properties", "https://viventa.example.com/en/properties?page=3&city=Caracas&utm_source=newsletter", form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}

	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parsing redirect: %v", err)
	}
	q := loc.Query()
	if loc.Path != "/en/properties" {
		t.Errorf("redirect path = %q", loc.Path)
	}
	if q.Has("page") {
		t.Error("page survived filter apply")
	}
	if q.Get("search") != "beach house" || q.Get("listing_type") != "sale" {
		t.Errorf("filters missing from redirect: %v", q)
	}
	if q.Has("is_featured") {
		t.Error("false boolean serialized")
	}
	if q.Has("city") {
		t.Error("filter cleared in the form should be removed from the URL")
	}
	if q.Get("utm_source") != "newsletter" {
		t.Error("unrecognized query key was dropped")
	}
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	rec := get(t, s, "/en/my/contracts")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "https://id.example.com/login" {
		t.Errorf("Location = %q", got)
	}
}

func TestMissingPropertyRenders404(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := get(t, s, "/en/properties/no-such-listing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404") {
		t.Error("not-found page missing")
	}
}

func TestProjectTransitionPostsThenRefetches(t *testing.T) {
	var calls []string
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"success": true, "data": {"status": "presale"}}`))
		default:
			w.Write([]byte(`{"success": true, "data": {"title": "Marina Bay", "status": "presale"}}`))
		}
	}))

	rec := postForm(t, s, "/en/admin/projects/42/transition/start_presale", "", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/en/admin/projects/42" {
		t.Errorf("Location = %q", got)
	}

	want := []string{
		"POST /admin/projects/42/start_presale/",
		"GET /admin/projects/42/",
	}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("backend calls = %v, want %v", calls, want)
	}
}

func TestRejectedTransitionCarriesServerMessage(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success": false, "error": {"message": "cannot start construction from draft"}}`))
	}))

	rec := postForm(t, s, "/en/admin/projects/42/transition/start_construction", "", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parsing redirect: %v", err)
	}
	if got := loc.Query().Get("error"); got != "cannot start construction from draft" {
		t.Errorf("error message = %q", got)
	}
}

func TestContractDetailSummarizesPayments(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/payments/") {
			w.Write([]byte(`{"success": true, "data": [
				{"due_date": "2026-01-15", "amount_usd": 1000, "concept": "initial", "status": "paid"},
				{"due_date": "2026-02-15", "amount_usd": 2000, "concept": "monthly", "status": "pending"},
				{"due_date": "2026-03-15", "amount_usd": 500, "concept": "monthly", "status": "overdue"}
			]}`))
			return
		}
		w.Write([]byte(`{"success": true, "data": {
			"project_title": "Marina Bay", "total_price": 3500, "status": "active",
			"asset": {"identifier": "A-301"}
		}}`))
	}))

	rec := get(t, s, "/en/my/contracts/c1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"$3,500", "$1,000", "$2,500"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary amount %s missing from page", want)
		}
	}
}

func TestRateLimitRejectsWhenExceeded(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	s.config.Limiter.Enabled = true
	s.config.Limiter.RPS = 1
	s.config.Limiter.Burst = 1

	handler := s.rateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/en/properties", nil)
	req.RemoteAddr = "10.0.0.1:5000"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := get(t, s, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "ok") {
		t.Errorf("body = %q", body)
	}
}
