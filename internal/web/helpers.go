package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KodeaLabs/viventa/internal/api"
	"github.com/KodeaLabs/viventa/internal/i18n"
)

// basePage carries the fields every template needs.
type basePage struct {
	Locale i18n.Locale
	Path   string
	// Error holds an inline failure message for the current page, either
	// from a failed fetch or carried over a redirect.
	Error string
}

// Spanish reports whether the page renders in Spanish, for template text.
func (p basePage) Spanish() bool {
	return p.Locale == i18n.Spanish
}

func (s *Server) newBasePage(loc i18n.Locale, r *http.Request) basePage {
	return basePage{
		Locale: loc,
		Path:   r.URL.Path,
		Error:  r.URL.Query().Get("error"),
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("rendering template", "template", name, "error", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// handleAPIError maps API failures to UI behavior: missing authentication
// redirects to the identity provider, a missing resource renders the 404
// page, everything else renders the error page inline. Returns true when the
// response has been written.
func (s *Server) handleAPIError(w http.ResponseWriter, r *http.Request, loc i18n.Locale, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, api.ErrUnauthenticated):
		http.Redirect(w, r, s.config.LoginURL, http.StatusSeeOther)
		return true
	case errors.Is(err, api.ErrNotFound):
		s.renderNotFound(w, loc)
		return true
	default:
		slog.Error("api request failed", "path", r.URL.Path, "error", err)
		w.WriteHeader(http.StatusBadGateway)
		page := basePage{Locale: loc, Path: r.URL.Path, Error: errorMessage(loc, err)}
		s.render(w, "error.html", page)
		return true
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter, loc i18n.Locale) {
	w.WriteHeader(http.StatusNotFound)
	s.render(w, "notfound.html", basePage{Locale: loc})
}

// errorMessage prefers the server-provided message, falling back to a
// localized generic one.
func errorMessage(loc i18n.Locale, err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return i18n.Label{
		EN: "Something went wrong. Please try again.",
		ES: "Algo salió mal. Por favor intenta de nuevo.",
	}.In(loc)
}

// redirectWithError sends the browser back to a page with the failure
// message carried in the query string.
func redirectWithError(w http.ResponseWriter, r *http.Request, target string, loc i18n.Locale, err error) {
	q := url.Values{}
	q.Set("error", errorMessage(loc, err))
	http.Redirect(w, r, target+"?"+q.Encode(), http.StatusSeeOther)
}

// refererQuery extracts the query string of the page the form was submitted
// from, so filter submissions can be merged into the current URL state.
func refererQuery(r *http.Request) url.Values {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return url.Values{}
	}
	u, err := url.Parse(ref)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

func pagePath(loc i18n.Locale, parts ...string) string {
	path := "/" + string(loc)
	for _, p := range parts {
		path += "/" + p
	}
	return path
}

func atoiOK(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// paginationLink rebuilds the current query with a different page number.
func paginationLink(base *url.URL, page int) string {
	q := base.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", fmt.Sprintf("%d", page))
	}
	if encoded := q.Encode(); encoded != "" {
		return base.Path + "?" + encoded
	}
	return base.Path
}
