// Package web provides the HTTP server and handlers for the Viventa web UI.
// All data comes from the marketplace API; the server renders it and forwards
// mutations, never persisting anything itself.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/KodeaLabs/viventa/internal/api"
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/logging"
	"github.com/KodeaLabs/viventa/internal/transition"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config carries the server settings resolved by the serve command.
type Config struct {
	// LoginURL is the external identity provider's login entry point.
	// Unauthenticated requests to private pages redirect here.
	LoginURL string

	Limiter struct {
		RPS     float64
		Burst   int
		Enabled bool
	}
}

// Server is the web UI HTTP server.
type Server struct {
	api       *api.Client
	invoker   *transition.Invoker
	templates *template.Template
	router    *httprouter.Router
	config    Config
}

// NewServer creates a web server backed by the given API client.
func NewServer(client *api.Client, config Config) (*Server, error) {
	funcMap := template.FuncMap{
		"formatPrice":    tmplFormatPrice,
		"formatOptPrice": tmplFormatOptPrice,
		"formatArea":     tmplFormatArea,
		"formatOptInt":   tmplFormatOptInt,
		"optStr":         tmplOptStr,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		api:       client,
		invoker:   transition.NewInvoker(),
		templates: tmpl,
		router:    httprouter.New(),
		config:    config,
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.router.Handler(http.MethodGet, "/static/*filepath",
		http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.router.HandlerFunc(http.MethodGet, "/health", s.handleHealth)
	s.router.HandlerFunc(http.MethodGet, "/", s.handleRoot)

	// Locales are a closed set, so each page is registered once per locale
	// with the locale captured. This keeps the router free of wildcard
	// conflicts with /static/ and /health.
	for _, loc := range i18n.Supported {
		s.registerLocale(loc)
	}

	return s, nil
}

func (s *Server) registerLocale(loc i18n.Locale) {
	prefix := "/" + string(loc)
	get := func(path string, h func(i18n.Locale) httprouter.Handle) {
		s.router.GET(prefix+path, h(loc))
	}
	post := func(path string, h func(i18n.Locale) httprouter.Handle) {
		s.router.POST(prefix+path, h(loc))
	}

	get("", s.handleHome)
	get("/properties", s.handleProperties)
	post("/filters/properties", s.handlePropertyFilter)
	get("/properties/:slug", s.handlePropertyDetail)
	post("/inquiries", s.handleInquiryPost)

	get("/projects", s.handleProjects)
	get("/projects/:slug", s.handleProjectDetail)

	get("/agents", s.handleAgents)
	get("/agents/:slug", s.handleAgentDetail)

	get("/my/contracts", s.handleMyContracts)
	get("/my/contracts/:id", s.handleMyContractDetail)

	get("/admin/projects", s.handleAdminProjects)
	get("/admin/projects/:id", s.handleAdminProjectDetail)
	post("/admin/projects/:id/transition/:action", s.handleProjectTransition)
	post("/admin/assets/:id/transition/:action", s.handleAssetTransition)
	post("/admin/contracts/:id/transition/:action", s.handleContractTransition)
}

// ServeHTTP implements http.Handler with the standard middleware chain.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler().ServeHTTP(w, r)
}

func (s *Server) handler() http.Handler {
	return s.recoverPanic(s.rateLimit(logging.RequestLogger(s.router)))
}

// ListenAndServe starts the HTTP server on the given port.
func (s *Server) ListenAndServe(port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	slog.Info("starting web server", "addr", srv.Addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

// handleRoot redirects to the negotiated locale's home page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	loc := i18n.Negotiate(r.Header.Get("Accept-Language"))
	http.Redirect(w, r, "/"+string(loc), http.StatusSeeOther)
}

// Template helper functions

func tmplFormatPrice(f float64) string {
	whole := int64(f)
	str := fmt.Sprintf("%d", whole)
	if len(str) > 3 {
		var parts []string
		for len(str) > 3 {
			parts = append([]string{str[len(str)-3:]}, parts...)
			str = str[:len(str)-3]
		}
		str = strings.Join(append([]string{str}, parts...), ",")
	}
	return "$" + str
}

func tmplFormatOptPrice(f *float64) string {
	if f == nil {
		return "—"
	}
	return tmplFormatPrice(*f)
}

func tmplFormatArea(f *float64) string {
	if f == nil {
		return "—"
	}
	if *f == float64(int64(*f)) {
		return fmt.Sprintf("%d m²", int64(*f))
	}
	return fmt.Sprintf("%.1f m²", *f)
}

func tmplFormatOptInt(i *int) string {
	if i == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *i)
}

func tmplOptStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
