package web

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/KodeaLabs/viventa/internal/agent"
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
	"github.com/KodeaLabs/viventa/internal/property"
)

type homePage struct {
	basePage
	FeaturedProperties []property.Property
	FeaturedProjects   []project.Project
	FeaturedAgents     []agent.ListItem
}

// handleHome renders the landing page with the curated featured sections.
// A failure in either section degrades to an empty section rather than
// failing the whole page.
func (s *Server) handleHome(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		page := homePage{basePage: s.newBasePage(loc, r)}

		properties, err := s.api.FeaturedProperties(r.Context())
		if err == nil {
			page.FeaturedProperties = properties
		}
		projects, err := s.api.FeaturedProjects(r.Context())
		if err == nil {
			page.FeaturedProjects = projects
		}
		agents, err := s.api.FeaturedAgents(r.Context())
		if err == nil {
			page.FeaturedAgents = agents
		}

		s.render(w, "home.html", page)
	}
}
