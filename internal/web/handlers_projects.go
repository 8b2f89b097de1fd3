package web

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/KodeaLabs/viventa/internal/api"
	"github.com/KodeaLabs/viventa/internal/filter"
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
)

type projectsPage struct {
	basePage
	Projects []project.Project
	Meta     *api.Meta
	Filters  filter.ProjectFilters
	PrevLink string
	NextLink string
}

func (s *Server) handleProjects(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		f := filter.DecodeProjects(r.URL.Query())
		page := projectsPage{
			basePage: s.newBasePage(loc, r),
			Filters:  f,
		}

		projects, meta, err := s.api.ListProjects(r.Context(), f)
		if err != nil {
			page.Error = errorMessage(loc, err)
		} else {
			page.Projects = projects
			page.Meta = meta
			if meta != nil && meta.HasPrevious {
				page.PrevLink = paginationLink(r.URL, meta.Page-1)
			}
			if meta != nil && meta.HasNext {
				page.NextLink = paginationLink(r.URL, meta.Page+1)
			}
		}

		s.render(w, "projects.html", page)
	}
}

type projectDetailPage struct {
	basePage
	Project      *project.Project
	Assets       []project.SellableAsset
	AssetFilters filter.AssetFilters
	Updates      []project.Update
}

// handleProjectDetail renders a public project page with its available
// units and progress updates. Asset and update fetches degrade to empty
// sections instead of failing the page.
func (s *Server) handleProjectDetail(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		slug := ps.ByName("slug")
		p, err := s.api.GetProject(r.Context(), slug)
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		page := projectDetailPage{
			basePage:     s.newBasePage(loc, r),
			Project:      p,
			AssetFilters: filter.DecodeAssets(r.URL.Query()),
		}

		if assets, _, err := s.api.ProjectAssets(r.Context(), slug, page.AssetFilters); err == nil {
			page.Assets = assets
		}
		if updates, err := s.api.ProjectUpdates(r.Context(), slug); err == nil {
			page.Updates = updates
		}

		s.render(w, "project_detail.html", page)
	}
}
