package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/KodeaLabs/viventa/internal/api"
	"github.com/KodeaLabs/viventa/internal/filter"
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
	"github.com/KodeaLabs/viventa/internal/transition"
)

type adminProjectsPage struct {
	basePage
	Projects []project.Project
	Meta     *api.Meta
	Filters  filter.ProjectFilters
}

func (s *Server) handleAdminProjects(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		f := filter.DecodeProjects(r.URL.Query())
		projects, meta, err := s.api.AdminListProjects(r.Context(), f)
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		s.render(w, "admin_projects.html", adminProjectsPage{
			basePage: s.newBasePage(loc, r),
			Projects: projects,
			Meta:     meta,
			Filters:  f,
		})
	}
}

type adminProjectDetailPage struct {
	basePage
	Project   *project.Project
	Actions   []project.Action
	Tab       string
	Assets    []project.SellableAsset
	Contracts []project.BuyerContract
	Busy      bool
}

// handleAdminProjectDetail renders the developer's project workspace. The
// action buttons come from the status vocabulary; the backend remains the
// authority on whether a transition is actually allowed.
func (s *Server) handleAdminProjectDetail(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := ps.ByName("id")
		p, err := s.api.AdminGetProject(r.Context(), id)
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		tab := r.URL.Query().Get("tab")
		switch tab {
		case "assets", "contracts":
		default:
			tab = "overview"
		}

		page := adminProjectDetailPage{
			basePage: s.newBasePage(loc, r),
			Project:  p,
			Actions:  p.Status.AllowedActions(),
			Tab:      tab,
			Busy:     s.invoker.Busy("project:" + id),
		}

		switch tab {
		case "contracts":
			if contracts, err := s.api.AdminProjectContracts(r.Context(), id); err == nil {
				page.Contracts = contracts
			}
		case "assets":
			if assets, _, err := s.api.AdminProjectAssets(r.Context(), id, filter.DecodeAssets(r.URL.Query())); err == nil {
				page.Assets = assets
			}
		}

		s.render(w, "admin_project_detail.html", page)
	}
}

// invokeTransition runs a guarded transition and redirects back to the
// entity page. A duplicate submission while one is in flight is dropped
// silently; the redirect shows the current state either way.
func (s *Server) invokeTransition(w http.ResponseWriter, r *http.Request, loc i18n.Locale, key, back string, do func(ctx context.Context) error, refresh transition.RefreshFunc) {
	err := s.invoker.Invoke(r.Context(), key, do, refresh)
	switch {
	case err == nil, errors.Is(err, transition.ErrInFlight):
		http.Redirect(w, r, back, http.StatusSeeOther)
	case errors.Is(err, api.ErrUnauthenticated):
		http.Redirect(w, r, s.config.LoginURL, http.StatusSeeOther)
	case errors.Is(err, api.ErrNotFound):
		s.renderNotFound(w, loc)
	default:
		redirectWithError(w, r, back, loc, err)
	}
}

func (s *Server) handleProjectTransition(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := ps.ByName("id")
		action := ps.ByName("action")
		back := pagePath(loc, "admin", "projects", id)

		s.invokeTransition(w, r, loc, "project:"+id, back,
			func(ctx context.Context) error {
				_, err := s.api.TransitionProject(ctx, id, action)
				return err
			},
			func(ctx context.Context) error {
				// Re-read so the redirect renders server state, never a
				// locally assumed status.
				_, err := s.api.AdminGetProject(ctx, id)
				return err
			},
		)
	}
}

func (s *Server) handleAssetTransition(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := ps.ByName("id")
		action := ps.ByName("action")
		back := r.Header.Get("Referer")
		if back == "" {
			back = pagePath(loc, "admin", "projects")
		}

		s.invokeTransition(w, r, loc, "asset:"+id, back,
			func(ctx context.Context) error {
				_, err := s.api.TransitionAsset(ctx, id, action)
				return err
			},
			nil,
		)
	}
}

func (s *Server) handleContractTransition(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := ps.ByName("id")
		action := ps.ByName("action")
		back := r.Header.Get("Referer")
		if back == "" {
			back = pagePath(loc, "admin", "projects")
		}

		s.invokeTransition(w, r, loc, "contract:"+id, back,
			func(ctx context.Context) error {
				_, err := s.api.TransitionContract(ctx, id, action)
				return err
			},
			nil,
		)
	}
}
