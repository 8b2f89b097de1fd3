package web

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/KodeaLabs/viventa/internal/agent"
	"github.com/KodeaLabs/viventa/internal/api"
	"github.com/KodeaLabs/viventa/internal/i18n"
)

type agentsPage struct {
	basePage
	Agents   []agent.ListItem
	Meta     *api.Meta
	Search   string
	PrevLink string
	NextLink string
}

func (s *Server) handleAgents(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		q := r.URL.Query()
		search := q.Get("search")
		pageNum := 1
		if n := q.Get("page"); n != "" {
			// Bad page numbers fall back to the first page.
			if parsed, ok := atoiOK(n); ok && parsed > 0 {
				pageNum = parsed
			}
		}

		page := agentsPage{
			basePage: s.newBasePage(loc, r),
			Search:   search,
		}

		agents, meta, err := s.api.ListAgents(r.Context(), search, pageNum)
		if err != nil {
			page.Error = errorMessage(loc, err)
		} else {
			page.Agents = agents
			page.Meta = meta
			if meta != nil && meta.HasPrevious {
				page.PrevLink = paginationLink(r.URL, meta.Page-1)
			}
			if meta != nil && meta.HasNext {
				page.NextLink = paginationLink(r.URL, meta.Page+1)
			}
		}

		s.render(w, "agents.html", page)
	}
}

type agentDetailPage struct {
	basePage
	Agent *agent.Profile
}

func (s *Server) handleAgentDetail(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		p, err := s.api.GetAgent(r.Context(), ps.ByName("slug"))
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		s.render(w, "agent_detail.html", agentDetailPage{
			basePage: s.newBasePage(loc, r),
			Agent:    p,
		})
	}
}
