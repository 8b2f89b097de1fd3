package web

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
)

type contractsPage struct {
	basePage
	Contracts []project.BuyerContract
}

// handleMyContracts renders the buyer's contract list. These pages require
// authentication; an expired token redirects to the login URL.
func (s *Server) handleMyContracts(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		contracts, err := s.api.MyContracts(r.Context())
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		s.render(w, "contracts.html", contractsPage{
			basePage:  s.newBasePage(loc, r),
			Contracts: contracts,
		})
	}
}

type contractDetailPage struct {
	basePage
	Contract *project.BuyerContract
	Payments []project.PaymentScheduleItem
	Summary  project.PaymentSummary
}

// handleMyContractDetail renders one contract with its payment schedule and
// the derived totals.
func (s *Server) handleMyContractDetail(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := ps.ByName("id")
		contract, err := s.api.MyContract(r.Context(), id)
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		payments, err := s.api.MyContractPayments(r.Context(), id)
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		s.render(w, "contract_detail.html", contractDetailPage{
			basePage: s.newBasePage(loc, r),
			Contract: contract,
			Payments: payments,
			Summary:  project.SummarizePayments(payments),
		})
	}
}
