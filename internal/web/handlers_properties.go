package web

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/KodeaLabs/viventa/internal/api"
	"github.com/KodeaLabs/viventa/internal/filter"
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/inquiry"
	"github.com/KodeaLabs/viventa/internal/property"
	"github.com/KodeaLabs/viventa/internal/validator"
)

type propertiesPage struct {
	basePage
	Properties []property.Property
	Meta       *api.Meta
	Filters    filter.PropertyFilters
	Cities     []string
	Types      []property.Type
	PrevLink   string
	NextLink   string
}

// handleProperties renders the listing search page. An empty result set and
// a failed fetch are distinct states: the first renders the no-results
// section, the second the error section with results suppressed.
func (s *Server) handleProperties(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		f := filter.DecodeProperties(r.URL.Query())
		page := propertiesPage{
			basePage: s.newBasePage(loc, r),
			Filters:  f,
			Types:    property.Types,
		}

		properties, meta, err := s.api.ListProperties(r.Context(), f)
		if err != nil {
			page.Error = errorMessage(loc, err)
		} else {
			page.Properties = properties
			page.Meta = meta
			if meta != nil && meta.HasPrevious {
				page.PrevLink = paginationLink(r.URL, meta.Page-1)
			}
			if meta != nil && meta.HasNext {
				page.NextLink = paginationLink(r.URL, meta.Page+1)
			}
		}

		// Filter dropdown data is best effort.
		if cities, err := s.api.Cities(r.Context()); err == nil {
			page.Cities = cities
		}

		s.render(w, "properties.html", page)
	}
}

// handlePropertyFilter applies a submitted filter form to the current URL
// state and redirects to the canonical listing URL. Applying filters always
// resets pagination.
func (s *Server) handlePropertyFilter(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		f := filter.DecodeProperties(r.PostForm)
		merged := f.Apply(refererQuery(r))

		target := pagePath(loc, "properties")
		if encoded := merged.Encode(); encoded != "" {
			target += "?" + encoded
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

type propertyDetailPage struct {
	basePage
	Property       *property.Property
	InquiryForm    inquiry.Form
	FormErrors     map[string]string
	InquirySent    bool
	ContactMethods []inquiry.ContactMethod
}

func (s *Server) handlePropertyDetail(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		p, err := s.api.GetProperty(r.Context(), ps.ByName("slug"))
		if s.handleAPIError(w, r, loc, err) {
			return
		}

		s.render(w, "property_detail.html", propertyDetailPage{
			basePage:       s.newBasePage(loc, r),
			Property:       p,
			InquirySent:    r.URL.Query().Get("inquiry") == "sent",
			ContactMethods: []inquiry.ContactMethod{inquiry.ContactEmail, inquiry.ContactPhone, inquiry.ContactWhatsApp},
		})
	}
}

// handleInquiryPost validates and submits a buyer inquiry. Validation
// failures re-render the detail page with the form and field errors intact.
func (s *Server) handleInquiryPost(loc i18n.Locale) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		slug := r.PostForm.Get("slug")
		if slug == "" {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		form := inquiry.Form{
			Property:               r.PostForm.Get("property"),
			FullName:               r.PostForm.Get("full_name"),
			Email:                  r.PostForm.Get("email"),
			Phone:                  r.PostForm.Get("phone"),
			Country:                r.PostForm.Get("country"),
			Message:                r.PostForm.Get("message"),
			PreferredContactMethod: inquiry.ContactMethod(r.PostForm.Get("preferred_contact_method")),
			PreferredLanguage:      r.PostForm.Get("preferred_language"),
		}
		if form.PreferredLanguage == "" {
			form.PreferredLanguage = string(loc)
		}

		v := validator.New()
		form.Validate(v)
		if !v.Valid() {
			p, err := s.api.GetProperty(r.Context(), slug)
			if s.handleAPIError(w, r, loc, err) {
				return
			}
			w.WriteHeader(http.StatusUnprocessableEntity)
			s.render(w, "property_detail.html", propertyDetailPage{
				basePage:       s.newBasePage(loc, r),
				Property:       p,
				InquiryForm:    form,
				FormErrors:     v.Errors,
				ContactMethods: []inquiry.ContactMethod{inquiry.ContactEmail, inquiry.ContactPhone, inquiry.ContactWhatsApp},
			})
			return
		}

		if _, err := s.api.CreateInquiry(r.Context(), &form); err != nil {
			redirectWithError(w, r, pagePath(loc, "properties", slug), loc, err)
			return
		}

		http.Redirect(w, r, pagePath(loc, "properties", slug)+"?inquiry=sent", http.StatusSeeOther)
	}
}
