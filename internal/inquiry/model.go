// Package inquiry models buyer inquiries submitted through property pages
// and the statuses agents move them through.
package inquiry

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/validator"
)

// Status is the triage status of an inquiry in the agent dashboard.
type Status string

const (
	StatusNew        Status = "new"
	StatusContacted  Status = "contacted"
	StatusInProgress Status = "in_progress"
	StatusQualified  Status = "qualified"
	StatusClosed     Status = "closed"
	StatusSpam       Status = "spam"
)

var statusLabels = map[Status]i18n.Label{
	StatusNew:        {EN: "New", ES: "Nueva"},
	StatusContacted:  {EN: "Contacted", ES: "Contactada"},
	StatusInProgress: {EN: "In Progress", ES: "En Proceso"},
	StatusQualified:  {EN: "Qualified", ES: "Calificada"},
	StatusClosed:     {EN: "Closed", ES: "Cerrada"},
	StatusSpam:       {EN: "Spam", ES: "Spam"},
}

// Statuses lists the triage statuses in workflow order.
var Statuses = []Status{
	StatusNew,
	StatusContacted,
	StatusInProgress,
	StatusQualified,
	StatusClosed,
	StatusSpam,
}

// ValidStatus reports whether s is a known triage status.
func ValidStatus(s Status) bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the localized display name, or the raw string.
func (s Status) Label(loc i18n.Locale) string {
	if l, ok := statusLabels[s]; ok {
		return l.In(loc)
	}
	return string(s)
}

// ContactMethod is how the buyer prefers to be reached.
type ContactMethod string

const (
	ContactEmail    ContactMethod = "email"
	ContactPhone    ContactMethod = "phone"
	ContactWhatsApp ContactMethod = "whatsapp"
)

// Inquiry is a buyer inquiry as returned by the agent endpoints.
type Inquiry struct {
	ID                     uuid.UUID     `json:"id"`
	PropertyID             uuid.UUID     `json:"property_id"`
	PropertyTitle          string        `json:"property_title"`
	FullName               string        `json:"full_name"`
	Email                  string        `json:"email"`
	Phone                  string        `json:"phone"`
	Country                string        `json:"country"`
	Message                string        `json:"message"`
	PreferredContactMethod ContactMethod `json:"preferred_contact_method"`
	PreferredLanguage      string        `json:"preferred_language"`
	BudgetMin              *float64      `json:"budget_min"`
	BudgetMax              *float64      `json:"budget_max"`
	Status                 Status        `json:"status"`
	InternalNotes          string        `json:"internal_notes,omitempty"`
	CreatedAt              time.Time     `json:"created_at"`
}

// Form is the inquiry submission payload.
type Form struct {
	Property               string        `json:"property"`
	FullName               string        `json:"full_name"`
	Email                  string        `json:"email"`
	Phone                  string        `json:"phone,omitempty"`
	Country                string        `json:"country,omitempty"`
	Message                string        `json:"message"`
	PreferredContactMethod ContactMethod `json:"preferred_contact_method"`
	PreferredLanguage      string        `json:"preferred_language"`
	BudgetMin              *float64      `json:"budget_min,omitempty"`
	BudgetMax              *float64      `json:"budget_max,omitempty"`
}

// Validate checks the form and normalizes the budget range: an inverted
// min/max pair is swapped rather than rejected, matching the filter rules.
func (f *Form) Validate(v *validator.Validator) {
	v.Check(f.Property != "", "property", "must be provided")
	v.Check(f.FullName != "", "full_name", "must be provided")
	v.Check(f.Email != "", "email", "must be provided")
	if f.Email != "" {
		v.Check(validator.Matches(f.Email, validator.EmailRX), "email", "must be a valid email address")
	}
	v.Check(f.Message != "", "message", "must be provided")
	v.Check(
		validator.PermittedValue(f.PreferredContactMethod, ContactEmail, ContactPhone, ContactWhatsApp),
		"preferred_contact_method", "must be email, phone or whatsapp",
	)
	v.Check(
		validator.PermittedValue(f.PreferredLanguage, "en", "es"),
		"preferred_language", "must be en or es",
	)

	if f.BudgetMin != nil && f.BudgetMax != nil && *f.BudgetMin > *f.BudgetMax {
		f.BudgetMin, f.BudgetMax = f.BudgetMax, f.BudgetMin
	}
}
