package project

import (
	"github.com/gofrs/uuid/v5"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

// PaymentStatus tracks whether a scheduled payment has been settled.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
	PaymentWaived  PaymentStatus = "waived"
)

var paymentStatusLabels = map[PaymentStatus]i18n.Label{
	PaymentPending: {EN: "Pending", ES: "Pendiente"},
	PaymentPaid:    {EN: "Paid", ES: "Pagado"},
	PaymentOverdue: {EN: "Overdue", ES: "Vencido"},
	PaymentWaived:  {EN: "Waived", ES: "Exonerado"},
}

var paymentStatusBadges = map[PaymentStatus]string{
	PaymentPending: "badge-neutral",
	PaymentPaid:    "badge-green",
	PaymentOverdue: "badge-red",
	PaymentWaived:  "badge-blue",
}

// Label returns the localized display name, or the raw string.
func (s PaymentStatus) Label(loc i18n.Locale) string {
	if l, ok := paymentStatusLabels[s]; ok {
		return l.In(loc)
	}
	return string(s)
}

// BadgeClass returns the style token used for status badges.
func (s PaymentStatus) BadgeClass() string {
	if b, ok := paymentStatusBadges[s]; ok {
		return b
	}
	return "badge-neutral"
}

// PaymentConcept categorizes what a scheduled payment is for.
type PaymentConcept string

const (
	ConceptInitial   PaymentConcept = "initial"
	ConceptMonthly   PaymentConcept = "monthly"
	ConceptMilestone PaymentConcept = "milestone"
	ConceptFinal     PaymentConcept = "final"
	ConceptOther     PaymentConcept = "other"
)

var paymentConceptLabels = map[PaymentConcept]i18n.Label{
	ConceptInitial:   {EN: "Initial", ES: "Inicial"},
	ConceptMonthly:   {EN: "Monthly", ES: "Mensual"},
	ConceptMilestone: {EN: "Milestone", ES: "Hito"},
	ConceptFinal:     {EN: "Final", ES: "Final"},
	ConceptOther:     {EN: "Other", ES: "Otro"},
}

// Label returns the localized concept name, or the raw string.
func (c PaymentConcept) Label(loc i18n.Locale) string {
	if l, ok := paymentConceptLabels[c]; ok {
		return l.In(loc)
	}
	return string(c)
}

// PaymentScheduleItem is a single payment within a buyer contract.
type PaymentScheduleItem struct {
	ID               uuid.UUID      `json:"id"`
	ContractID       uuid.UUID      `json:"contract_id"`
	DueDate          string         `json:"due_date"`
	AmountUSD        float64        `json:"amount_usd"`
	Concept          PaymentConcept `json:"concept"`
	Status           PaymentStatus  `json:"status"`
	PaidDate         *string        `json:"paid_date"`
	PaymentReference string         `json:"payment_reference,omitempty"`
	Notes            string         `json:"notes,omitempty"`
}

// PaymentSummary aggregates a contract's payment schedule for display.
// Remaining is always Total minus Paid; it is never computed any other way.
type PaymentSummary struct {
	Total     float64
	Paid      float64
	Remaining float64
}

// SummarizePayments totals a payment schedule. Only items with status paid
// count toward Paid; pending, overdue and waived all remain outstanding.
func SummarizePayments(items []PaymentScheduleItem) PaymentSummary {
	var s PaymentSummary
	for _, item := range items {
		s.Total += item.AmountUSD
		if item.Status == PaymentPaid {
			s.Paid += item.AmountUSD
		}
	}
	s.Remaining = s.Total - s.Paid
	return s
}
