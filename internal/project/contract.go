package project

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

// ContractStatus is the lifecycle status of a buyer contract.
type ContractStatus string

const (
	ContractReserved  ContractStatus = "reserved"
	ContractSigned    ContractStatus = "signed"
	ContractActive    ContractStatus = "active"
	ContractCompleted ContractStatus = "completed"
	ContractCancelled ContractStatus = "cancelled"
)

var contractStatusLabels = map[ContractStatus]i18n.Label{
	ContractReserved:  {EN: "Reserved", ES: "Reservado"},
	ContractSigned:    {EN: "Signed", ES: "Firmado"},
	ContractActive:    {EN: "Active", ES: "Activo"},
	ContractCompleted: {EN: "Completed", ES: "Completado"},
	ContractCancelled: {EN: "Cancelled", ES: "Cancelado"},
}

var contractStatusBadges = map[ContractStatus]string{
	ContractReserved:  "badge-amber",
	ContractSigned:    "badge-blue",
	ContractActive:    "badge-green",
	ContractCompleted: "badge-neutral",
	ContractCancelled: "badge-red",
}

// Label returns the localized display name, or the raw string.
func (s ContractStatus) Label(loc i18n.Locale) string {
	if l, ok := contractStatusLabels[s]; ok {
		return l.In(loc)
	}
	return string(s)
}

// BadgeClass returns the style token used for status badges.
func (s ContractStatus) BadgeClass() string {
	if b, ok := contractStatusBadges[s]; ok {
		return b
	}
	return "badge-neutral"
}

// Contract transition action names, matching the backend endpoint segments.
const (
	ActionSign           = "sign"
	ActionActivate       = "activate"
	ActionComplete       = "complete"
	ActionCancelContract = "cancel_contract"
)

var cancelContract = Action{
	Name:        ActionCancelContract,
	Label:       i18n.Label{EN: "Cancel", ES: "Cancelar"},
	Destructive: true,
}

var contractStatusActions = map[ContractStatus][]Action{
	ContractReserved: {
		{Name: ActionSign, Label: i18n.Label{EN: "Sign", ES: "Firmar"}},
		cancelContract,
	},
	ContractSigned: {
		{Name: ActionActivate, Label: i18n.Label{EN: "Activate", ES: "Activar"}},
		cancelContract,
	},
	ContractActive: {
		{Name: ActionComplete, Label: i18n.Label{EN: "Complete", ES: "Completar"}},
		cancelContract,
	},
}

// AllowedActions returns the transitions offered from this status.
// Completed and cancelled are terminal; unknown statuses get an empty list.
// The slice is a fresh copy on every call.
func (s ContractStatus) AllowedActions() []Action {
	return append([]Action(nil), contractStatusActions[s]...)
}

// BuyerContract links a buyer to a sellable asset with payment terms. The
// asset and project fields are read relations populated by the API.
type BuyerContract struct {
	ID                uuid.UUID      `json:"id"`
	Asset             SellableAsset  `json:"asset"`
	ProjectID         uuid.UUID      `json:"project_id"`
	ProjectTitle      string         `json:"project_title"`
	ProjectSlug       string         `json:"project_slug"`
	BuyerName         string         `json:"buyer_name"`
	BuyerEmail        string         `json:"buyer_email"`
	ContractDate      *string        `json:"contract_date"`
	TotalPrice        float64        `json:"total_price"`
	InitialPayment    float64        `json:"initial_payment"`
	PaymentPlanMonths int            `json:"payment_plan_months"`
	Status            ContractStatus `json:"status"`
	Notes             string         `json:"notes,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}
