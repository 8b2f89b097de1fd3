// Package project models multi-unit development projects: the pre-sale →
// construction → delivery workflow, their sellable assets, buyer contracts
// and payment schedules. Status transitions are validated and applied by the
// backend; this package only describes which actions each status offers.
package project

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

// Status is the lifecycle status of a development project.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusPresale           Status = "presale"
	StatusUnderConstruction Status = "under_construction"
	StatusDelivered         Status = "delivered"
	StatusCancelled         Status = "cancelled"
)

var statusLabels = map[Status]i18n.Label{
	StatusDraft:             {EN: "Draft", ES: "Borrador"},
	StatusPresale:           {EN: "Pre-Sale", ES: "Pre-venta"},
	StatusUnderConstruction: {EN: "Construction", ES: "Construcción"},
	StatusDelivered:         {EN: "Delivered", ES: "Entregado"},
	StatusCancelled:         {EN: "Cancelled", ES: "Cancelado"},
}

var statusBadges = map[Status]string{
	StatusDraft:             "badge-neutral",
	StatusPresale:           "badge-blue",
	StatusUnderConstruction: "badge-amber",
	StatusDelivered:         "badge-green",
	StatusCancelled:         "badge-red",
}

// Label returns the localized display name, or the raw string for a status
// the vocabulary does not know.
func (s Status) Label(loc i18n.Locale) string {
	if l, ok := statusLabels[s]; ok {
		return l.In(loc)
	}
	return string(s)
}

// BadgeClass returns the style token used for status badges.
func (s Status) BadgeClass() string {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return "badge-neutral"
}

// Terminal reports whether no further transitions are offered.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Action is a named transition the backend exposes as a POST endpoint.
type Action struct {
	Name        string
	Label       i18n.Label
	Destructive bool // requires confirmation in the UI
}

// Project transition action names, matching the backend endpoint segments.
const (
	ActionStartPresale      = "start_presale"
	ActionStartConstruction = "start_construction"
	ActionMarkDelivered     = "mark_delivered"
	ActionCancelProject     = "cancel_project"
)

var cancelProject = Action{
	Name:        ActionCancelProject,
	Label:       i18n.Label{EN: "Cancel", ES: "Cancelar"},
	Destructive: true,
}

var statusActions = map[Status][]Action{
	StatusDraft: {
		{Name: ActionStartPresale, Label: i18n.Label{EN: "Start Pre-Sale", ES: "Iniciar Pre-Venta"}},
	},
	StatusPresale: {
		{Name: ActionStartConstruction, Label: i18n.Label{EN: "Start Construction", ES: "Iniciar Construcción"}},
		{Name: ActionMarkDelivered, Label: i18n.Label{EN: "Mark Delivered", ES: "Marcar Entregado"}},
	},
	StatusUnderConstruction: {
		{Name: ActionMarkDelivered, Label: i18n.Label{EN: "Mark Delivered", ES: "Marcar Entregado"}},
	},
}

// AllowedActions returns the transitions offered from this status, in display
// order. cancel_project is always offered last unless the status is terminal.
// Unknown statuses get an empty list.
func (s Status) AllowedActions() []Action {
	if s.Terminal() {
		return nil
	}
	if _, known := statusLabels[s]; !known {
		return nil
	}
	actions := make([]Action, 0, 3)
	actions = append(actions, statusActions[s]...)
	actions = append(actions, cancelProject)
	return actions
}

// Milestone is a construction progress milestone.
type Milestone struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	TitleES       string    `json:"title_es,omitempty"`
	Description   string    `json:"description,omitempty"`
	TargetDate    *string   `json:"target_date"`
	CompletedDate *string   `json:"completed_date"`
	Percentage    int       `json:"percentage"`
	Status        string    `json:"status"`
	Order         int       `json:"order"`
}

// Update is a news/progress post attached to a project.
type Update struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	TitleES     string     `json:"title_es,omitempty"`
	Content     string     `json:"content"`
	ContentES   string     `json:"content_es,omitempty"`
	ImageURL    *string    `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}

// GalleryImage is a gallery entry for a project.
type GalleryImage struct {
	ID       uuid.UUID `json:"id"`
	ImageURL string    `json:"image_url"`
	Caption  string    `json:"caption"`
	Order    int       `json:"order"`
}

// Project is a development project as returned by the API. List endpoints
// omit the detail-only fields (description, amenities, gallery, milestones).
type Project struct {
	ID                 uuid.UUID `json:"id"`
	Slug               string    `json:"slug"`
	Title              string    `json:"title"`
	TitleES            string    `json:"title_es,omitempty"`
	Description        string    `json:"description,omitempty"`
	DescriptionES      string    `json:"description_es,omitempty"`
	DeveloperName      string    `json:"developer_name"`
	DeveloperLogoURL   *string   `json:"developer_logo_url"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address,omitempty"`
	LocationDisplay    string    `json:"location_display"`
	TotalUnits         int       `json:"total_units"`
	SoldUnits          int       `json:"sold_units"`
	AvailableUnits     int       `json:"available_units"`
	PriceRangeMin      *float64  `json:"price_range_min"`
	PriceRangeMax      *float64  `json:"price_range_max"`
	DeliveryDate       *string   `json:"delivery_date"`
	ConstructionStart  *string   `json:"construction_start_date"`
	Amenities          []string  `json:"amenities,omitempty"`
	MasterPlanURL      string    `json:"master_plan_url,omitempty"`
	BrochureURL        string    `json:"brochure_url,omitempty"`
	VideoURL           string    `json:"video_url,omitempty"`
	CoverImageURL      *string   `json:"cover_image_url"`
	Status             Status    `json:"status"`
	IsFeatured         bool      `json:"is_featured"`
	ProgressPercentage int       `json:"progress_percentage"`

	GalleryImages []GalleryImage `json:"gallery_images,omitempty"`
	Milestones    []Milestone    `json:"milestones,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocalizedTitle returns the Spanish title when present for the locale.
func (p *Project) LocalizedTitle(loc i18n.Locale) string {
	if loc == i18n.Spanish && p.TitleES != "" {
		return p.TitleES
	}
	return p.Title
}

// LocalizedDescription returns the Spanish description when present for
// the locale.
func (p *Project) LocalizedDescription(loc i18n.Locale) string {
	if loc == i18n.Spanish && p.DescriptionES != "" {
		return p.DescriptionES
	}
	return p.Description
}
