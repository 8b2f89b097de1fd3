// Package property provides the property listing domain model and its
// status/type vocabularies.
package property

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

// Status is the lifecycle status of a property listing. Property status is
// rendered read-only; changes go through the generic update endpoint.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusSold     Status = "sold"
	StatusRented   Status = "rented"
	StatusInactive Status = "inactive"
)

var statusLabels = map[Status]i18n.Label{
	StatusDraft:    {EN: "Draft", ES: "Borrador"},
	StatusActive:   {EN: "Active", ES: "Activa"},
	StatusPending:  {EN: "Pending", ES: "Pendiente"},
	StatusSold:     {EN: "Sold", ES: "Vendida"},
	StatusRented:   {EN: "Rented", ES: "Alquilada"},
	StatusInactive: {EN: "Inactive", ES: "Inactiva"},
}

var statusBadges = map[Status]string{
	StatusDraft:    "badge-neutral",
	StatusActive:   "badge-green",
	StatusPending:  "badge-amber",
	StatusSold:     "badge-red",
	StatusRented:   "badge-blue",
	StatusInactive: "badge-neutral",
}

// Label returns the localized display name. Unknown statuses from the
// backend pass through as their raw string.
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

// ValidStatus returns true if s is a known property status.
func ValidStatus(s string) bool {
	_, ok := statusLabels[Status(s)]
	return ok
}

// ListingType distinguishes sale from rental listings.
type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

var listingTypeLabels = map[ListingType]i18n.Label{
	ListingSale: {EN: "For Sale", ES: "En Venta"},
	ListingRent: {EN: "For Rent", ES: "En Alquiler"},
}

// Label returns the localized listing type name, or the raw value.
func (t ListingType) Label(loc i18n.Locale) string {
	if l, ok := listingTypeLabels[t]; ok {
		return l.In(loc)
	}
	return string(t)
}

// Type categorizes the kind of property.
type Type string

const (
	TypeBeachApartment Type = "beach_apartment"
	TypeApartment      Type = "apartment"
	TypeHouse          Type = "house"
	TypeVilla          Type = "villa"
	TypePenthouse      Type = "penthouse"
	TypeFinca          Type = "finca"
	TypeTownhouse      Type = "townhouse"
	TypeBeachHouse     Type = "beach_house"
	TypeLand           Type = "land"
	TypeCommercial     Type = "commercial"
)

var typeLabels = map[Type]i18n.Label{
	TypeBeachApartment: {EN: "Beach Apartment", ES: "Apartamento de Playa"},
	TypeApartment:      {EN: "Apartment", ES: "Apartamento"},
	TypeHouse:          {EN: "House", ES: "Casa"},
	TypeVilla:          {EN: "Villa", ES: "Villa"},
	TypePenthouse:      {EN: "Penthouse", ES: "Penthouse"},
	TypeFinca:          {EN: "Finca", ES: "Finca"},
	TypeTownhouse:      {EN: "Townhouse", ES: "Townhouse"},
	TypeBeachHouse:     {EN: "Beach House", ES: "Casa de Playa"},
	TypeLand:           {EN: "Land", ES: "Terreno"},
	TypeCommercial:     {EN: "Commercial", ES: "Comercial"},
}

// Types lists all property types in display order.
var Types = []Type{
	TypeBeachApartment,
	TypeApartment,
	TypeHouse,
	TypeVilla,
	TypePenthouse,
	TypeFinca,
	TypeTownhouse,
	TypeBeachHouse,
	TypeLand,
	TypeCommercial,
}

// Label returns the localized property type name, or the raw value.
func (t Type) Label(loc i18n.Locale) string {
	if l, ok := typeLabels[t]; ok {
		return l.In(loc)
	}
	return string(t)
}

// Agent is the listing agent summary embedded in a property.
type Agent struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	AvatarURL       *string   `json:"avatar_url"`
	CompanyName     string    `json:"company_name"`
	Bio             string    `json:"bio"`
	IsVerifiedAgent bool      `json:"is_verified_agent"`
}

// Image is a gallery image attached to a property.
type Image struct {
	ID           uuid.UUID `json:"id"`
	Image        string    `json:"image"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	LargeURL     *string   `json:"large_url"`
	Caption      string    `json:"caption"`
	IsMain       bool      `json:"is_main"`
	Order        int       `json:"order"`
}

// Property is a marketplace listing as returned by the API.
type Property struct {
	ID                      uuid.UUID   `json:"id"`
	Slug                    string      `json:"slug"`
	Title                   string      `json:"title"`
	Description             string      `json:"description"`
	DescriptionES           string      `json:"description_es,omitempty"`
	Price                   float64     `json:"price"`
	PriceNegotiable         bool        `json:"price_negotiable"`
	PropertyType            Type        `json:"property_type"`
	ListingType             ListingType `json:"listing_type"`
	Status                  Status      `json:"status"`
	Bedrooms                int         `json:"bedrooms"`
	Bathrooms               float64     `json:"bathrooms"`
	AreaSqm                 *float64    `json:"area_sqm"`
	LotSizeSqm              *float64    `json:"lot_size_sqm"`
	YearBuilt               *int        `json:"year_built"`
	ParkingSpaces           int         `json:"parking_spaces"`
	Address                 string      `json:"address"`
	City                    string      `json:"city"`
	State                   string      `json:"state"`
	ZipCode                 string      `json:"zip_code"`
	Country                 string      `json:"country"`
	Latitude                *float64    `json:"latitude"`
	Longitude               *float64    `json:"longitude"`
	LocationDisplay         string      `json:"location_display"`
	Features                []string    `json:"features"`
	Agent                   Agent       `json:"agent"`
	Images                  []Image     `json:"images"`
	MainImage               *string     `json:"main_image"`
	IsFeatured              bool        `json:"is_featured"`
	IsNewConstruction       bool        `json:"is_new_construction"`
	IsBeachfront            bool        `json:"is_beachfront"`
	IsInvestmentOpportunity bool        `json:"is_investment_opportunity"`
	IsSaved                 bool        `json:"is_saved,omitempty"`
	ViewCount               int         `json:"view_count"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

// LocalizedDescription returns the Spanish description when available for
// the locale, falling back to the primary text.
func (p *Property) LocalizedDescription(loc i18n.Locale) string {
	if loc == i18n.Spanish && p.DescriptionES != "" {
		return p.DescriptionES
	}
	return p.Description
}
