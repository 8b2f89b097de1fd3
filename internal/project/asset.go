package project

import (
	"github.com/gofrs/uuid/v5"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

// AssetStatus is the sales status of a sellable unit. Asset transitions are
// normally driven by contract events on the backend; the admin UI can also
// trigger them directly.
type AssetStatus string

const (
	AssetAvailable AssetStatus = "available"
	AssetReserved  AssetStatus = "reserved"
	AssetSold      AssetStatus = "sold"
	AssetDelivered AssetStatus = "delivered"
)

var assetStatusLabels = map[AssetStatus]i18n.Label{
	AssetAvailable: {EN: "Available", ES: "Disponible"},
	AssetReserved:  {EN: "Reserved", ES: "Reservado"},
	AssetSold:      {EN: "Sold", ES: "Vendido"},
	AssetDelivered: {EN: "Delivered", ES: "Entregado"},
}

var assetStatusBadges = map[AssetStatus]string{
	AssetAvailable: "badge-green",
	AssetReserved:  "badge-amber",
	AssetSold:      "badge-red",
	AssetDelivered: "badge-blue",
}

// Label returns the localized display name, or the raw string.
func (s AssetStatus) Label(loc i18n.Locale) string {
	if l, ok := assetStatusLabels[s]; ok {
		return l.In(loc)
	}
	return string(s)
}

// BadgeClass returns the style token used for status badges.
func (s AssetStatus) BadgeClass() string {
	if b, ok := assetStatusBadges[s]; ok {
		return b
	}
	return "badge-neutral"
}

// Asset transition action names, matching the backend endpoint segments.
const (
	ActionReserve  = "reserve"
	ActionMarkSold = "mark_sold"
	ActionDeliver  = "deliver"
	ActionRelease  = "release"
)

var assetStatusActions = map[AssetStatus][]Action{
	AssetAvailable: {
		{Name: ActionReserve, Label: i18n.Label{EN: "Reserve", ES: "Reservar"}},
	},
	AssetReserved: {
		{Name: ActionMarkSold, Label: i18n.Label{EN: "Mark Sold", ES: "Marcar Vendido"}},
		{Name: ActionRelease, Label: i18n.Label{EN: "Release", ES: "Liberar"}, Destructive: true},
	},
	AssetSold: {
		{Name: ActionDeliver, Label: i18n.Label{EN: "Deliver", ES: "Entregar"}},
	},
}

// AllowedActions returns the transitions offered from this status. Delivered
// is terminal; unknown statuses get an empty list. The slice is a fresh copy
// on every call.
func (s AssetStatus) AllowedActions() []Action {
	return append([]Action(nil), assetStatusActions[s]...)
}

// AssetType categorizes a sellable unit.
type AssetType string

const (
	AssetTypeApartment  AssetType = "apartment"
	AssetTypeParking    AssetType = "parking"
	AssetTypeStorage    AssetType = "storage"
	AssetTypeCommercial AssetType = "commercial"
	AssetTypeLandLot    AssetType = "land_lot"
)

var assetTypeLabels = map[AssetType]i18n.Label{
	AssetTypeApartment:  {EN: "Apartment", ES: "Apartamento"},
	AssetTypeParking:    {EN: "Parking", ES: "Estacionamiento"},
	AssetTypeStorage:    {EN: "Storage", ES: "Maletero"},
	AssetTypeCommercial: {EN: "Commercial", ES: "Comercial"},
	AssetTypeLandLot:    {EN: "Land Lot", ES: "Lote"},
}

// AssetTypes lists all asset types in display order.
var AssetTypes = []AssetType{
	AssetTypeApartment,
	AssetTypeParking,
	AssetTypeStorage,
	AssetTypeCommercial,
	AssetTypeLandLot,
}

// Label returns the localized asset type name, or the raw value.
func (t AssetType) Label(loc i18n.Locale) string {
	if l, ok := assetTypeLabels[t]; ok {
		return l.In(loc)
	}
	return string(t)
}

// SellableAsset is an individual sellable unit within a project.
type SellableAsset struct {
	ID           uuid.UUID   `json:"id"`
	ProjectID    uuid.UUID   `json:"project_id"`
	Identifier   string      `json:"identifier"` // e.g. A-301, P-05
	AssetType    AssetType   `json:"asset_type"`
	Floor        *int        `json:"floor"`
	AreaSqm      *float64    `json:"area_sqm"`
	Bedrooms     int         `json:"bedrooms"`
	Bathrooms    float64     `json:"bathrooms"`
	PriceUSD     float64     `json:"price_usd"`
	Status       AssetStatus `json:"status"`
	FloorPlanURL string      `json:"floor_plan_url,omitempty"`
	Features     []string    `json:"features,omitempty"`
}
