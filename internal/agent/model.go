// Package agent models the public agent directory: individual agents and
// companies with their listing counts and contact details.
package agent

import (
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/property"
)

// Type distinguishes individual agents from companies.
type Type string

const (
	TypeIndividual Type = "individual"
	TypeCompany    Type = "company"
)

var typeLabels = map[Type]i18n.Label{
	TypeIndividual: {EN: "Agent", ES: "Agente"},
	TypeCompany:    {EN: "Company", ES: "Empresa"},
}

// Label returns the localized agent type name, or the raw value.
func (t Type) Label(loc i18n.Locale) string {
	if l, ok := typeLabels[t]; ok {
		return l.In(loc)
	}
	return string(t)
}

// ListItem is an agent summary shown in the public directory.
type ListItem struct {
	ID                  int64   `json:"id"`
	Slug                string  `json:"slug"`
	DisplayName         string  `json:"display_name"`
	AvatarURL           *string `json:"avatar_url"`
	LogoURL             *string `json:"logo_url"`
	AgentType           Type    `json:"agent_type"`
	CompanyName         string  `json:"company_name"`
	IsVerifiedAgent     bool    `json:"is_verified_agent"`
	LocationDisplay     string  `json:"location_display"`
	ActiveListingsCount int     `json:"active_listings_count"`
	TotalListings       int     `json:"total_listings"`
	TotalSales          int     `json:"total_sales"`
}

// Profile is the full agent page, including team and current listings.
type Profile struct {
	ListItem

	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	FullName      string `json:"full_name"`
	LicenseNumber string `json:"license_number"`
	Bio           string `json:"bio"`
	BioES         string `json:"bio_es,omitempty"`
	Website       string `json:"website"`
	FoundedYear   *int   `json:"founded_year"`
	TeamSize      int    `json:"team_size"`
	City          string `json:"city"`
	State         string `json:"state"`
	Phone         string `json:"phone"`
	WhatsApp      string `json:"whatsapp"`
	Instagram     string `json:"instagram"`
	Facebook      string `json:"facebook"`
	LinkedIn      string `json:"linkedin"`

	TeamMembers []ListItem          `json:"team_members"`
	Properties  []property.Property `json:"properties"`
}

// LocalizedBio returns the Spanish bio when present for the locale.
func (p *Profile) LocalizedBio(loc i18n.Locale) string {
	if loc == i18n.Spanish && p.BioES != "" {
		return p.BioES
	}
	return p.Bio
}
