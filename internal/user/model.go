// Package user models the authenticated marketplace user. Identity itself is
// owned by the external provider; the API only reports the linked profile.
package user

import (
	"github.com/gofrs/uuid/v5"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

// Role is the marketplace role attached to a user profile.
type Role string

const (
	RoleBuyer     Role = "buyer"
	RoleAgent     Role = "agent"
	RoleDeveloper Role = "developer"
	RoleStaff     Role = "staff"
)

var roleLabels = map[Role]i18n.Label{
	RoleBuyer:     {EN: "Buyer", ES: "Comprador"},
	RoleAgent:     {EN: "Agent", ES: "Agente"},
	RoleDeveloper: {EN: "Developer", ES: "Desarrollador"},
	RoleStaff:     {EN: "Staff", ES: "Personal"},
}

// Label returns the localized role name, or the raw value.
func (r Role) Label(loc i18n.Locale) string {
	if l, ok := roleLabels[r]; ok {
		return l.In(loc)
	}
	return string(r)
}

// User is the current user's profile as returned by the API.
type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	FullName          string    `json:"full_name"`
	AvatarURL         *string   `json:"avatar_url"`
	Phone             string    `json:"phone"`
	WhatsApp          string    `json:"whatsapp"`
	Country           string    `json:"country"`
	PreferredLanguage string    `json:"preferred_language"`
	Role              Role      `json:"role"`
	IsVerifiedAgent   bool      `json:"is_verified_agent"`
	CompanyName       string    `json:"company_name,omitempty"`
}
