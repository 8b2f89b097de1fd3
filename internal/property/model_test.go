package property

import (
	"testing"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status Status
		loc    i18n.Locale
		want   string
	}{
		{StatusActive, i18n.English, "Active"},
		{StatusActive, i18n.Spanish, "Activa"},
		{StatusSold, i18n.Spanish, "Vendida"},
		{Status("unexpected_value"), i18n.English, "unexpected_value"},
		{Status("unexpected_value"), i18n.Spanish, "unexpected_value"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(tt.loc); got != tt.want {
			t.Errorf("Label(%q, %q) = %q, want %q", tt.status, tt.loc, got, tt.want)
		}
	}
}

func TestStatusBadgeClassUnknown(t *testing.T) {
	if got := Status("whatever").BadgeClass(); got != "badge-neutral" {
		t.Errorf("BadgeClass = %q, want badge-neutral", got)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"draft", "active", "pending", "sold", "rented", "inactive"} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	if ValidStatus("archived") {
		t.Error("ValidStatus(archived) = true, want false")
	}
}

func TestTypeLabelFallback(t *testing.T) {
	if got := Type("castle").Label(i18n.Spanish); got != "castle" {
		t.Errorf("Label = %q, want castle", got)
	}
	if got := TypeBeachHouse.Label(i18n.Spanish); got != "Casa de Playa" {
		t.Errorf("Label = %q", got)
	}
}

func TestLocalizedDescription(t *testing.T) {
	p := &Property{Description: "Ocean view", DescriptionES: "Vista al mar"}
	if got := p.LocalizedDescription(i18n.Spanish); got != "Vista al mar" {
		t.Errorf("es description = %q", got)
	}
	if got := p.LocalizedDescription(i18n.English); got != "Ocean view" {
		t.Errorf("en description = %q", got)
	}

	p2 := &Property{Description: "Ocean view"}
	if got := p2.LocalizedDescription(i18n.Spanish); got != "Ocean view" {
		t.Errorf("fallback description = %q", got)
	}
}
