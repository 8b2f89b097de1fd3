package inquiry

import (
	"testing"

	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/validator"
)

func validForm() Form {
	return Form{
		Property:               "a2a2b5a0-0000-0000-0000-000000000001",
		FullName:               "Maria Perez",
		Email:                  "maria@example.com",
		Message:                "Is this still available?",
		PreferredContactMethod: ContactWhatsApp,
		PreferredLanguage:      "es",
	}
}

func TestFormValidateOK(t *testing.T) {
	f := validForm()
	v := validator.New()
	f.Validate(v)
	if !v.Valid() {
		t.Fatalf("valid form rejected: %v", v.Errors)
	}
}

func TestFormValidateMissingFields(t *testing.T) {
	f := Form{PreferredContactMethod: "fax", PreferredLanguage: "fr"}
	v := validator.New()
	f.Validate(v)
	for _, key := range []string{"property", "full_name", "email", "message", "preferred_contact_method", "preferred_language"} {
		if _, ok := v.Errors[key]; !ok {
			t.Errorf("expected error for %q, got %v", key, v.Errors)
		}
	}
}

func TestFormValidateBadEmail(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"
	v := validator.New()
	f.Validate(v)
	if _, ok := v.Errors["email"]; !ok {
		t.Errorf("expected email error, got %v", v.Errors)
	}
}

func TestFormValidateSwapsBudgetRange(t *testing.T) {
	f := validForm()
	min, max := 500000.0, 100000.0
	f.BudgetMin, f.BudgetMax = &min, &max

	v := validator.New()
	f.Validate(v)
	if !v.Valid() {
		t.Fatalf("unexpected errors: %v", v.Errors)
	}
	if *f.BudgetMin != 100000 || *f.BudgetMax != 500000 {
		t.Errorf("budget = [%v, %v], want swapped", *f.BudgetMin, *f.BudgetMax)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	if ValidStatus(Status("urgent")) {
		t.Error(`ValidStatus("urgent") = true`)
	}
}

func TestStatusLabelFallback(t *testing.T) {
	if got := Status("odd").Label(i18n.Spanish); got != "odd" {
		t.Errorf("Label = %q, want passthrough", got)
	}
	if got := StatusQualified.Label(i18n.Spanish); got != "Calificada" {
		t.Errorf("Label = %q", got)
	}
}
