package project

import (
	"testing"

	"github.com/KodeaLabs/viventa/internal/i18n"
)

func actionNames(actions []Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.Name
	}
	return names
}

func assertActions(t *testing.T, got []Action, want ...string) {
	t.Helper()
	names := actionNames(got)
	if len(names) != len(want) {
		t.Fatalf("actions = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("actions = %v, want %v", names, want)
		}
	}
}

func TestStatusAllowedActions(t *testing.T) {
	assertActions(t, StatusDraft.AllowedActions(), "start_presale", "cancel_project")
	assertActions(t, StatusPresale.AllowedActions(), "start_construction", "mark_delivered", "cancel_project")
	assertActions(t, StatusUnderConstruction.AllowedActions(), "mark_delivered", "cancel_project")
	assertActions(t, StatusDelivered.AllowedActions())
	assertActions(t, StatusCancelled.AllowedActions())
	assertActions(t, Status("bogus").AllowedActions())
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPresale, StatusUnderConstruction} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true", s)
		}
	}
	for _, s := range []Status{StatusDelivered, StatusCancelled} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false", s)
		}
	}
}

func TestCancelProjectIsDestructive(t *testing.T) {
	actions := StatusPresale.AllowedActions()
	last := actions[len(actions)-1]
	if last.Name != ActionCancelProject || !last.Destructive {
		t.Errorf("last action = %+v, want destructive cancel_project", last)
	}
}

func TestStatusLabelFallback(t *testing.T) {
	if got := Status("unexpected_value").Label(i18n.English); got != "unexpected_value" {
		t.Errorf("Label = %q, want passthrough", got)
	}
	if got := StatusUnderConstruction.Label(i18n.Spanish); got != "Construcción" {
		t.Errorf("Label = %q", got)
	}
}

func TestAssetAllowedActions(t *testing.T) {
	assertActions(t, AssetAvailable.AllowedActions(), "reserve")
	assertActions(t, AssetReserved.AllowedActions(), "mark_sold", "release")
	assertActions(t, AssetSold.AllowedActions(), "deliver")
	assertActions(t, AssetDelivered.AllowedActions())
	assertActions(t, AssetStatus("bogus").AllowedActions())
}

func TestContractAllowedActions(t *testing.T) {
	assertActions(t, ContractReserved.AllowedActions(), "sign", "cancel_contract")
	assertActions(t, ContractSigned.AllowedActions(), "activate", "cancel_contract")
	assertActions(t, ContractActive.AllowedActions(), "complete", "cancel_contract")
	assertActions(t, ContractCompleted.AllowedActions())
	assertActions(t, ContractCancelled.AllowedActions())
}

func TestAllowedActionsAreCopies(t *testing.T) {
	fetch := map[string]func() []Action{
		"project":  StatusPresale.AllowedActions,
		"asset":    AssetReserved.AllowedActions,
		"contract": ContractReserved.AllowedActions,
	}
	for name, actions := range fetch {
		got := actions()
		got[0] = Action{Name: "tampered"}
		if again := actions(); again[0].Name == "tampered" {
			t.Errorf("%s AllowedActions shares backing storage between calls", name)
		}
	}
}

func TestAssetStatusLabelFallback(t *testing.T) {
	if got := AssetStatus("weird").Label(i18n.Spanish); got != "weird" {
		t.Errorf("Label = %q, want passthrough", got)
	}
	if got := AssetReserved.Label(i18n.Spanish); got != "Reservado" {
		t.Errorf("Label = %q", got)
	}
}

func TestLocalizedTitle(t *testing.T) {
	p := &Project{Title: "Marina Towers", TitleES: "Torres Marina"}
	if got := p.LocalizedTitle(i18n.Spanish); got != "Torres Marina" {
		t.Errorf("title = %q", got)
	}
	p2 := &Project{Title: "Marina Towers"}
	if got := p2.LocalizedTitle(i18n.Spanish); got != "Marina Towers" {
		t.Errorf("fallback title = %q", got)
	}
}
