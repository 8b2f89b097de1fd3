package cli

import "testing"

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"properties", "projects", "assets", "contracts", "payments",
		"inquiries", "agents", "account",
		"serve", "login", "logout", "status", "version",
	}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestFormatFlagDefault(t *testing.T) {
	root := NewRootCmd()
	f := root.PersistentFlags().Lookup("format")
	if f == nil {
		t.Fatal("format flag not registered")
	}
	if f.DefValue != "text" {
		t.Errorf("format default = %q, want text", f.DefValue)
	}
}
