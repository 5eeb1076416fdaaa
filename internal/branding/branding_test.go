package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "tablebook" {
		t.Errorf("CLIName() = %q, want %q", got, "tablebook")
	}
	if got := HomeDir(); got != ".tablebook" {
		t.Errorf("HomeDir() = %q, want %q", got, ".tablebook")
	}
	if got := APIURL(); got == "" {
		t.Error("APIURL() should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("tab"); got != "TABLEBOOK_TAB" {
		t.Errorf("EnvVar(tab) = %q, want %q", got, "TABLEBOOK_TAB")
	}
}
