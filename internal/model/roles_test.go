package model

import "testing"

func TestMapRole_KnownTypes(t *testing.T) {
	cases := map[string]string{
		"Edit":     "input",
		"Button":   "btn",
		"MenuItem": "menuitem",
		"Window":   "window",
	}
	for controlType, want := range cases {
		if got := MapRole(controlType); got != want {
			t.Errorf("MapRole(%q) = %q, want %q", controlType, got, want)
		}
	}
}

func TestMapRole_UnknownFallsBackToOther(t *testing.T) {
	if got := MapRole("Hyperlink3000"); got != "other" {
		t.Errorf("MapRole for unknown type = %q, want \"other\"", got)
	}
}

func TestInputRoles_ExcludeButtons(t *testing.T) {
	if InputRoles["Button"] {
		t.Error("Button must not be counted as an input field role")
	}
	if !InputRoles["Edit"] || !InputRoles["ComboBox"] {
		t.Error("Edit and ComboBox must be counted as input field roles")
	}
}
