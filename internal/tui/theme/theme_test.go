package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMocha(t *testing.T) {
	th := Mocha()

	if th.Name != "Catppuccin Mocha" {
		t.Errorf("expected name 'Catppuccin Mocha', got %q", th.Name)
	}
	if !th.IsDark {
		t.Error("Mocha should be a dark theme")
	}

	for name, c := range map[string]lipgloss.Color{
		"Mauve": th.Mauve, "Blue": th.Blue, "Green": th.Green, "Yellow": th.Yellow,
		"Red": th.Red, "Peach": th.Peach, "Teal": th.Teal, "Pink": th.Pink,
		"Flamingo": th.Flamingo, "Text": th.Text, "Subtext": th.Subtext,
		"Surface": th.Surface, "Base": th.Base, "Mantle": th.Mantle, "Crust": th.Crust,
	} {
		if c == "" {
			t.Errorf("%s color not set", name)
		}
	}
}

func TestLatte(t *testing.T) {
	th := Latte()

	if th.Name != "Catppuccin Latte" {
		t.Errorf("expected name 'Catppuccin Latte', got %q", th.Name)
	}
	if th.IsDark {
		t.Error("Latte should be a light theme")
	}
}

func TestSetTheme(t *testing.T) {
	cases := []struct {
		flavor   string
		expected string
	}{
		{FlavorMocha, "Catppuccin Mocha"},
		{FlavorMacchiato, "Catppuccin Macchiato"},
		{FlavorFrappe, "Catppuccin Frappe"},
		{FlavorLatte, "Catppuccin Latte"},
		{"LATTE", "Catppuccin Latte"},
		{"unknown", "Catppuccin Mocha"},
		{"", "Catppuccin Mocha"},
	}

	for _, tc := range cases {
		t.Run(tc.flavor, func(t *testing.T) {
			SetTheme(tc.flavor)
			if Current.Name != tc.expected {
				t.Errorf("SetTheme(%q): expected name %q, got %q", tc.flavor, tc.expected, Current.Name)
			}
		})
	}

	SetTheme(FlavorMocha)
}

func TestIsFlavor(t *testing.T) {
	for _, f := range Flavors() {
		if !IsFlavor(f) {
			t.Errorf("IsFlavor(%q) = false", f)
		}
	}
	if IsFlavor("dracula") {
		t.Error("IsFlavor(dracula) = true")
	}
}

func TestStateColor(t *testing.T) {
	th := Mocha()
	if th.StateColor(true) != th.Green {
		t.Errorf("hidden state should be green")
	}
	if th.StateColor(false) != th.Red {
		t.Errorf("visible state should be red")
	}
	if th.MaskColor() == th.KeyColor() {
		t.Errorf("mask and key colors should differ")
	}
}

func TestThemeColorConsistency(t *testing.T) {
	themes := []*Theme{
		Mocha(),
		Macchiato(),
		Frappe(),
		Latte(),
	}

	for _, th := range themes {
		t.Run(th.Name, func(t *testing.T) {
			if th.Red == th.Yellow || th.Yellow == th.Peach || th.Red == th.Peach {
				t.Error("accent colors should be distinct")
			}
			if th.Surface != th.Surface0 {
				t.Error("Surface and Surface0 should match")
			}
			if th.Overlay0 == "" || th.Overlay1 == "" || th.Overlay2 == "" {
				t.Error("All overlay colors should be set")
			}
		})
	}
}
