package theme

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/contribchart/pkg/errors"
)

func TestBuiltin_Labels(t *testing.T) {
	want := []struct{ id, label string }{
		{"standard", "GitHub"},
		{"halloween", "Halloween"},
		{"teal", "Teal"},
		{"leftPad", "@left_pad"},
		{"dracula", "Dracula"},
		{"blue", "Blue"},
		{"panda", "Panda 🐼"},
		{"sunny", "Sunny"},
		{"pink", "Pink"},
		{"YlGnBu", "YlGnBu"},
	}

	all := Builtin.All()
	if len(all) != len(want) {
		t.Fatalf("got %d themes, want %d", len(all), len(want))
	}
	for i, w := range want {
		if all[i].ID != w.id || all[i].Label != w.label {
			t.Errorf("theme %d = %s/%s, want %s/%s", i, all[i].ID, all[i].Label, w.id, w.label)
		}
	}
}

func TestBuiltin_PalettesParse(t *testing.T) {
	for _, th := range Builtin.All() {
		entries := append([]string{th.Palette.Background, th.Palette.Text, th.Palette.Meta}, th.Palette.Grades[:]...)
		for _, hex := range entries {
			if _, err := colorful.Hex(hex); err != nil {
				t.Errorf("theme %s: invalid colour %q: %v", th.ID, hex, err)
			}
		}
	}
}

func TestBuiltin_HasDefault(t *testing.T) {
	if !Builtin.Has(Default) {
		t.Fatalf("default theme %q missing", Default)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	th, err := Builtin.Lookup("dracula")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if th.Label != "Dracula" {
		t.Errorf("Label = %q, want Dracula", th.Label)
	}

	_, err = Builtin.Lookup("solarized")
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("Lookup(unknown) error = %v, want %s", err, errors.ErrCodeInvalidTheme)
	}
}

func TestRegistry_Next(t *testing.T) {
	r := NewRegistry(Theme{ID: "a"}, Theme{ID: "b"}, Theme{ID: "c"})

	tests := []struct {
		from string
		step int
		want string
	}{
		{"a", 1, "b"},
		{"c", 1, "a"},
		{"a", -1, "c"},
		{"b", -4, "a"},
		{"zzz", 1, "b"},
	}
	for _, tt := range tests {
		if got := r.Next(tt.from, tt.step); got != tt.want {
			t.Errorf("Next(%q, %d) = %q, want %q", tt.from, tt.step, got, tt.want)
		}
	}

	if got := NewRegistry().Next("x", 1); got != "x" {
		t.Errorf("empty registry Next() = %q, want x", got)
	}
}

func TestRegistry_AllIsCopy(t *testing.T) {
	all := Builtin.All()
	all[0].Label = "mutated"
	if th, _ := Builtin.Lookup(all[0].ID); th.Label == "mutated" {
		t.Error("All() exposed internal slice")
	}
}

func TestPalette_Grade(t *testing.T) {
	p := Palette{Grades: [5]string{"#000000", "#111111", "#222222", "#333333", "#ffffff"}}
	if p.Grade(9) != Color("#ffffff") {
		t.Error("Grade above range should clamp to the top grade")
	}
	if p.Grade(-2) != Color("#000000") {
		t.Error("Grade below range should clamp to grade 0")
	}
}

func TestColor_Invalid(t *testing.T) {
	r, g, b, _ := Color("nope").RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Error("invalid hex should fall back to black")
	}
}
