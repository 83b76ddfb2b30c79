package viz

import (
	"image/color"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme("ocean"); got.Name != "ocean" {
		t.Errorf("expected ocean, got %s", got.Name)
	}
	if got := GetTheme("nonexistent"); got.Name != "classic" {
		t.Errorf("expected classic fallback, got %s", got.Name)
	}
}

func TestNextTheme(t *testing.T) {
	seen := map[string]bool{}
	name := "classic"
	for range Themes {
		seen[name] = true
		name = NextTheme(name).Name
	}
	if name != "classic" {
		t.Errorf("expected cycle back to classic, got %s", name)
	}
	if len(seen) != len(Themes) {
		t.Errorf("expected %d themes in the cycle, got %d", len(Themes), len(seen))
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ffa500", color.RGBA{0xff, 0xa5, 0x00, 0xff}},
		{"#4682B4", color.RGBA{0x46, 0x82, 0xb4, 0xff}},
		{"orange", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := RGBA(lipgloss.Color(tt.in)); got != tt.want {
			t.Errorf("RGBA(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestNamed(t *testing.T) {
	if c, ok := Named("orange"); !ok || c != "#ffa500" {
		t.Errorf("expected #ffa500, got %q", c)
	}
	if _, ok := Named("chartreuse-ish"); ok {
		t.Error("expected unknown name to fail")
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(255, -3, 300); got != "#ff00ff" {
		t.Errorf("expected #ff00ff, got %s", got)
	}
}
