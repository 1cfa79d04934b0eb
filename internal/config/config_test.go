package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sandfall/internal/sand"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg.Width != def.Width || cfg.Height != def.Height || cfg.Scale != def.Scale || cfg.Brush != def.Brush {
		t.Fatalf("missing default file did not fall back: %+v", cfg)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit path accepted")
	}
}

func TestLoadPicksUpLocalFile(t *testing.T) {
	t.Chdir(t.TempDir())
	err := os.WriteFile(DefaultPath, []byte("width: 64\nheight: 48\nspeed: 2\n"), 0o644)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Speed != 2 {
		t.Fatalf("file values ignored: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Scale != Default().Scale || cfg.Brush.Element != "sand" {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadReadsFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
width: 100
height: 80
scale: 2
seed: 7
speed: 0.5
fall_into_void: true
brush:
  element: lava
  radius: 6
spigots:
  - slot: 0
    element: rainbow-sand
    size: 5
  - slot: 1
    element: water
    size: 0
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.FallIntoVoid || cfg.Seed != 7 {
		t.Fatalf("scalar fields wrong: %+v", cfg)
	}
	if e, err := cfg.BrushElement(); err != nil || e != sand.Lava {
		t.Fatalf("brush element = %v, %v", e, err)
	}
	if len(cfg.Spigots) != 2 || cfg.Spigots[1].Size != 0 {
		t.Fatalf("spigots wrong: %+v", cfg.Spigots)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	docs := map[string]string{
		"zero width":    "width: 0\n",
		"huge scale":    "scale: 99\n",
		"bad brush":     "brush: {element: granite}\n",
		"bad slot":      "spigots: [{slot: 9, element: sand, size: 3}]\n",
		"solid element": "spigots: [{slot: 0, element: wall, size: 3}]\n",
		"broken yaml":   "width: [\n",
	}
	dir := t.TempDir()
	for name, doc := range docs {
		path := filepath.Join(dir, strings.ReplaceAll(name, " ", "-")+".yaml")
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s accepted", name)
		}
	}
}

func TestResolveElementSuggests(t *testing.T) {
	_, err := ResolveElement("watr")
	if err == nil {
		t.Fatal("typo accepted")
	}
	if !strings.Contains(err.Error(), `"water"`) {
		t.Fatalf("no suggestion in %q", err)
	}

	_, err = ResolveElement("completely-wrong")
	if err == nil {
		t.Fatal("garbage accepted")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("far-fetched suggestion in %q", err)
	}
}

func TestResolveElementExactNames(t *testing.T) {
	for _, name := range sand.ElementNames() {
		e, err := ResolveElement(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if e.String() != name {
			t.Fatalf("%s resolved to %v", name, e)
		}
	}
}

func TestApplySetsSpigots(t *testing.T) {
	w := sand.New(sand.Options{Width: 50, Height: 40, Seed: 1})
	cfg := Default()
	cfg.Spigots = []SpigotConfig{
		{Slot: 0, Element: "lava", Size: 3},
		{Slot: 1, Element: "water", Size: 0},
	}

	if err := cfg.Apply(w); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got := w.Spigots()
	if got[0].Element != sand.Lava || got[0].Size != 3 {
		t.Fatalf("slot 0 = %+v", got[0])
	}
	if got[1].Size != 0 {
		t.Fatalf("slot 1 not disabled: %+v", got[1])
	}

	cfg.Spigots = []SpigotConfig{{Slot: 2, Element: "torch", Size: 2}}
	if err := cfg.Apply(w); err == nil {
		t.Fatal("non-feedable element applied")
	}
}
