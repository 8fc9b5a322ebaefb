package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePreference(t *testing.T) {
	cases := []struct {
		in   string
		want Preference
		err  bool
	}{
		{"implementation", PreferImplementation, false},
		{"impl", PreferImplementation, false},
		{"interface", PreferInterface, false},
		{"IFACE", PreferInterface, false},
		{"", PreferImplementation, false},
		{"definitely-not", PreferImplementation, true},
	}
	for _, c := range cases {
		got, err := ParsePreference(c.in)
		if (err != nil) != c.err {
			t.Fatalf("%q: err = %v", c.in, err)
		}
		if err == nil && got != c.want {
			t.Fatalf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestOrderedExtsFollowPreference(t *testing.T) {
	cfg := Default()
	impl := cfg.ArtifactExts(PreferImplementation)
	if impl[0] != ".lmc" || impl[2] != ".lic" {
		t.Fatalf("implementation order: %v", impl)
	}
	iface := cfg.ArtifactExts(PreferInterface)
	if iface[0] != ".lic" || iface[2] != ".lmc" {
		t.Fatalf("interface order: %v", iface)
	}
}

func TestCounterpart(t *testing.T) {
	if got := Counterpart(DefaultSynonyms, ".lm"); got != ".li" {
		t.Fatalf(".lm -> %q", got)
	}
	if got := Counterpart(DefaultSynonyms, ".li"); got != ".lm" {
		t.Fatalf(".li -> %q", got)
	}
	if got := Counterpart(DefaultSynonyms, ".txt"); got != ".txt" {
		t.Fatalf("unregistered ext must pass through, got %q", got)
	}
}

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "lumen.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[resolve]
unit_path = ["build/units"]
source_path = ["src", "vendor/src"]
prefer = "interface"

[[resolve.synonym]]
impl = ".lx"
iface = ".lxi"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Root != dir {
		t.Fatalf("root = %q", m.Root)
	}
	if m.Config.Prefer != PreferInterface {
		t.Fatalf("prefer = %v", m.Config.Prefer)
	}
	if m.Config.UnitPath[0] != filepath.Join(dir, "build/units") {
		t.Fatalf("unit path not anchored: %v", m.Config.UnitPath)
	}
	if len(m.Config.SourcePath) != 2 {
		t.Fatalf("source path: %v", m.Config.SourcePath)
	}
	// Registered synonyms extend the defaults instead of replacing them.
	if got := Counterpart(m.Config.Synonyms, ".lx"); got != ".lxi" {
		t.Fatalf("custom synonym missing: %q", got)
	}
	if got := Counterpart(m.Config.Synonyms, ".lm"); got != ".li" {
		t.Fatalf("default synonym lost: %q", got)
	}
	if m.Config.WorkDir != dir {
		t.Fatalf("workdir = %q", m.Config.WorkDir)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	dir := t.TempDir()

	path := writeManifest(t, dir, "\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected missing [resolve] error")
	}

	path = writeManifest(t, dir, "[resolve]\nunit_path = [\"u\"]\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected missing source_path error")
	}

	path = writeManifest(t, dir, `
[resolve]
unit_path = ["u"]
source_path = ["s"]

[[resolve.synonym]]
impl = "lm"
iface = ".li"
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected bad extension error")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeManifest(t, dir, "[resolve]\nunit_path=[\"u\"]\nsource_path=[\"s\"]\n")

	got, ok, err := Discover(nested)
	if err != nil || !ok {
		t.Fatalf("discover: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
