// Package config carries the validated resolution configuration: search
// paths, suffix-synonym tables, the implementation/interface preference and
// the working directory.
package config

import (
	"fmt"
	"strings"
)

// Preference selects which of the two parallel file kinds wins when both
// exist: the implementation form or the interface form.
type Preference uint8

const (
	PreferImplementation Preference = iota
	PreferInterface
)

// String returns the string representation of Preference.
func (p Preference) String() string {
	switch p {
	case PreferInterface:
		return "interface"
	default:
		return "implementation"
	}
}

// ParsePreference converts a string to a Preference.
func ParsePreference(s string) (Preference, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "implementation", "impl":
		return PreferImplementation, nil
	case "interface", "iface":
		return PreferInterface, nil
	default:
		return PreferImplementation, fmt.Errorf("invalid preference %q (expected implementation|interface)", s)
	}
}

// Synonym is a pair of extensions considered equivalent forms of the same
// logical file, implementation first. Extensions include the leading dot.
type Synonym struct {
	Impl  string `toml:"impl"`
	Iface string `toml:"iface"`
}

// Config is the resolution configuration the engine consumes. It arrives
// validated; the engine never re-checks it.
type Config struct {
	// UnitPath is the ordered list of directories searched for unit
	// metadata artifacts.
	UnitPath []string

	// SourcePath is the ordered list of directories searched for source
	// files. Distinct from UnitPath on purpose.
	SourcePath []string

	// Synonyms pairs source extensions (".lm"/".li" plus any registered
	// alternates).
	Synonyms []Synonym

	// ArtifactSuffixes pairs unit-metadata extensions (".lmc"/".lic" plus
	// alternates).
	ArtifactSuffixes []Synonym

	Prefer Preference

	// WorkDir anchors relative paths recorded by the compiler.
	WorkDir string
}

// DefaultSynonyms covers the current and the legacy source extensions.
var DefaultSynonyms = []Synonym{
	{Impl: ".lm", Iface: ".li"},
	{Impl: ".lum", Iface: ".lui"},
}

// DefaultArtifactSuffixes covers the current and the legacy artifact
// extensions.
var DefaultArtifactSuffixes = []Synonym{
	{Impl: ".lmc", Iface: ".lic"},
	{Impl: ".lumc", Iface: ".luic"},
}

// Default returns a configuration with the standard suffix tables and no
// search paths.
func Default() Config {
	return Config{
		Synonyms:         DefaultSynonyms,
		ArtifactSuffixes: DefaultArtifactSuffixes,
		Prefer:           PreferImplementation,
		WorkDir:          ".",
	}
}

// SourceExts returns every registered source extension, preferred form of
// each pair first.
func (c *Config) SourceExts(pref Preference) []string {
	return orderedExts(c.Synonyms, pref)
}

// ArtifactExts returns every registered artifact extension, preferred form
// of each pair first.
func (c *Config) ArtifactExts(pref Preference) []string {
	return orderedExts(c.ArtifactSuffixes, pref)
}

func orderedExts(pairs []Synonym, pref Preference) []string {
	out := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		if pref == PreferInterface {
			out = append(out, p.Iface)
		} else {
			out = append(out, p.Impl)
		}
	}
	for _, p := range pairs {
		if pref == PreferInterface {
			out = append(out, p.Impl)
		} else {
			out = append(out, p.Iface)
		}
	}
	return out
}

// Counterpart maps an extension to the other half of its synonym pair, or
// returns it unchanged when it is not registered.
func Counterpart(pairs []Synonym, ext string) string {
	for _, p := range pairs {
		if p.Impl == ext {
			return p.Iface
		}
		if p.Iface == ext {
			return p.Impl
		}
	}
	return ext
}

// IsImplExt reports whether ext is the implementation half of a registered
// pair.
func IsImplExt(pairs []Synonym, ext string) bool {
	for _, p := range pairs {
		if p.Impl == ext {
			return true
		}
	}
	return false
}
