package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "lumen.toml"

// Manifest is a loaded and validated lumen.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type manifestFile struct {
	Resolve resolveSection `toml:"resolve"`
}

type resolveSection struct {
	UnitPath        []string  `toml:"unit_path"`
	SourcePath      []string  `toml:"source_path"`
	Prefer          string    `toml:"prefer"`
	WorkDir         string    `toml:"workdir"`
	Synonym         []Synonym `toml:"synonym"`
	ArtifactSynonym []Synonym `toml:"artifact_synonym"`
}

// Discover walks up from startDir looking for lumen.toml.
func Discover(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest parses and validates a lumen.toml. Relative search paths are
// anchored at the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	var file manifestFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("resolve") {
		return nil, fmt.Errorf("%s: missing [resolve]", path)
	}
	if !meta.IsDefined("resolve", "unit_path") || len(file.Resolve.UnitPath) == 0 {
		return nil, fmt.Errorf("%s: missing [resolve].unit_path", path)
	}
	if !meta.IsDefined("resolve", "source_path") || len(file.Resolve.SourcePath) == 0 {
		return nil, fmt.Errorf("%s: missing [resolve].source_path", path)
	}

	root := filepath.Dir(path)
	cfg := Default()
	cfg.UnitPath = anchorPaths(root, file.Resolve.UnitPath)
	cfg.SourcePath = anchorPaths(root, file.Resolve.SourcePath)

	if file.Resolve.Prefer != "" {
		pref, err := ParsePreference(file.Resolve.Prefer)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Prefer = pref
	}
	if file.Resolve.WorkDir != "" {
		cfg.WorkDir = anchorPath(root, file.Resolve.WorkDir)
	} else {
		cfg.WorkDir = root
	}
	if len(file.Resolve.Synonym) > 0 {
		if err := checkSynonyms(path, "synonym", file.Resolve.Synonym); err != nil {
			return nil, err
		}
		cfg.Synonyms = append(cfg.Synonyms, file.Resolve.Synonym...)
	}
	if len(file.Resolve.ArtifactSynonym) > 0 {
		if err := checkSynonyms(path, "artifact_synonym", file.Resolve.ArtifactSynonym); err != nil {
			return nil, err
		}
		cfg.ArtifactSuffixes = append(cfg.ArtifactSuffixes, file.Resolve.ArtifactSynonym...)
	}

	return &Manifest{Path: path, Root: root, Config: cfg}, nil
}

func checkSynonyms(path, table string, pairs []Synonym) error {
	for _, p := range pairs {
		if !strings.HasPrefix(p.Impl, ".") || !strings.HasPrefix(p.Iface, ".") {
			return fmt.Errorf("%s: [resolve.%s] extensions must start with '.' (got %q/%q)", path, table, p.Impl, p.Iface)
		}
	}
	return nil
}

func anchorPaths(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, anchorPath(root, p))
	}
	return out
}

func anchorPath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
