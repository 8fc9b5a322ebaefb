package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrSchema is returned when an artifact was written by an incompatible
// toolchain version.
var ErrSchema = errors.New("artifact schema mismatch")

// Load reads and decodes one artifact file.
func Load(path string) (*Artifact, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var a Artifact
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%s: failed to decode artifact: %w", path, err)
	}
	if a.Schema != SchemaVersion {
		return nil, fmt.Errorf("%s: %w: have %d, want %d", path, ErrSchema, a.Schema, SchemaVersion)
	}
	return &a, nil
}

// Save encodes an artifact to disk. The write goes through a temp file in
// the target directory followed by a rename.
func Save(path string, a *Artifact) error {
	a.Schema = SchemaVersion
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(a); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), path)
}
