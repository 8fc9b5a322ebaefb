package artifact

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"lumen/internal/source"
)

// Cache memoizes loaded artifacts by their resolved on-disk path for the
// lifetime of the process. Loads happen at most once per path; failed loads
// are not memoized so that a later build can repair them.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Artifact
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Artifact)}
}

// Get returns the artifact stored at path, loading it on first access.
// Keys are normalized so differently spelled paths share one entry.
func (c *Cache) Get(path string) (*Artifact, error) {
	key := source.NormalizePath(path)

	c.mu.RLock()
	a, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return a, nil
	}

	a, err := Load(key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Кто первый записал, того и артефакт
	if prev, ok := c.entries[key]; ok {
		a = prev
	} else {
		c.entries[key] = a
	}
	c.mu.Unlock()
	return a, nil
}

// Len returns the number of cached artifacts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// ListArtifacts returns every artifact file found under the given
// directories, sorted for a deterministic order. exts holds the artifact
// extensions to accept, dot included.
func ListArtifacts(dirs []string, exts []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			for _, ext := range exts {
				if strings.HasSuffix(path, ext) {
					files = append(files, path)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// Preload warms the cache with every artifact reachable from dirs, loading
// in parallel. jobs <= 0 means one worker per CPU. Returns the number of
// artifacts loaded successfully; a decode failure aborts the preload.
func (c *Cache) Preload(ctx context.Context, dirs []string, exts []string, jobs int) (int, error) {
	files, err := ListArtifacts(dirs, exts)
	if err != nil {
		return 0, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := c.Get(file)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return c.Len(), err
	}
	return len(files), nil
}
