// pkg/registry/registry.go
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arc-language/mysqlprobe/pkg/core"
)

// Registry maps script file extensions to the handler that runs them
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]core.TaskHandler
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		handlers: make(map[string]core.TaskHandler),
	}
}

// Register adds h under every extension it declares. Registering a
// second handler for an extension is an error.
func (r *Registry) Register(h core.TaskHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range h.Extensions() {
		ext = normalize(ext)
		if prev, ok := r.handlers[ext]; ok {
			return fmt.Errorf("registry: extension '%s' already handled by '%s'", ext, prev.Name())
		}
	}
	for _, ext := range h.Extensions() {
		r.handlers[normalize(ext)] = h
	}
	return nil
}

// Get returns the handler registered for ext exactly
func (r *Registry) Get(ext string) (core.TaskHandler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[normalize(ext)]
	if !ok {
		return nil, fmt.Errorf("registry: no handler for '%s'", ext)
	}
	return h, nil
}

// Lookup returns the handler for a script path. The longest registered
// suffix wins, so "seed.sql.xz" goes to the ".sql.xz" handler rather than
// a ".xz" one.
func (r *Registry) Lookup(path string) (core.TaskHandler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(path)
	var (
		best    core.TaskHandler
		bestLen int
	)
	for ext, h := range r.handlers {
		if strings.HasSuffix(lower, ext) && len(ext) > bestLen {
			best, bestLen = h, len(ext)
		}
	}
	if best == nil {
		return nil, fmt.Errorf("registry: no handler for script '%s' (known: %s)",
			path, strings.Join(r.available(), ", "))
	}
	return best, nil
}

// Available returns every registered extension, sorted
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.available()
}

func (r *Registry) available() []string {
	exts := make([]string, 0, len(r.handlers))
	for ext := range r.handlers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalize(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
