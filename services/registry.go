package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"funcbox/models"
)

// Registry holds the built-in functions available on this deployment. It is
// seeded once at startup by both the API server and the worker.
type Registry struct {
	functions map[string]models.BuiltinFunction
	mutex     sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		functions: make(map[string]models.BuiltinFunction),
	}
}

// Register adds or replaces a built-in function.
func (r *Registry) Register(fn models.BuiltinFunction) error {
	if fn.Name == "" {
		return fmt.Errorf("function name is required")
	}
	if len(fn.Command) == 0 {
		return fmt.Errorf("function %s: command is required", fn.Name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if fn.RegisteredAt.IsZero() {
		fn.RegisteredAt = time.Now().UTC()
	}
	r.functions[fn.Name] = fn

	log.Info().
		Str("function", fn.Name).
		Str("runtime", fn.Runtime).
		Msg("Function registered")

	return nil
}

// Get retrieves a function by name.
func (r *Registry) Get(name string) (models.BuiltinFunction, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	fn, ok := r.functions[name]
	if !ok {
		return models.BuiltinFunction{}, fmt.Errorf("function not found: %s", name)
	}
	return fn, nil
}

// List returns all registered functions as list items, sorted by name.
func (r *Registry) List() []models.FunctionListItem {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	items := make([]models.FunctionListItem, 0, len(r.functions))
	for _, fn := range r.functions {
		items = append(items, models.FunctionListItem{
			Name:        fn.Name,
			Description: fn.Description,
			Runtime:     fn.Runtime,
			Params:      len(fn.Params),
			LastInvoked: fn.LastInvoked,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// UpdateLastInvoked stamps the function's last invocation time.
func (r *Registry) UpdateLastInvoked(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	fn, ok := r.functions[name]
	if !ok {
		return fmt.Errorf("function not found: %s", name)
	}
	now := time.Now().UTC()
	fn.LastInvoked = &now
	r.functions[name] = fn
	return nil
}
