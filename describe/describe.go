package describe

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Describable is implemented by enum-like values that carry display text.
type Describable interface {
	Description() string
}

// Registry is an explicit value-to-display-text table for types that
// cannot implement Describable themselves.
type Registry struct {
	mu    sync.RWMutex
	texts map[any]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{texts: make(map[any]string)}
}

// Register associates display text with a value. Registering the same
// value twice overwrites the previous text.
func (r *Registry) Register(value any, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts[value] = text
}

// Describe returns the registered display text for a value.
func (r *Registry) Describe(value any) (string, bool) {
	// Map lookup with a non-comparable key panics.
	if value == nil || !reflect.TypeOf(value).Comparable() {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	text, ok := r.texts[value]
	return text, ok
}

// Validate checks that every given value carries non-empty display text,
// either through the registry or through Describable. Intended as a
// startup-time pass over all members of an enum type.
func (r *Registry) Validate(values ...any) error {
	var missing []string
	for _, v := range values {
		if text, ok := r.Describe(v); ok && text != "" {
			continue
		}
		if d, ok := v.(Describable); ok && d.Description() != "" {
			continue
		}
		missing = append(missing, fmt.Sprintf("%v", v))
	}
	if len(missing) > 0 {
		return fmt.Errorf("describe: no display text for %s", strings.Join(missing, ", "))
	}
	return nil
}

// defaultRegistry backs the package-level Register/Describe/Validate.
var defaultRegistry = NewRegistry()

// Register associates display text with a value in the default registry.
func Register(value any, text string) {
	defaultRegistry.Register(value, text)
}

// Describe returns the display text registered for a value in the default registry.
func Describe(value any) (string, bool) {
	return defaultRegistry.Describe(value)
}

// Validate runs the default registry's validation pass.
func Validate(values ...any) error {
	return defaultRegistry.Validate(values...)
}

// Text resolves a value to its display text. Resolution order: strings pass
// through unchanged, then the default registry, then Describable, then
// fmt.Stringer, and finally the value's raw representation.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	if text, ok := defaultRegistry.Describe(v); ok && text != "" {
		return text
	}
	if d, ok := v.(Describable); ok {
		if text := d.Description(); text != "" {
			return text
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
