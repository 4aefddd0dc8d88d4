package custom

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/behave/internal/core/models"
	"github.com/zeusync/behave/internal/core/observability/log"
)

// Library is the name-keyed table of component types. Lookups may run
// concurrently with each other; callers serialize registration against
// creation if they need a consistent view across calls.
type Library struct {
	_ noCopy

	mu    sync.RWMutex
	types map[string]*Type
	log   log.Log
}

type Option func(*Library)

func WithLogger(l log.Log) Option {
	return func(lib *Library) {
		if l != nil {
			lib.log = l
		}
	}
}

func NewLibrary(opts ...Option) *Library {
	lib := &Library{
		types: make(map[string]*Type),
		log:   log.NewNop(),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// RegisterType takes ownership of t. It fails without touching the table when
// t is incomplete or its name is taken.
func (l *Library) RegisterType(t *Type) error {
	if err := t.validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.types[t.name]; exists {
		l.log.Warn("component type already registered", log.String("type", t.name))
		return fmt.Errorf("%w: %s", ErrDuplicateType, t.name)
	}
	l.types[t.name] = t
	l.log.Debug("component type registered", log.String("type", t.name))
	return nil
}

// ForgetType removes a type. Components already created from it are unaffected.
func (l *Library) ForgetType(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.types[name]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	delete(l.types, name)
	l.log.Debug("component type forgotten", log.String("type", name))
	return nil
}

func (l *Library) TypeExists(name string) bool {
	_, ok := l.GetType(name)
	return ok
}

// GetType returns the registered type without transferring ownership.
func (l *Library) GetType(name string) (*Type, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.types[name]
	return t, ok
}

// TypeNames returns the registered names in sorted order.
func (l *Library) TypeNames() []string {
	l.mu.RLock()
	names := make([]string, 0, len(l.types))
	for name := range l.types {
		names = append(names, name)
	}
	l.mu.RUnlock()

	sort.Strings(names)
	return names
}

func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.types)
}

// CreateInstance resolves the type named by doc's TypeField and delegates to
// its verifying CreateInstanceFromJSON.
func (l *Library) CreateInstance(e *models.Entity, doc Document) (Component, error) {
	t, err := l.resolve(doc)
	if err != nil {
		l.log.Warn("component creation failed", log.Error(err))
		return nil, err
	}

	c, err := t.CreateInstanceFromJSON(e, doc)
	if err != nil {
		l.log.Warn("component creation failed", log.String("type", t.name), log.Error(err))
		return nil, err
	}
	if got := c.TypeName(); got != t.name {
		l.log.Warn("component reports a different type name",
			log.String("type", t.name), log.String("reported", got))
	}
	return c, nil
}

// IsValid reports whether doc names a registered type whose verifier accepts it.
func (l *Library) IsValid(doc Document) bool {
	return l.Check(doc) == nil
}

// Check is IsValid with the reason: ErrMissingTypeName, ErrUnknownType or
// ErrInvalidConfig.
func (l *Library) Check(doc Document) error {
	t, err := l.resolve(doc)
	if err != nil {
		return err
	}
	if !t.VerifyJSON(doc) {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, t.name)
	}
	return nil
}

// Fingerprint hashes the sorted set of registered names. Saved scenes record
// it so a loader can tell whether it runs against the same set of types.
func (l *Library) Fingerprint() uint64 {
	return xxhash.Sum64String(strings.Join(l.TypeNames(), "\x00"))
}

func (l *Library) resolve(doc Document) (*Type, error) {
	name, ok := doc.TypeName()
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrUnknownType, ErrMissingTypeName)
	}
	t, ok := l.GetType(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return t, nil
}
