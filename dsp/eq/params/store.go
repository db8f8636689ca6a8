package params

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownParameter is returned when a name is not registered.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrDuplicateParameter is returned when a name is registered twice.
	ErrDuplicateParameter = errors.New("duplicate parameter")
)

// Listener is called after a parameter's value changed.
type Listener func(*Parameter)

// Store is a name-indexed set of parameters with change listeners.
type Store struct {
	mu        sync.RWMutex
	byName    map[string]*Parameter
	order     []*Parameter
	listeners []Listener
}

// NewStore returns a store holding params.
func NewStore(params ...*Parameter) (*Store, error) {
	s := &Store{byName: make(map[string]*Parameter, len(params))}
	if err := s.Add(params...); err != nil {
		return nil, err
	}

	return s, nil
}

// Add registers params. Nothing is added if any name is already taken.
func (s *Store) Add(params ...*Parameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if _, ok := s.byName[p.Name]; ok || seen[p.Name] {
			return fmt.Errorf("add %q: %w", p.Name, ErrDuplicateParameter)
		}
		seen[p.Name] = true
	}

	for _, p := range params {
		p.store.Store(s)
		s.byName[p.Name] = p
		s.order = append(s.order, p)
	}

	return nil
}

// Lookup returns the parameter registered under name.
func (s *Store) Lookup(name string) (*Parameter, error) {
	s.mu.RLock()
	p, ok := s.byName[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrUnknownParameter)
	}

	return p, nil
}

// Value returns the plain value of name.
func (s *Store) Value(name string) (float64, error) {
	p, err := s.Lookup(name)
	if err != nil {
		return 0, err
	}

	return p.Value(), nil
}

// Set stores a plain value for name.
func (s *Store) Set(name string, plain float64) error {
	p, err := s.Lookup(name)
	if err != nil {
		return err
	}

	p.Set(plain)

	return nil
}

// SetNormalized stores a normalized value for name.
func (s *Store) SetNormalized(name string, n float64) error {
	p, err := s.Lookup(name)
	if err != nil {
		return err
	}

	p.SetNormalized(n)

	return nil
}

// All returns the parameters in registration order.
func (s *Store) All() []*Parameter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*Parameter(nil), s.order...)
}

// Reset restores every parameter's default.
func (s *Store) Reset() {
	for _, p := range s.All() {
		p.Reset()
	}
}

// AddListener registers fn to run after any value change.
func (s *Store) AddListener(fn Listener) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify(p *Parameter) {
	s.mu.RLock()
	ls := s.listeners
	s.mu.RUnlock()

	for _, fn := range ls {
		fn(p)
	}
}
