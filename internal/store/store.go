// Package store holds the whole factory state in memory behind one lock.
// The console is a single-operator tool; every command runs as one
// serialized mutation, so engines never see a half-applied state. Nothing
// is persisted, a restart returns to the seed dataset.
package store

import (
	"sync"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/hr"
	"github.com/abkrino/cozmo-factor/internal/marketing"
	"github.com/abkrino/cozmo-factor/internal/procurement"
	"github.com/abkrino/cozmo-factor/internal/production"
	"github.com/abkrino/cozmo-factor/internal/quality"
	"github.com/abkrino/cozmo-factor/internal/sales"
)

// State is the complete object graph.
type State struct {
	Catalog     catalog.State
	Production  production.State
	Sales       sales.State
	Procurement procurement.State
	Quality     quality.State
	HR          hr.State
	Marketing   marketing.State
}

// Store guards State with a single mutex and implements every domain
// service's StateStore port. Update callbacks must validate before they
// mutate; an error return signals the caller, it does not roll back.
type Store struct {
	mu    sync.Mutex
	state State
}

// New builds an empty store.
func New() *Store {
	return &Store{}
}

// NewWithState builds a store around an initial dataset.
func NewWithState(st State) *Store {
	return &Store{state: st}
}

// Snapshot copies the full state for read-only consumers. The copy is
// shallow; callers must not mutate the slices they receive.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UpdateCatalog runs one catalog mutation.
func (s *Store) UpdateCatalog(fn func(*catalog.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state.Catalog)
}

// ViewCatalog runs one catalog read.
func (s *Store) ViewCatalog(fn func(catalog.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state.Catalog)
}

// UpdateProduction runs one production mutation. The catalog rides along
// so a completion can move stock in the same critical section.
func (s *Store) UpdateProduction(fn func(*production.State, *catalog.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state.Production, &s.state.Catalog)
}

// ViewProduction runs one production read.
func (s *Store) ViewProduction(fn func(production.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state.Production)
}

// UpdateSales runs one sales mutation. The catalog rides along so a
// commit can check and decrement stock in the same critical section.
func (s *Store) UpdateSales(fn func(*sales.State, *catalog.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state.Sales, &s.state.Catalog)
}

// ViewSales runs one sales read alongside the catalog.
func (s *Store) ViewSales(fn func(sales.State, catalog.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state.Sales, s.state.Catalog)
}

// UpdateProcurement runs one procurement mutation.
func (s *Store) UpdateProcurement(fn func(*procurement.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state.Procurement)
}

// ViewProcurement runs one procurement read.
func (s *Store) ViewProcurement(fn func(procurement.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state.Procurement)
}

// UpdateQuality runs one quality-control mutation.
func (s *Store) UpdateQuality(fn func(*quality.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state.Quality)
}

// ViewQuality runs one quality-control read.
func (s *Store) ViewQuality(fn func(quality.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state.Quality)
}

// UpdateHR runs one HR mutation.
func (s *Store) UpdateHR(fn func(*hr.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state.HR)
}

// ViewHR runs one HR read.
func (s *Store) ViewHR(fn func(hr.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state.HR)
}

// UpdateMarketing runs one marketing mutation.
func (s *Store) UpdateMarketing(fn func(*marketing.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state.Marketing)
}

// ViewMarketing runs one marketing read.
func (s *Store) ViewMarketing(fn func(marketing.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state.Marketing)
}
