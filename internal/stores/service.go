package stores

import (
	"github.com/cleared-dev/gastos/internal/model"
	"github.com/cleared-dev/gastos/internal/normalize"
)

// Service provides in-memory lookup over the known stores.
type Service struct {
	stores  []model.Store
	byID    map[model.StoreID]model.Store
	byLabel map[string]model.StoreID
}

// NewService creates a Service from a slice of stores. Names and aliases are
// indexed case- and accent-insensitively.
func NewService(stores []model.Store) *Service {
	byID := make(map[model.StoreID]model.Store, len(stores))
	byLabel := make(map[string]model.StoreID)
	for _, s := range stores {
		byID[s.ID] = s
		byLabel[normalize.Fold(s.Name)] = s.ID
		for _, a := range s.Aliases {
			byLabel[normalize.Fold(a)] = s.ID
		}
	}
	return &Service{stores: stores, byID: byID, byLabel: byLabel}
}

// All returns all stores.
func (s *Service) All() []model.Store {
	return s.stores
}

// Get returns a store by ID.
func (s *Service) Get(id model.StoreID) (model.Store, bool) {
	st, ok := s.byID[id]
	return st, ok
}

// Resolve matches free text against store names and aliases.
func (s *Service) Resolve(text string) (model.Store, bool) {
	id, ok := s.byLabel[normalize.Fold(text)]
	if !ok {
		return model.Store{}, false
	}
	return s.byID[id], true
}

// DisplayName returns the store's display name, or "" for unknown IDs.
func (s *Service) DisplayName(id model.StoreID) string {
	return s.byID[id].Name
}
