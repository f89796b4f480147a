package settings

import (
	"sync"

	"github.com/evrazdex/gateway-resolver/types"
)

var _ types.UserPreferenceStore = (*MemoryStore)(nil)

// MemoryStore keeps the filter list in process memory only.
type MemoryStore struct {
	mu        sync.RWMutex
	providers []string
}

func NewMemoryStore(providers ...string) *MemoryStore {
	return &MemoryStore{providers: clone(providers)}
}

func (s *MemoryStore) FilteredServiceProviders() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.providers)
}

func (s *MemoryStore) SetFilteredServiceProviders(providers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers = clone(providers)
	return nil
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
