package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Load reads and validates an artifact from a JSON file.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Store holds the process-wide artifact. Request paths read the current
// pointer without locking; Reload validates a full replacement before
// swapping it in, serialized so concurrent reloads cannot interleave.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Artifact]
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the resident artifact, or ErrNotReady before the first
// successful install.
func (s *Store) Snapshot() (*Artifact, error) {
	a := s.current.Load()
	if a == nil {
		return nil, ErrNotReady
	}
	return a, nil
}

func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// Install replaces the resident artifact. The artifact must already be
// validated.
func (s *Store) Install(a *Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Store(a)
}

// Reload loads a replacement artifact from path and swaps it in. On any
// failure the previous artifact stays in place untouched.
func (s *Store) Reload(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := Load(path)
	if err != nil {
		return err
	}
	s.current.Store(a)
	return nil
}
