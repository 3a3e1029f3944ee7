package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
)

// fileStore is the default KeyValueStore: one JSON object file mapping
// key names to raw string values, mirroring a per-origin browser store.
//
// Writes are per-key read-modify-write cycles against the file, so two
// processes updating different keys do not clobber each other; two
// processes updating the same key are last-write-wins. The path
// ":memory:" keeps everything in memory, which tests use.
type fileStore struct {
	path     string
	inMemory bool
	logger   *logger.Logger

	mu   sync.RWMutex
	data map[string]string
}

// NewFileStore opens (or creates on first write) the state file at
// path. A missing file starts empty; a corrupt file is logged and also
// starts empty rather than failing the application.
func NewFileStore(path string, logger *logger.Logger) (KeyValueStore, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &fileStore{
		path:     path,
		inMemory: path == ":memory:",
		logger:   logger,
		data:     make(map[string]string),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) Read(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *fileStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Pick up other writers' keys before persisting, so this write only
	// replaces its own key on disk.
	current := s.loadDiskState()
	current[key] = value
	s.data = current

	if err := s.persist(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	return nil
}

func (s *fileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.loadDiskState()
	delete(current, key)
	s.data = current

	if err := s.persist(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	return nil
}

func (s *fileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

func (s *fileStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = s.loadDiskState()
	return nil
}

func (s *fileStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(map[string]string, len(s.data))
	for k, v := range s.data {
		snap[k] = v
	}
	return snap
}

// loadDiskState reads the backing file into a fresh map. Missing file
// and corrupt JSON both degrade to the current in-memory state (missing
// only on first ever load yields empty); corruption is logged, never
// raised. Callers hold s.mu.
func (s *fileStore) loadDiskState() map[string]string {
	if s.inMemory {
		return s.data
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("state file read failed")
		}
		return s.data
	}

	loaded := make(map[string]string)
	if err = json.Unmarshal(raw, &loaded); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("state file corrupt, keeping in-memory state")
		return s.data
	}
	return loaded
}

// persist writes the full key set back to disk. Callers hold s.mu.
func (s *fileStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
