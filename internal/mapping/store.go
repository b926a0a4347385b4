package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rsimai/xtouch-mini/internal/control"
)

// Binding associates one physical control with a mixer target and function.
// The control key itself is the map key in the Store; a binding additionally
// carries a generated ID so it can be referred to without typing the raw key.
type Binding struct {
	ID     string         `json:"id"`
	Target control.Target `json:"target"`
	Type   control.Type   `json:"type"`
}

// NewBinding creates a binding with a generated ID.
func NewBinding(target control.Target, typ control.Type) Binding {
	return Binding{ID: uuid.New().String(), Target: target, Type: typ}
}

// CorruptStoreError reports a bindings file that exists but cannot be parsed
// into valid binding records. It is fatal at load time; the store never
// half-loads a damaged file.
type CorruptStoreError struct {
	Path string
	Err  error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("bindings file %s is unusable: %v", e.Path, e.Err)
}

func (e *CorruptStoreError) Unwrap() error { return e.Err }

// Store is the persisted table of control key -> Binding. All accessors are
// safe for concurrent use; Save serializes under the lock but performs file
// I/O outside it so event processing is not stalled by the disk.
type Store struct {
	mu       sync.Mutex
	path     string
	bindings map[string]Binding
}

// NewStore creates an empty store backed by the given file path. Nothing is
// read until Load is called.
func NewStore(path string) *Store {
	return &Store{path: path, bindings: map[string]Binding{}}
}

// DefaultPath returns the platform-appropriate bindings file location.
func DefaultPath() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "xtouch-mini", "bindings.json"), nil
}

// Load reads the persisted bindings. A missing file is a first run and loads
// an empty store. A file that cannot be parsed, or that contains an entry
// with an invalid target or control type, fails with *CorruptStoreError.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.mu.Lock()
		s.bindings = map[string]Binding{}
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading bindings file: %w", err)
	}

	var loaded map[string]Binding
	if err := json.Unmarshal(data, &loaded); err != nil {
		return &CorruptStoreError{Path: s.path, Err: err}
	}
	for key, b := range loaded {
		if key == "" {
			return &CorruptStoreError{Path: s.path, Err: fmt.Errorf("empty control key")}
		}
		if !b.Target.Valid() {
			return &CorruptStoreError{Path: s.path, Err: fmt.Errorf("control %s has an invalid target", key)}
		}
		if !b.Type.Valid() {
			return &CorruptStoreError{Path: s.path, Err: fmt.Errorf("control %s has invalid type %q", key, b.Type)}
		}
		// Files written by older versions have no record IDs.
		if b.ID == "" {
			b.ID = uuid.New().String()
			loaded[key] = b
		}
	}

	s.mu.Lock()
	s.bindings = loaded
	s.mu.Unlock()
	return nil
}

// Get returns the binding for a control key.
func (s *Store) Get(key string) (Binding, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bindings[key]
	return b, ok
}

// Put inserts or replaces the binding for a control key. The learn session
// never calls Put for an already-bound key; reprogramming goes through an
// explicit Delete first.
func (s *Store) Put(key string, b Binding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[key] = b
}

// Delete removes the binding for a control key.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bindings[key]; !ok {
		return false
	}
	delete(s.bindings, key)
	return true
}

// Resolve turns a user-supplied reference into a control key. It accepts the
// control key itself or a unique prefix of a binding ID.
func (s *Store) Resolve(ref string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bindings[ref]; ok {
		return ref, true
	}
	match := ""
	for key, b := range s.bindings {
		if strings.HasPrefix(b.ID, ref) {
			if match != "" {
				return "", false // ambiguous
			}
			match = key
		}
	}
	return match, match != ""
}

// Keys returns the bound control keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.bindings))
	for key := range s.bindings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of bindings.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bindings)
}

// Save persists the full binding set. The replacement is atomic: the new
// content is written to a temporary file in the same directory and renamed
// over the old one, so a failed save leaves the previous file intact.
func (s *Store) Save() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.bindings, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encoding bindings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating bindings directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "bindings-*.json")
	if err != nil {
		return fmt.Errorf("creating temporary bindings file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing bindings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing bindings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing bindings file: %w", err)
	}
	return nil
}
