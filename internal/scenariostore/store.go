package scenariostore

import (
	"encoding/json"
	"log"
	"sort"
	"strings"

	"mining-econ/internal/model"
)

const scenarioPrefix = "scenario:"

// Store namespaces a Backend and guarantees its own API never fails:
// every failure path resolves to the caller-supplied default and a
// warning log line.
type Store struct {
	namespace string
	backend   Backend
	threshold int
}

// New wraps a backend under a namespace. A nil backend degrades to an
// in-memory one so the store always works.
func New(namespace string, backend Backend) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	if namespace == "" {
		namespace = "mining-econ"
	}
	return &Store{
		namespace: namespace,
		backend:   backend,
		threshold: DefaultCompressionThreshold,
	}
}

// WithCompressionThreshold overrides the size above which payloads are
// compressed. Non-positive keeps the default.
func (s *Store) WithCompressionThreshold(bytes int) *Store {
	if bytes > 0 {
		s.threshold = bytes
	}
	return s
}

func (s *Store) fullKey(key string) string {
	return s.namespace + ":" + key
}

// Get returns the stored value for key, or def when the key is missing,
// the backend fails, or the payload cannot be decoded.
func (s *Store) Get(key, def string) string {
	stored, ok, err := s.backend.Get(s.fullKey(key))
	if err != nil {
		log.Printf("[Store] get %q failed, using default: %v", key, err)
		return def
	}
	if !ok {
		return def
	}
	payload, err := decodePayload(stored)
	if err != nil {
		log.Printf("[Store] get %q corrupt, using default: %v", key, err)
		return def
	}
	return payload
}

// Set stores a value, compressing large payloads. Failures are logged
// and swallowed; the caller keeps functioning with in-memory state.
func (s *Store) Set(key, value string) {
	if err := s.backend.Set(s.fullKey(key), encodePayload(value, s.threshold)); err != nil {
		log.Printf("[Store] set %q failed: %v", key, err)
	}
}

// Remove deletes a key; removing a missing key is a no-op.
func (s *Store) Remove(key string) {
	if err := s.backend.Delete(s.fullKey(key)); err != nil {
		log.Printf("[Store] remove %q failed: %v", key, err)
	}
}

// SaveScenario persists a scenario under its name, stamping the current
// schema version. Returns false only when serialization itself fails.
func (s *Store) SaveScenario(sc model.Scenario) bool {
	sc.SchemaVersion = model.CurrentSchemaVersion
	raw, err := json.Marshal(sc)
	if err != nil {
		log.Printf("[Store] serialize scenario %q failed: %v", sc.Name, err)
		return false
	}
	s.Set(scenarioPrefix+sc.Name, string(raw))
	return true
}

// LoadScenario loads and migrates a scenario by name. A missing, corrupt,
// or unmigratable record yields the default scenario shape for that name.
func (s *Store) LoadScenario(name string) model.Scenario {
	payload := s.Get(scenarioPrefix+name, "")
	if payload == "" {
		return model.DefaultScenario(name)
	}
	sc, err := migrateScenario(payload)
	if err != nil {
		log.Printf("[Store] scenario %q failed migration, using default: %v", name, err)
		return model.DefaultScenario(name)
	}
	return sc
}

// ListScenarios returns saved scenario names, sorted. Backend failure
// yields an empty list.
func (s *Store) ListScenarios() []string {
	prefix := s.fullKey(scenarioPrefix)
	keys, err := s.backend.Keys(prefix)
	if err != nil {
		log.Printf("[Store] list scenarios failed: %v", err)
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, prefix))
	}
	sort.Strings(names)
	return names
}

// DeleteScenario removes a saved scenario by name.
func (s *Store) DeleteScenario(name string) {
	s.Remove(scenarioPrefix + name)
}
