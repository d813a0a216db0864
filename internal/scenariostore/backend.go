// Package scenariostore is a namespaced key-value wrapper with payload
// compression and schema migration for saved scenarios. Its contract is
// that nothing fails outward: a corrupt record, a missing key, or an
// unavailable backend all resolve to the caller-supplied default.
package scenariostore

// Backend is the raw host key-value store. Implementations may fail;
// the Store absorbs those failures.
type Backend interface {
	// Get returns the stored value and whether the key existed.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys lists stored keys with the given prefix.
	Keys(prefix string) ([]string, error)
}
