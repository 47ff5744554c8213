// Package localstore provides the key-value stores backing session and
// review persistence: a durable SQLite-backed store and an ephemeral
// in-process one.
package localstore

// KV is simple string key-value storage. Get reports whether the key was
// present; a missing key is not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
