package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Keyer maps a document source to its cache key.
type Keyer interface {
	DocumentKey(source string) string
}

// DefaultKeyer keys documents by "document:" plus the SHA-256 of the source,
// so long URLs with query strings still make safe file names and Redis keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) DocumentKey(source string) string {
	return "document:" + Hash([]byte(source))
}

// ScopedKeyer prefixes another keyer's keys, so that several teams or CI
// environments can share one Redis instance (config: cache.prefix).
//
//	ci := NewScopedKeyer(NewDefaultKeyer(), "ci:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) DocumentKey(source string) string {
	return k.prefix + k.inner.DocumentKey(source)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
