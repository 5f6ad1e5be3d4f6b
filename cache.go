// cache.go: Process-wide cipher context cache keyed by key fingerprint.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"sync"
	"time"

	"github.com/agilira/go-timecache"
)

// Global context cache so hot paths skip re-running the key schedule.
var (
	cipherCacheMu sync.RWMutex
	cipherCache   = make(map[string]*cachedCipher)
)

type cachedCipher struct {
	cipher  *Cipher
	addedAt time.Time
}

// CachedCipher returns a cipher context for key, reusing one built earlier
// for the same key when available. Contexts are immutable, so a cached
// context is safe to share across goroutines.
//
// Entries are keyed by key fingerprint, never by the key material itself.
// Long-running processes that cycle through many keys should call
// PruneCipherCache periodically.
func CachedCipher(key []byte) (*Cipher, error) {
	fingerprint := GetKeyFingerprint(key)

	cipherCacheMu.RLock()
	if entry, exists := cipherCache[fingerprint]; exists {
		cipherCacheMu.RUnlock()
		return entry.cipher, nil
	}
	cipherCacheMu.RUnlock()

	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}

	cipherCacheMu.Lock()
	cipherCache[fingerprint] = &cachedCipher{
		cipher:  c,
		addedAt: timecache.CachedTime().UTC(),
	}
	cipherCacheMu.Unlock()

	return c, nil
}

// FlushCipherCache drops every cached cipher context.
func FlushCipherCache() {
	cipherCacheMu.Lock()
	cipherCache = make(map[string]*cachedCipher)
	cipherCacheMu.Unlock()
}

// PruneCipherCache drops cached contexts older than maxAge and reports how
// many were removed.
func PruneCipherCache(maxAge time.Duration) int {
	cutoff := timecache.CachedTime().UTC().Add(-maxAge)

	cipherCacheMu.Lock()
	defer cipherCacheMu.Unlock()

	removed := 0
	for fingerprint, entry := range cipherCache {
		if entry.addedAt.Before(cutoff) {
			delete(cipherCache, fingerprint)
			removed++
		}
	}
	return removed
}
