// Package truststore keeps the public keys of other cards encountered
// during a session and derives the short fingerprints used to identify
// them. One store is created per device session; there is no process-wide
// registry.
package truststore

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"go.uber.org/zap"
)

// Entry is a known card identity, keyed in the store by the uncompressed
// public key hex. Entries are never overwritten.
type Entry struct {
	// CardLabel is the label of the card the key belongs to.
	CardLabel string
	// Fingerprint is the 8-hex-char identifier derived from the key.
	Fingerprint string
	// CompressedPubkeyHex is the compressed form of the key, hex-encoded.
	CompressedPubkeyHex string
}

// Store is a deduplicated registry of known card public keys.
// Registration is serialized; reads of the fingerprint function need no
// synchronization.
type Store struct {
	mu      sync.Mutex
	entries map[string]Entry
	order   []string // uncompressed hex keys in registration order
	log     *zap.Logger
}

// New returns an empty store. A nil logger disables logging.
func New(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		entries: make(map[string]Entry),
		log:     log,
	}
}

// Fingerprint derives the display identifier of a public key: the first
// 4 bytes of SHA-256 over the length-prefixed key, hex-encoded. It is a
// stable display handle, not a security boundary.
func Fingerprint(pubkey []byte) string {
	h := sha256.New()
	h.Write([]byte{byte(len(pubkey))})
	h.Write(pubkey)
	return hex.EncodeToString(h.Sum(nil)[:4])
}

// Register inserts a card identity if its uncompressed key is not already
// known. It reports whether the entry was inserted; re-registering an
// existing key is a normal no-op, never an error, and never mutates the
// stored entry.
func (s *Store) Register(authentikey []byte, cardLabel string, compressedPubkey []byte) (Entry, bool) {
	key := hex.EncodeToString(authentikey)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[key]; ok {
		s.log.Debug("authentikey already in truststore",
			zap.String("fingerprint", existing.Fingerprint))
		return existing, false
	}

	entry := Entry{
		CardLabel:           cardLabel,
		Fingerprint:         Fingerprint(authentikey),
		CompressedPubkeyHex: hex.EncodeToString(compressedPubkey),
	}
	s.entries[key] = entry
	s.order = append(s.order, key)
	s.log.Info("registered card in truststore",
		zap.String("label", cardLabel),
		zap.String("fingerprint", entry.Fingerprint))
	return entry, true
}

// Len returns the number of registered identities.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns the registered entries in registration order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.entries[key])
	}
	return out
}
