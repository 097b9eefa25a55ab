package truststore

import "encoding/hex"

// DeviceKey is a public-key secret resident on the connected card, as
// listed by its headers.
type DeviceKey struct {
	// Label is the secret's label from its header.
	Label string
	// Fingerprint is the device-computed fingerprint from the header.
	// Recomputed from Pubkey when empty.
	Fingerprint string
	// Pubkey is the decoded public key bytes.
	Pubkey []byte
}

// Candidate is one selectable target for a cross-card export.
type Candidate struct {
	// Label describes the candidate for display.
	Label string
	// Fingerprint identifies the key; empty for the plaintext sentinel.
	Fingerprint string
	// PubkeyHexPrefix is the first 8 hex chars of the key; empty for the
	// plaintext sentinel.
	PubkeyHexPrefix string
	// FromDevice reports whether the key is resident on the connected
	// card rather than the trust store.
	FromDevice bool
}

// PlaintextExportLabel is the sentinel candidate offered first in every
// merged list: exporting with no recipient key, i.e. in plaintext.
const PlaintextExportLabel = "None (export in plaintext)"

// MergeCandidates builds the ordered list of keys selectable for an
// encrypted export: the plaintext sentinel, then the card-resident keys in
// header order, then stored identities in registration order. Duplicates
// are dropped by fingerprint (the user-facing identity of a key), and the
// caller's own authentikey is never offered as a recipient.
func (s *Store) MergeCandidates(deviceKeys []DeviceKey, selfAuthentikey []byte) []Candidate {
	out := []Candidate{{Label: PlaintextExportLabel}}
	seen := make(map[string]bool)

	for _, k := range deviceKeys {
		fp := k.Fingerprint
		if fp == "" {
			fp = Fingerprint(k.Pubkey)
		}
		seen[fp] = true
		out = append(out, Candidate{
			Label:           k.Label,
			Fingerprint:     fp,
			PubkeyHexPrefix: hexPrefix(hex.EncodeToString(k.Pubkey)),
			FromDevice:      true,
		})
	}

	selfHex := hex.EncodeToString(selfAuthentikey)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range s.order {
		entry := s.entries[key]
		if key == selfHex || seen[entry.Fingerprint] {
			continue
		}
		seen[entry.Fingerprint] = true
		out = append(out, Candidate{
			Label:           entry.CardLabel,
			Fingerprint:     entry.Fingerprint,
			PubkeyHexPrefix: hexPrefix(key),
		})
	}
	return out
}

func hexPrefix(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:8]
}
