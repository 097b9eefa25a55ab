package mnemonic

import (
	"encoding/hex"
	"testing"
)

// Standard BIP39 test vector: all-zero entropy.
const vectorSentence = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestFromEntropyVector(t *testing.T) {
	entropy := make([]byte, 16)
	sentence, err := New().FromEntropy(entropy)
	if err != nil {
		t.Fatalf("FromEntropy failed: %v", err)
	}
	if sentence != vectorSentence {
		t.Errorf("sentence = %q; want %q", sentence, vectorSentence)
	}
}

func TestToEntropyRoundTrip(t *testing.T) {
	entropy, err := New().ToEntropy(vectorSentence)
	if err != nil {
		t.Fatalf("ToEntropy failed: %v", err)
	}
	if hex.EncodeToString(entropy) != "00000000000000000000000000000000" {
		t.Errorf("entropy = %x; want 16 zero bytes", entropy)
	}
}

func TestToEntropyBadChecksum(t *testing.T) {
	_, err := New().ToEntropy("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon")
	if err == nil {
		t.Error("expected checksum error")
	}
}

func TestIsValid(t *testing.T) {
	m := New()
	if !m.IsValid(vectorSentence) {
		t.Error("vector sentence should validate")
	}
	if m.IsValid("definitely not a mnemonic") {
		t.Error("garbage should not validate")
	}
}

func TestSeedLength(t *testing.T) {
	seed := New().Seed(vectorSentence, "TREZOR")
	if len(seed) != 64 {
		t.Errorf("seed length = %d; want 64", len(seed))
	}
}
