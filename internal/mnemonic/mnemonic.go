// Package mnemonic adapts the BIP39 wordlist library for the secret codec:
// entropy to sentence, sentence to entropy, checksum validation and seed
// derivation. The codec consumes it through an interface so tests can
// substitute a fake.
package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// BIP39 implements the mnemonic capability on top of the English wordlist.
type BIP39 struct{}

// New returns the default BIP39 capability.
func New() BIP39 {
	return BIP39{}
}

// FromEntropy converts raw entropy bytes into a mnemonic sentence.
func (BIP39) FromEntropy(entropy []byte) (string, error) {
	sentence, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("mnemonic from entropy: %w", err)
	}
	return sentence, nil
}

// ToEntropy converts a mnemonic sentence back into its entropy bytes,
// verifying the checksum.
func (BIP39) ToEntropy(sentence string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(strings.TrimSpace(sentence))
	if err != nil {
		return nil, fmt.Errorf("entropy from mnemonic: %w", err)
	}
	return entropy, nil
}

// IsValid reports whether the sentence passes wordlist and checksum
// validation. Electrum mnemonics legitimately fail this check.
func (BIP39) IsValid(sentence string) bool {
	return bip39.IsMnemonicValid(strings.TrimSpace(sentence))
}

// Seed derives the 64-byte BIP39 seed from a sentence and passphrase.
func (BIP39) Seed(sentence, passphrase string) []byte {
	return bip39.NewSeed(strings.TrimSpace(sentence), passphrase)
}
