// Package models defines the core data structures exchanged with a
// SeedKeeper-style secure element: secret headers, decoded secret payloads,
// audit-log records and device status snapshots.
package models

// SecretHeader describes a secret as listed by the device. It is immutable
// once returned by the transport and is never mutated by this library.
type SecretHeader struct {
	// ID is the device-assigned slot identifier of the secret.
	ID uint16
	// Type is the secret type code (see the SecretType* constants).
	Type byte
	// Subtype refines the payload layout for a given type.
	Subtype byte
	// Origin records how the secret got onto the device.
	Origin byte
	// ExportRights controls whether the secret may leave the device in plaintext.
	ExportRights byte
	// Label is the user-chosen display name of the secret.
	Label string
	// Fingerprint is the device-computed 8-hex-char identifier of the secret.
	Fingerprint string
}

// Secret type codes as stored on the device.
const (
	SecretTypeMasterSeed       byte = 0x10
	SecretTypeBIP39Mnemonic    byte = 0x30
	SecretTypeElectrumMnemonic byte = 0x40
	SecretTypeShamirShare      byte = 0x50
	SecretTypePrivateKey       byte = 0x60
	SecretTypePubkey           byte = 0x70
	SecretTypeAuthPubkey       byte = 0x71
	SecretTypeSymmetricKey     byte = 0x80
	SecretTypePassword         byte = 0x90
	SecretTypeMasterPassword   byte = 0x91
	SecretTypeCertificate      byte = 0xA0
	SecretType2FA              byte = 0xB0
	SecretTypeFreeText         byte = 0xC0
	SecretTypeWalletDescriptor byte = 0xC1
)

// Master seed subtypes.
const (
	// SubtypeDefault is the plain layout shared by most secret types.
	SubtypeDefault byte = 0x00
	// SubtypeBIP39Seed marks a master seed that carries its BIP39
	// entropy, wordlist selector and passphrase alongside the seed bytes.
	SubtypeBIP39Seed byte = 0x01
)

// SecretPayload is the decoded form of a secret's byte buffer. It is a
// closed union: the concrete types below are the only implementations.
type SecretPayload interface {
	secretPayload()
}

// MasterSeed is a master seed secret. For SubtypeBIP39Seed the entropy,
// wordlist selector and passphrase are present and Mnemonic holds the
// sentence regenerated from Entropy; for SubtypeDefault only Seed is set.
type MasterSeed struct {
	Seed []byte
	// WordlistSelector identifies the BIP39 wordlist (0x00 = English).
	// Only meaningful when HasBIP39 is true.
	WordlistSelector byte
	Entropy          []byte
	Passphrase       string
	// Mnemonic is regenerated from Entropy on decode. Empty when the
	// entropy is absent; never part of the encoded buffer.
	Mnemonic string
	// HasBIP39 reports whether the BIP39 fields above are populated
	// (payload was, or will be, encoded with SubtypeBIP39Seed).
	HasBIP39 bool
}

// Mnemonic is a BIP39 or Electrum mnemonic stored as text with an
// optional passphrase.
type Mnemonic struct {
	Words      string
	Passphrase string
}

// Password is a password secret with optional login and url context.
type Password struct {
	Password string
	Login    string
	URL      string
}

// FreeText is an arbitrary UTF-8 text secret.
type FreeText struct {
	Text string
}

// WalletDescriptor is an output-descriptor secret.
type WalletDescriptor struct {
	Descriptor string
}

// Pubkey is a public-key secret, kept as raw bytes.
type Pubkey struct {
	Raw []byte
}

func (MasterSeed) secretPayload()       {}
func (Mnemonic) secretPayload()         {}
func (Password) secretPayload()         {}
func (FreeText) secretPayload()         {}
func (WalletDescriptor) secretPayload() {}
func (Pubkey) secretPayload()           {}
