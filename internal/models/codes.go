package models

import "fmt"

// Origin codes: how a secret arrived on the device.
const (
	OriginPlainImport     byte = 0x01
	OriginEncryptedImport byte = 0x02
	OriginGeneratedOnCard byte = 0x03
)

// Export-rights codes.
const (
	ExportForbidden     byte = 0x00
	ExportPlaintext     byte = 0x01
	ExportEncryptedOnly byte = 0x02
)

var secretTypeNames = map[byte]string{
	SecretTypeMasterSeed:       "Masterseed",
	SecretTypeBIP39Mnemonic:    "BIP39 mnemonic",
	SecretTypeElectrumMnemonic: "Electrum mnemonic",
	SecretTypeShamirShare:      "Shamir Secret Share",
	SecretTypePrivateKey:       "Private Key",
	SecretTypePubkey:           "Public Key",
	SecretTypeAuthPubkey:       "Authenticated Public Key",
	SecretTypeSymmetricKey:     "Symmetric Key",
	SecretTypePassword:         "Password",
	SecretTypeMasterPassword:   "Master Password",
	SecretTypeCertificate:      "Certificate",
	SecretType2FA:              "2FA secret",
	SecretTypeFreeText:         "Free text",
	SecretTypeWalletDescriptor: "Wallet descriptor",
}

var originNames = map[byte]string{
	OriginPlainImport:     "Plaintext import",
	OriginEncryptedImport: "Encrypted import",
	OriginGeneratedOnCard: "Generated on card",
}

var exportRightsNames = map[byte]string{
	ExportForbidden:     "Export forbidden",
	ExportPlaintext:     "Plaintext export allowed",
	ExportEncryptedOnly: "Encrypted export only",
}

// SecretTypeName renders a secret type code as a display name.
// Unknown codes render as hex rather than failing.
func SecretTypeName(code byte) string {
	if name, ok := secretTypeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", code)
}

// OriginName renders an origin code as a display name.
func OriginName(code byte) string {
	if name, ok := originNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", code)
}

// ExportRightsName renders an export-rights code as a display name.
func ExportRightsName(code byte) string {
	if name, ok := exportRightsNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", code)
}

// MasterSeedSubtypeName renders a master seed subtype for display.
func MasterSeedSubtypeName(code byte) string {
	switch code {
	case SubtypeDefault:
		return "Raw seed"
	case SubtypeBIP39Seed:
		return "BIP39 seed"
	default:
		return fmt.Sprintf("0x%02X", code)
	}
}
