package codec

import (
	"strings"

	"github.com/avoronov/seedvault/internal/models"
)

const (
	maxLen8  = 0xFF
	maxLen16 = 0xFFFF
)

// Encode serializes a payload into the byte buffer the device stores.
// The caller supplies the matching header codes via WireType.
func (c *Codec) Encode(p models.SecretPayload) ([]byte, error) {
	switch v := p.(type) {
	case models.MasterSeed:
		return encodeMasterSeed(v)
	case models.Mnemonic:
		return encodeMnemonic(v)
	case models.Password:
		return encodePassword(v)
	case models.FreeText:
		return encodeSizedText("text", v.Text)
	case models.WalletDescriptor:
		return encodeSizedText("descriptor", v.Descriptor)
	case models.Pubkey:
		return encodePubkey(v)
	default:
		return nil, &UnsupportedSecretTypeError{}
	}
}

// WireType returns the header type and subtype codes a payload encodes as.
// Mnemonic payloads default to the BIP39 type; callers storing Electrum
// mnemonics override the type on the header.
func WireType(p models.SecretPayload) (typ, subtype byte, ok bool) {
	switch v := p.(type) {
	case models.MasterSeed:
		if v.HasBIP39 {
			return models.SecretTypeMasterSeed, models.SubtypeBIP39Seed, true
		}
		return models.SecretTypeMasterSeed, models.SubtypeDefault, true
	case models.Mnemonic:
		return models.SecretTypeBIP39Mnemonic, models.SubtypeDefault, true
	case models.Password:
		return models.SecretTypePassword, models.SubtypeDefault, true
	case models.FreeText:
		return models.SecretTypeFreeText, models.SubtypeDefault, true
	case models.WalletDescriptor:
		return models.SecretTypeWalletDescriptor, models.SubtypeDefault, true
	case models.Pubkey:
		return models.SecretTypePubkey, models.SubtypeDefault, true
	default:
		return 0, 0, false
	}
}

func encodeMasterSeed(v models.MasterSeed) ([]byte, error) {
	if len(v.Seed) > maxLen8 {
		return nil, &ConstraintError{Field: "seed", Size: len(v.Seed), Max: maxLen8}
	}
	buf := append([]byte{byte(len(v.Seed))}, v.Seed...)
	if !v.HasBIP39 {
		return buf, nil
	}
	if len(v.Entropy) > maxLen8 {
		return nil, &ConstraintError{Field: "entropy", Size: len(v.Entropy), Max: maxLen8}
	}
	if len(v.Passphrase) > maxLen8 {
		return nil, &ConstraintError{Field: "passphrase", Size: len(v.Passphrase), Max: maxLen8}
	}
	buf = append(buf, v.WordlistSelector)
	buf = append(buf, byte(len(v.Entropy)))
	buf = append(buf, v.Entropy...)
	buf = append(buf, byte(len(v.Passphrase)))
	buf = append(buf, v.Passphrase...)
	return buf, nil
}

func encodeMnemonic(v models.Mnemonic) ([]byte, error) {
	words := []byte(v.Words)
	if len(words) > maxLen8 {
		return nil, &ConstraintError{Field: "mnemonic", Size: len(words), Max: maxLen8}
	}
	if len(v.Passphrase) > maxLen8 {
		return nil, &ConstraintError{Field: "passphrase", Size: len(v.Passphrase), Max: maxLen8}
	}
	buf := append([]byte{byte(len(words))}, words...)
	buf = append(buf, byte(len(v.Passphrase)))
	buf = append(buf, v.Passphrase...)
	return buf, nil
}

// encodePassword writes the unambiguous length-prefixed triple. This is
// intentionally not the delimiter-joined blob older tools wrote, which
// could not represent a password containing "login:" or "url:".
func encodePassword(v models.Password) ([]byte, error) {
	var buf []byte
	for _, f := range []struct {
		name  string
		value string
	}{
		{"password", v.Password},
		{"login", v.Login},
		{"url", v.URL},
	} {
		b := []byte(f.value)
		if len(b) > maxLen16 {
			return nil, &ConstraintError{Field: f.name, Size: len(b), Max: maxLen16}
		}
		buf = append(buf, byte(len(b)>>8), byte(len(b)))
		buf = append(buf, b...)
	}
	return buf, nil
}

func encodeSizedText(field, text string) ([]byte, error) {
	b := []byte(text)
	if len(b) > maxLen16 {
		return nil, &ConstraintError{Field: field, Size: len(b), Max: maxLen16}
	}
	buf := make([]byte, 0, 2+len(b))
	buf = append(buf, byte(len(b)>>8), byte(len(b)))
	return append(buf, b...), nil
}

func encodePubkey(v models.Pubkey) ([]byte, error) {
	if len(v.Raw) > maxLen8 {
		return nil, &ConstraintError{Field: "pubkey", Size: len(v.Raw), Max: maxLen8}
	}
	return append([]byte{byte(len(v.Raw))}, v.Raw...), nil
}

// BuildBIP39MasterSeed validates a user-supplied mnemonic and assembles
// the master seed payload for import. Unlike the advisory check on stored
// mnemonics, a bad sentence here is fatal: seed derivation needs a
// checksummed mnemonic.
func (c *Codec) BuildBIP39MasterSeed(sentence, passphrase string, selector byte) (models.MasterSeed, error) {
	words := strings.Fields(sentence)
	if len(words) != 12 && len(words) != 24 {
		return models.MasterSeed{}, &InvalidMnemonicError{WordCount: len(words), Reason: "word count must be 12 or 24"}
	}
	entropy, err := c.words.ToEntropy(sentence)
	if err != nil {
		return models.MasterSeed{}, &InvalidMnemonicError{WordCount: len(words), Reason: err.Error()}
	}
	return models.MasterSeed{
		Seed:             c.words.Seed(sentence, passphrase),
		WordlistSelector: selector,
		Entropy:          entropy,
		Passphrase:       passphrase,
		Mnemonic:         strings.Join(words, " "),
		HasBIP39:         true,
	}, nil
}
