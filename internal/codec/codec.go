package codec

import (
	"strings"

	"go.uber.org/zap"

	"github.com/avoronov/seedvault/internal/models"
)

// Wordlist is the mnemonic capability the codec depends on. Implemented by
// internal/mnemonic; substituted in tests.
type Wordlist interface {
	// FromEntropy converts entropy bytes into a mnemonic sentence.
	FromEntropy(entropy []byte) (string, error)
	// ToEntropy converts a sentence back to entropy, verifying the checksum.
	ToEntropy(sentence string) ([]byte, error)
	// IsValid reports whether a sentence passes wordlist and checksum checks.
	IsValid(sentence string) bool
	// Seed derives the 64-byte seed from a sentence and passphrase.
	Seed(sentence, passphrase string) []byte
}

// Codec converts secret payloads to and from device byte buffers.
// It is stateless and safe for concurrent use.
type Codec struct {
	words Wordlist
	log   *zap.Logger
}

// New constructs a Codec. A nil logger disables advisory logging.
func New(words Wordlist, log *zap.Logger) *Codec {
	if log == nil {
		log = zap.NewNop()
	}
	return &Codec{words: words, log: log}
}

// Decode interprets buf according to the secret type and subtype from its
// header. The returned payload is fully independent of buf.
func (c *Codec) Decode(typ, subtype byte, buf []byte) (models.SecretPayload, error) {
	switch typ {
	case models.SecretTypeMasterSeed:
		switch subtype {
		case models.SubtypeDefault:
			return decodeRawSeed(buf)
		case models.SubtypeBIP39Seed:
			return c.decodeBIP39Seed(buf)
		}
	case models.SecretTypeBIP39Mnemonic, models.SecretTypeElectrumMnemonic:
		if subtype == models.SubtypeDefault {
			return c.decodeMnemonic(typ, buf)
		}
	case models.SecretTypePassword, models.SecretTypeMasterPassword:
		if subtype == models.SubtypeDefault {
			return decodePassword(buf)
		}
	case models.SecretTypeFreeText:
		if subtype == models.SubtypeDefault {
			return decodeFreeText(buf)
		}
	case models.SecretTypeWalletDescriptor:
		if subtype == models.SubtypeDefault {
			return decodeDescriptor(buf)
		}
	case models.SecretTypePubkey, models.SecretTypeAuthPubkey:
		if subtype == models.SubtypeDefault {
			return decodePubkey(buf)
		}
	}
	return nil, &UnsupportedSecretTypeError{Type: typ, Subtype: subtype}
}

func decodeRawSeed(buf []byte) (models.SecretPayload, error) {
	r := &reader{buf: buf}
	n, err := r.len8("seed")
	if err != nil {
		return nil, err
	}
	seed, err := r.bytes("seed", n)
	if err != nil {
		return nil, err
	}
	if err := r.done("seed"); err != nil {
		return nil, err
	}
	return models.MasterSeed{Seed: append([]byte(nil), seed...)}, nil
}

func (c *Codec) decodeBIP39Seed(buf []byte) (models.SecretPayload, error) {
	r := &reader{buf: buf}
	n, err := r.len8("seed")
	if err != nil {
		return nil, err
	}
	seed, err := r.bytes("seed", n)
	if err != nil {
		return nil, err
	}
	selector, err := r.bytes("wordlist_selector", 1)
	if err != nil {
		return nil, err
	}
	n, err = r.len8("entropy")
	if err != nil {
		return nil, err
	}
	entropyStart := r.off
	entropy, err := r.bytes("entropy", n)
	if err != nil {
		return nil, err
	}
	n, err = r.len8("passphrase")
	if err != nil {
		return nil, err
	}
	passphrase, err := r.text("passphrase", n)
	if err != nil {
		return nil, err
	}
	if err := r.done("passphrase"); err != nil {
		return nil, err
	}

	out := models.MasterSeed{
		Seed:             append([]byte(nil), seed...),
		WordlistSelector: selector[0],
		Entropy:          append([]byte(nil), entropy...),
		Passphrase:       passphrase,
		HasBIP39:         true,
	}
	// The stored entropy is authoritative; the mnemonic is always
	// regenerated from it, never stored alongside.
	if len(out.Entropy) > 0 {
		sentence, err := c.words.FromEntropy(out.Entropy)
		if err != nil {
			return nil, &MalformedSecretError{Field: "entropy", Offset: entropyStart, Reason: "entropy does not map to a mnemonic: " + err.Error()}
		}
		out.Mnemonic = sentence
	}
	return out, nil
}

func (c *Codec) decodeMnemonic(typ byte, buf []byte) (models.SecretPayload, error) {
	r := &reader{buf: buf}
	n, err := r.len8("mnemonic")
	if err != nil {
		return nil, err
	}
	words, err := r.text("mnemonic", n)
	if err != nil {
		return nil, err
	}

	// The passphrase field is optional: older cards end the buffer right
	// after the mnemonic bytes, which means an empty passphrase.
	var passphrase string
	if r.remaining() > 0 {
		n, err = r.len8("passphrase")
		if err != nil {
			return nil, err
		}
		passphrase, err = r.text("passphrase", n)
		if err != nil {
			return nil, err
		}
		if err := r.done("passphrase"); err != nil {
			return nil, err
		}
	}

	// Advisory only: Electrum mnemonics intentionally fail the BIP39
	// checksum, and stored secrets must stay readable either way.
	if !c.words.IsValid(words) {
		c.log.Warn("stored mnemonic failed BIP39 validation",
			zap.String("secret_type", models.SecretTypeName(typ)))
	}
	return models.Mnemonic{Words: words, Passphrase: passphrase}, nil
}

// decodePassword reads the length-prefixed triple layout. Buffers written
// by older tools used a delimiter-based free-text blob instead; when the
// triple structure does not fit exactly, decoding falls back to that
// legacy parse so existing card contents stay readable.
func decodePassword(buf []byte) (models.SecretPayload, error) {
	if p, ok := tryDecodePasswordTriple(buf); ok {
		return p, nil
	}
	return decodePasswordLegacy(buf)
}

func tryDecodePasswordTriple(buf []byte) (models.Password, bool) {
	r := &reader{buf: buf}
	var out models.Password
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"password", &out.Password},
		{"login", &out.Login},
		{"url", &out.URL},
	} {
		n, err := r.len16(f.name)
		if err != nil {
			return models.Password{}, false
		}
		s, err := r.text(f.name, n)
		if err != nil {
			return models.Password{}, false
		}
		*f.dst = s
	}
	if r.remaining() != 0 {
		return models.Password{}, false
	}
	return out, true
}

func decodePasswordLegacy(buf []byte) (models.SecretPayload, error) {
	r := &reader{buf: buf}
	blob, err := r.text("password", len(buf))
	if err != nil {
		return nil, err
	}
	out := models.Password{Password: blob}
	if before, after, found := strings.Cut(blob, "login:"); found {
		out.Password = before
		out.Login = after
		if login, url, found := strings.Cut(after, "url:"); found {
			out.Login = login
			out.URL = url
		}
	}
	return out, nil
}

func decodeFreeText(buf []byte) (models.SecretPayload, error) {
	text, err := decodeSizedText("text", buf)
	if err != nil {
		return nil, err
	}
	return models.FreeText{Text: text}, nil
}

func decodeDescriptor(buf []byte) (models.SecretPayload, error) {
	descriptor, err := decodeSizedText("descriptor", buf)
	if err != nil {
		return nil, err
	}
	return models.WalletDescriptor{Descriptor: descriptor}, nil
}

// decodeSizedText reads a single L2 field whose declared size must equal
// the remaining buffer exactly: neither silent truncation nor extension.
func decodeSizedText(field string, buf []byte) (string, error) {
	r := &reader{buf: buf}
	n, err := r.len16(field)
	if err != nil {
		return "", err
	}
	if n != r.remaining() {
		return "", &MalformedSecretError{Field: field, Offset: r.off, Declared: n, Remaining: r.remaining(), Reason: "declared size does not match payload"}
	}
	return r.text(field, n)
}

func decodePubkey(buf []byte) (models.SecretPayload, error) {
	r := &reader{buf: buf}
	n, err := r.len8("pubkey")
	if err != nil {
		return nil, err
	}
	key, err := r.bytes("pubkey", n)
	if err != nil {
		return nil, err
	}
	if err := r.done("pubkey"); err != nil {
		return nil, err
	}
	return models.Pubkey{Raw: append([]byte(nil), key...)}, nil
}
