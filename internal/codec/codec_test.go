package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/seedvault/internal/mnemonic"
	"github.com/avoronov/seedvault/internal/models"
)

// Standard BIP39 vector: all-zero 128-bit entropy.
const testSentence = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	return New(mnemonic.New(), nil)
}

func TestRawSeedRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	seed := bytes.Repeat([]byte{0xAB}, 32)

	buf, err := c.Encode(models.MasterSeed{Seed: seed})
	require.NoError(t, err)
	require.Equal(t, byte(32), buf[0])

	got, err := c.Decode(models.SecretTypeMasterSeed, models.SubtypeDefault, buf)
	require.NoError(t, err)
	ms, ok := got.(models.MasterSeed)
	require.True(t, ok)
	assert.Equal(t, seed, ms.Seed)
	assert.False(t, ms.HasBIP39)
}

func TestSeedWithPassphraseRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	in := models.MasterSeed{
		Seed:       bytes.Repeat([]byte{0x01}, 64),
		Passphrase: "correct horse",
		HasBIP39:   true,
	}

	buf, err := c.Encode(in)
	require.NoError(t, err)

	got, err := c.Decode(models.SecretTypeMasterSeed, models.SubtypeBIP39Seed, buf)
	require.NoError(t, err)
	ms := got.(models.MasterSeed)
	assert.Equal(t, in.Seed, ms.Seed)
	assert.Equal(t, in.Passphrase, ms.Passphrase)
	assert.Empty(t, ms.Entropy)
	assert.Empty(t, ms.Mnemonic, "no entropy means no regenerated mnemonic")
}

func TestBIP39SeedRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	in, err := c.BuildBIP39MasterSeed(testSentence, "TREZOR", 0x00)
	require.NoError(t, err)
	require.Len(t, in.Seed, 64)
	require.Len(t, in.Entropy, 16)

	buf, err := c.Encode(in)
	require.NoError(t, err)

	got, err := c.Decode(models.SecretTypeMasterSeed, models.SubtypeBIP39Seed, buf)
	require.NoError(t, err)
	ms := got.(models.MasterSeed)
	assert.Equal(t, testSentence, ms.Mnemonic, "mnemonic must regenerate from entropy")
	assert.Equal(t, in.Seed, ms.Seed)
	assert.Equal(t, "TREZOR", ms.Passphrase)
	assert.Equal(t, byte(0x00), ms.WordlistSelector)
}

func TestBuildBIP39MasterSeedRejectsBadInput(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.BuildBIP39MasterSeed("abandon abandon about", "", 0)
	require.ErrorIs(t, err, ErrInvalidMnemonic, "wrong word count")

	badChecksum := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	_, err = c.BuildBIP39MasterSeed(badChecksum, "", 0)
	require.ErrorIs(t, err, ErrInvalidMnemonic, "checksum failure")
}

func TestMnemonicRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	in := models.Mnemonic{Words: testSentence, Passphrase: "pass"}

	buf, err := c.Encode(in)
	require.NoError(t, err)

	got, err := c.Decode(models.SecretTypeBIP39Mnemonic, models.SubtypeDefault, buf)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestMnemonicMissingPassphraseField(t *testing.T) {
	c := newTestCodec(t)
	words := []byte("ghost ghost ghost")
	buf := append([]byte{byte(len(words))}, words...)

	// Buffer ends exactly at the mnemonic bytes: legal, empty passphrase.
	got, err := c.Decode(models.SecretTypeElectrumMnemonic, models.SubtypeDefault, buf)
	require.NoError(t, err)
	mn := got.(models.Mnemonic)
	assert.Equal(t, string(words), mn.Words)
	assert.Empty(t, mn.Passphrase)
}

func TestMnemonicTruncatedWords(t *testing.T) {
	c := newTestCodec(t)
	buf := []byte{0x10, 'a', 'b'} // declares 16 bytes, supplies 2

	_, err := c.Decode(models.SecretTypeBIP39Mnemonic, models.SubtypeDefault, buf)
	require.ErrorIs(t, err, ErrMalformedSecret)
}

func TestPasswordRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	in := models.Password{
		// Deliberately contains the legacy delimiters.
		Password: "hunter2login:url:",
		Login:    "alice@example.com",
		URL:      "https://example.com",
	}

	buf, err := c.Encode(in)
	require.NoError(t, err)

	got, err := c.Decode(models.SecretTypePassword, models.SubtypeDefault, buf)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestPasswordLegacyFallback(t *testing.T) {
	c := newTestCodec(t)

	tests := []struct {
		name string
		blob string
		want models.Password
	}{
		{
			name: "full triple",
			blob: "hunter2login:aliceurl:https://example.com",
			want: models.Password{Password: "hunter2", Login: "alice", URL: "https://example.com"},
		},
		{
			name: "no url",
			blob: "hunter2login:alice",
			want: models.Password{Password: "hunter2", Login: "alice"},
		},
		{
			name: "password only",
			blob: "hunter2",
			want: models.Password{Password: "hunter2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decode(models.SecretTypeMasterPassword, models.SubtypeDefault, []byte(tt.blob))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeTextRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	in := models.FreeText{Text: "hello"}

	buf, err := c.Encode(in)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}, buf)

	got, err := c.Decode(models.SecretTypeFreeText, models.SubtypeDefault, buf)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestFreeTextTruncatedBuffer(t *testing.T) {
	c := newTestCodec(t)
	buf, err := c.Encode(models.FreeText{Text: "hello"})
	require.NoError(t, err)

	// Dropping the last byte must fail, never silently return "hell".
	_, err = c.Decode(models.SecretTypeFreeText, models.SubtypeDefault, buf[:len(buf)-1])
	require.ErrorIs(t, err, ErrMalformedSecret)
}

func TestDescriptorSizeMismatch(t *testing.T) {
	c := newTestCodec(t)
	buf := append([]byte{0x00, 0x0A}, []byte("abcde")...) // declares 10, supplies 5

	_, err := c.Decode(models.SecretTypeWalletDescriptor, models.SubtypeDefault, buf)
	require.ErrorIs(t, err, ErrMalformedSecret)

	var malformed *MalformedSecretError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 10, malformed.Declared)
	assert.Equal(t, 5, malformed.Remaining)
}

func TestDescriptorSizeLimit(t *testing.T) {
	c := newTestCodec(t)

	atLimit := models.WalletDescriptor{Descriptor: string(bytes.Repeat([]byte{'x'}, 65535))}
	_, err := c.Encode(atLimit)
	require.NoError(t, err)

	overLimit := models.WalletDescriptor{Descriptor: string(bytes.Repeat([]byte{'x'}, 65536))}
	_, err = c.Encode(overLimit)
	require.ErrorIs(t, err, ErrEncodingConstraint)
}

func TestFreeTextInvalidUTF8(t *testing.T) {
	c := newTestCodec(t)
	buf := []byte{0x00, 0x02, 0xFF, 0xFE}

	_, err := c.Decode(models.SecretTypeFreeText, models.SubtypeDefault, buf)
	require.ErrorIs(t, err, ErrMalformedSecret)
}

func TestRawSeedTrailingBytes(t *testing.T) {
	c := newTestCodec(t)
	buf := []byte{0x02, 0xAA, 0xBB, 0xCC} // one undeclared byte after the seed

	_, err := c.Decode(models.SecretTypeMasterSeed, models.SubtypeDefault, buf)
	require.ErrorIs(t, err, ErrMalformedSecret)
}

func TestPubkeyRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	key := bytes.Repeat([]byte{0x04}, 65)

	buf, err := c.Encode(models.Pubkey{Raw: key})
	require.NoError(t, err)

	got, err := c.Decode(models.SecretTypeAuthPubkey, models.SubtypeDefault, buf)
	require.NoError(t, err)
	assert.Equal(t, models.Pubkey{Raw: key}, got)
}

func TestUnsupportedType(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Decode(models.SecretTypeShamirShare, models.SubtypeDefault, []byte{0x00})
	require.ErrorIs(t, err, ErrUnsupportedSecretType)

	var unsupported *UnsupportedSecretTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, models.SecretTypeShamirShare, unsupported.Type)
}

func TestUnknownSubtype(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Decode(models.SecretTypeFreeText, 0x07, []byte{0x00, 0x00})
	require.ErrorIs(t, err, ErrUnsupportedSecretType)
}

func TestWireType(t *testing.T) {
	typ, subtype, ok := WireType(models.MasterSeed{HasBIP39: true})
	require.True(t, ok)
	assert.Equal(t, models.SecretTypeMasterSeed, typ)
	assert.Equal(t, models.SubtypeBIP39Seed, subtype)

	typ, subtype, ok = WireType(models.WalletDescriptor{})
	require.True(t, ok)
	assert.Equal(t, models.SecretTypeWalletDescriptor, typ)
	assert.Equal(t, models.SubtypeDefault, subtype)
}

func TestErrorsDoNotAlias(t *testing.T) {
	err := &MalformedSecretError{Field: "text"}
	assert.False(t, errors.Is(err, ErrUnsupportedSecretType))
	assert.True(t, errors.Is(err, ErrMalformedSecret))
}
