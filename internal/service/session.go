// Package service implements the host-side session logic for one secure
// element: fetching and decoding secrets, encoding and storing them,
// rendering the audit log, and maintaining the trust store. Device I/O is
// delegated to a Transport interface.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avoronov/seedvault/internal/auditlog"
	"github.com/avoronov/seedvault/internal/codec"
	"github.com/avoronov/seedvault/internal/models"
	"github.com/avoronov/seedvault/internal/truststore"
)

// Transport defines the device operations the session needs. The APDU
// protocol, PIN verification and card lifecycle live behind it.
type Transport interface {
	// ListSecretHeaders returns the headers of all stored secrets, in
	// the device's list order.
	ListSecretHeaders(ctx context.Context) ([]models.SecretHeader, error)
	// FetchSecret returns the header and raw payload of one secret.
	FetchSecret(ctx context.Context, id uint16) (models.SecretHeader, []byte, error)
	// StoreSecret writes an encoded payload and returns the assigned id
	// and device-computed fingerprint.
	StoreSecret(ctx context.Context, header models.SecretHeader, raw []byte) (uint16, string, error)
	// FetchLogs returns the raw audit log, oldest first.
	FetchLogs(ctx context.Context) ([]models.RawLogEntry, error)
	// ExportAuthentikey returns the device's uncompressed identity key.
	ExportAuthentikey(ctx context.Context) ([]byte, error)
	// CardStatus returns the generic applet status.
	CardStatus(ctx context.Context) (models.CardStatus, error)
	// SeedKeeperStatus returns the secret-storage status.
	SeedKeeperStatus(ctx context.Context) (models.SeedKeeperStatus, error)
}

// Session ties one device connection to a codec and a trust store.
type Session struct {
	id        string
	transport Transport
	codec     *codec.Codec
	store     *truststore.Store
	log       *zap.Logger
}

// New constructs a session. A nil logger disables logging.
func New(transport Transport, c *codec.Codec, store *truststore.Store, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:        id,
		transport: transport,
		codec:     c,
		store:     store,
		log:       log.With(zap.String("session", id)),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// FetchSecret retrieves and decodes one secret.
func (s *Session) FetchSecret(ctx context.Context, id uint16) (models.SecretHeader, models.SecretPayload, error) {
	header, raw, err := s.transport.FetchSecret(ctx, id)
	if err != nil {
		return models.SecretHeader{}, nil, fmt.Errorf("fetch secret %d: %w", id, err)
	}
	payload, err := s.codec.Decode(header.Type, header.Subtype, raw)
	if err != nil {
		return models.SecretHeader{}, nil, fmt.Errorf("decode secret %d (%s): %w", id, models.SecretTypeName(header.Type), err)
	}
	s.log.Debug("fetched secret",
		zap.Uint16("id", id),
		zap.String("type", models.SecretTypeName(header.Type)))
	return header, payload, nil
}

// StoreSecret encodes a payload and writes it to the device. The returned
// header carries the device-assigned id and fingerprint.
func (s *Session) StoreSecret(ctx context.Context, label string, payload models.SecretPayload, origin, exportRights byte) (models.SecretHeader, error) {
	typ, subtype, ok := codec.WireType(payload)
	if !ok {
		return models.SecretHeader{}, fmt.Errorf("store secret %q: no wire type for payload", label)
	}
	raw, err := s.codec.Encode(payload)
	if err != nil {
		return models.SecretHeader{}, fmt.Errorf("encode secret %q: %w", label, err)
	}
	header := models.SecretHeader{
		Type:         typ,
		Subtype:      subtype,
		Origin:       origin,
		ExportRights: exportRights,
		Label:        label,
	}
	id, fingerprint, err := s.transport.StoreSecret(ctx, header, raw)
	if err != nil {
		return models.SecretHeader{}, fmt.Errorf("store secret %q: %w", label, err)
	}
	header.ID = id
	header.Fingerprint = fingerprint
	s.log.Info("stored secret",
		zap.Uint16("id", id),
		zap.String("type", models.SecretTypeName(typ)),
		zap.String("fingerprint", fingerprint))
	return header, nil
}

// ImportBIP39Seed validates a mnemonic and stores the derived master seed.
// A sentence that fails the word-count or checksum check aborts the import.
func (s *Session) ImportBIP39Seed(ctx context.Context, label, sentence, passphrase string, exportRights byte) (models.SecretHeader, error) {
	seed, err := s.codec.BuildBIP39MasterSeed(sentence, passphrase, 0x00)
	if err != nil {
		return models.SecretHeader{}, fmt.Errorf("import seed %q: %w", label, err)
	}
	return s.StoreSecret(ctx, label, seed, models.OriginPlainImport, exportRights)
}

// DecodeLogs fetches and renders the device audit log, oldest first.
func (s *Session) DecodeLogs(ctx context.Context) ([]models.LogRecord, error) {
	entries, err := s.transport.FetchLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}
	return auditlog.Decode(entries), nil
}

// RegisterAuthentikey reads the device's identity key, labels it and adds
// it to the trust store. Inserted reports whether the key was new.
func (s *Session) RegisterAuthentikey(ctx context.Context, cardLabel string) (entry truststore.Entry, inserted bool, err error) {
	authentikey, err := s.transport.ExportAuthentikey(ctx)
	if err != nil {
		return truststore.Entry{}, false, fmt.Errorf("export authentikey: %w", err)
	}
	entry, inserted = s.store.Register(authentikey, cardLabel, truststore.Compress(authentikey))
	return entry, inserted, nil
}

// ExportCandidates builds the list of keys selectable as the recipient of
// a cross-card export: the plaintext sentinel, the card's own public-key
// secrets, then trust-store identities not already listed and not the
// device itself.
func (s *Session) ExportCandidates(ctx context.Context) ([]truststore.Candidate, error) {
	headers, err := s.transport.ListSecretHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list secrets: %w", err)
	}

	var deviceKeys []truststore.DeviceKey
	for _, h := range headers {
		if h.Type != models.SecretTypePubkey && h.Type != models.SecretTypeAuthPubkey {
			continue
		}
		_, payload, err := s.FetchSecret(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		pk, ok := payload.(models.Pubkey)
		if !ok {
			continue
		}
		deviceKeys = append(deviceKeys, truststore.DeviceKey{
			Label:       h.Label,
			Fingerprint: h.Fingerprint,
			Pubkey:      pk.Raw,
		})
	}

	authentikey, err := s.transport.ExportAuthentikey(ctx)
	if err != nil {
		return nil, fmt.Errorf("export authentikey: %w", err)
	}
	return s.store.MergeCandidates(deviceKeys, authentikey), nil
}

// CardStatus returns the applet status of the connected device.
func (s *Session) CardStatus(ctx context.Context) (models.CardStatus, error) {
	return s.transport.CardStatus(ctx)
}

// SeedKeeperStatus returns the storage status of the connected device.
func (s *Session) SeedKeeperStatus(ctx context.Context) (models.SeedKeeperStatus, error) {
	return s.transport.SeedKeeperStatus(ctx)
}
