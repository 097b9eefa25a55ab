package models

// CardStatus is the generic applet status reported by the device.
type CardStatus struct {
	// CardPresent reports whether a card is currently in the reader.
	CardPresent bool
	// CardType names the applet family (e.g. "SeedKeeper").
	CardType string
	// AppletVersion is the applet major version.
	AppletVersion string
	// SetupDone reports whether the card completed initial setup.
	SetupDone bool
	// IsSeeded reports whether a master seed is present.
	IsSeeded bool
	// Needs2FA reports whether two-factor confirmation is required.
	Needs2FA bool
	// PinTriesLeft is the number of PIN attempts remaining.
	PinTriesLeft int
}

// SeedKeeperStatus is the secret-storage status of a SeedKeeper applet.
type SeedKeeperStatus struct {
	// SecretCount is the number of secrets currently stored.
	SecretCount int
	// TotalMemory is the secret storage capacity in bytes.
	TotalMemory int
	// FreeMemory is the remaining secret storage in bytes.
	FreeMemory int
	// TotalLogs is the audit log capacity in entries.
	TotalLogs int
	// AvailableLogs is the number of free audit log slots.
	AvailableLogs int
	// LastLog is the most recent audit-log entry, if any.
	LastLog *RawLogEntry
}
