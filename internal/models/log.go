package models

// LogNotApplicable is the device sentinel for "no secret involved" in an
// audit-log id field.
const LogNotApplicable uint16 = 0xFFFF

// RawLogEntry is one audit-log tuple exactly as returned by the device,
// in chronological order.
type RawLogEntry struct {
	// Instruction is the APDU instruction code of the logged operation.
	Instruction uint16
	// ID1 is the primary secret id, or LogNotApplicable.
	ID1 uint16
	// ID2 is the secondary secret id, or LogNotApplicable.
	ID2 uint16
	// Result is the status word the operation returned.
	Result uint16
}

// LogRecord is a rendered audit-log entry ready for display.
type LogRecord struct {
	// Operation is the human-readable operation name.
	Operation string
	// ID1 is the primary secret id rendered as decimal, or "N/A".
	ID1 string
	// ID2 is the secondary secret id rendered as decimal, or "N/A".
	ID2 string
	// Result is the human-readable outcome of the operation.
	Result string
}
