// Package auditlog renders the raw operation log of the secure element
// into human-readable records. Decoding is pure and order-preserving, and
// never fails: unknown instruction or result codes render as hex.
package auditlog

import (
	"fmt"
	"strconv"

	"github.com/avoronov/seedvault/internal/models"
)

// Instruction codes logged by the device.
const (
	insCreatePIN       uint16 = 0x40
	insVerifyPIN       uint16 = 0x42
	insChangePIN       uint16 = 0x44
	insUnblockPIN      uint16 = 0x46
	insGenerateSeed    uint16 = 0xA0
	insImportSecret    uint16 = 0xA1
	insExportSecret    uint16 = 0xA2
	insResetSecret     uint16 = 0xA5
	insGenerate2FA     uint16 = 0xAE
	insResetToFactory  uint16 = 0xFF
)

var instructionNames = map[uint16]string{
	insCreatePIN:      "Create PIN",
	insVerifyPIN:      "Verify PIN",
	insChangePIN:      "Change PIN",
	insUnblockPIN:     "Unblock PIN",
	insGenerateSeed:   "Generate masterseed",
	insResetSecret:    "Reset secret",
	insGenerate2FA:    "Generate 2FA Secret",
	insResetToFactory: "Reset to factory",
}

var resultNames = map[uint16]string{
	0x9000: "OK",
	0x9C01: "No memory left",
	0x9C03: "Operation not allowed",
	0x9C04: "Setup not done",
	0x9C05: "Feature unsupported",
	0x9C08: "Secret not found",
	0x9C0B: "Invalid signature",
	0x9C0C: "Identity blocked",
	0x9C0F: "Invalid parameter",
	0x9C10: "Incorrect P1",
	0x9C11: "Incorrect P2",
	0x9C30: "Lock error",
	0x9C31: "Export not allowed",
	0x9C32: "Import data too long",
	0x9C33: "Wrong MAC during import",
	0x9CFF: "Internal error",
	0x0000: "Unexpected error",
}

// pinFailedMask matches status words 0x63C0..0x63CF, whose low nibble is
// the number of PIN tries remaining.
const pinFailedMask uint16 = 0x63C0

// Decode renders raw log entries in their original (chronological) order.
func Decode(entries []models.RawLogEntry) []models.LogRecord {
	out := make([]models.LogRecord, len(entries))
	for i, e := range entries {
		out[i] = models.LogRecord{
			Operation: operationName(e.Instruction, e.ID2),
			ID1:       renderID(e.ID1),
			ID2:       renderID(e.ID2),
			Result:    ResultName(e.Result),
		}
	}
	return out
}

// operationName resolves an instruction code. Import and export are
// polymorphic: the same code covers the plain and encrypted variants,
// distinguished by whether a second secret (the other card's key) was
// involved.
func operationName(instruction, id2 uint16) string {
	switch instruction {
	case insImportSecret:
		if id2 == models.LogNotApplicable {
			return "Import plain secret"
		}
		return "Import encrypted secret"
	case insExportSecret:
		if id2 == models.LogNotApplicable {
			return "Export plain secret"
		}
		return "Export encrypted secret"
	}
	if name, ok := instructionNames[instruction]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", instruction)
}

// ResultName renders a device status word for display.
func ResultName(result uint16) string {
	if result&0xFFF0 == pinFailedMask {
		return fmt.Sprintf("PIN failed - %d tries remaining", result&0x000F)
	}
	if name, ok := resultNames[result]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", result)
}

func renderID(id uint16) string {
	if id == models.LogNotApplicable {
		return "N/A"
	}
	return strconv.Itoa(int(id))
}
