package truststore

// Compress converts an uncompressed EC point (0x04 ‖ X ‖ Y, 65 bytes) to
// its compressed SEC1 form. Inputs in any other shape are returned as a
// copy, unchanged.
func Compress(pubkey []byte) []byte {
	if len(pubkey) != 65 || pubkey[0] != 0x04 {
		return append([]byte(nil), pubkey...)
	}
	prefix := byte(0x02)
	if pubkey[64]&1 == 1 {
		prefix = 0x03
	}
	return append([]byte{prefix}, pubkey[1:33]...)
}
