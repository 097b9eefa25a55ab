package codec

import "unicode/utf8"

// reader walks a secret buffer, tracking the offset so layout violations
// can be reported with exact positions.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// len8 reads a 1-byte length prefix for the named field.
func (r *reader) len8(field string) (int, error) {
	if r.remaining() < 1 {
		return 0, &MalformedSecretError{Field: field, Offset: r.off, Declared: 1, Remaining: r.remaining(), Reason: "missing length prefix"}
	}
	n := int(r.buf[r.off])
	r.off++
	return n, nil
}

// len16 reads a 2-byte big-endian length prefix for the named field.
func (r *reader) len16(field string) (int, error) {
	if r.remaining() < 2 {
		return 0, &MalformedSecretError{Field: field, Offset: r.off, Declared: 2, Remaining: r.remaining(), Reason: "missing length prefix"}
	}
	n := int(r.buf[r.off])<<8 | int(r.buf[r.off+1])
	r.off += 2
	return n, nil
}

// bytes reads exactly n bytes for the named field.
func (r *reader) bytes(field string, n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, &MalformedSecretError{Field: field, Offset: r.off, Declared: n, Remaining: r.remaining(), Reason: "truncated"}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// text reads exactly n bytes and requires them to be valid UTF-8.
func (r *reader) text(field string, n int) (string, error) {
	start := r.off
	b, err := r.bytes(field, n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &MalformedSecretError{Field: field, Offset: start, Reason: "invalid UTF-8"}
	}
	return string(b), nil
}

// done requires the buffer to be fully consumed.
func (r *reader) done(field string) error {
	if rest := r.remaining(); rest != 0 {
		return &MalformedSecretError{Field: field, Offset: r.off, Remaining: rest, Reason: "undeclared trailing bytes"}
	}
	return nil
}
