package uuidgen

import (
	"io"
	"strings"
)

// Format selects how each UUID is serialized to the sink.
type Format string

const (
	FormatBinary  Format = "BIN" // raw 16 bytes, no delimiter
	FormatString  Format = "STR" // canonical hyphenated hex, one per line
	FormatInteger Format = "SIV" // base-10 128-bit integer, one per line
)

func (f Format) valid() bool {
	switch f {
	case FormatBinary, FormatString, FormatInteger:
		return true
	}
	return false
}

// String implements pflag.Value
func (f Format) String() string {
	return string(f)
}

// Set accepts BIN, STR or SIV. Matching is case sensitive.
func (f *Format) Set(s string) error {
	if !Format(s).valid() {
		return ErrUnknownFormat
	}
	*f = Format(s)
	return nil
}

// Type implements pflag.Value
func (f *Format) Type() string {
	return "{" + strings.Join([]string{string(FormatBinary), string(FormatString), string(FormatInteger)}, ",") + "}"
}

// AppendRecord appends the encoding of u to dst and returns the extended slice.
func (f Format) AppendRecord(dst []byte, u UUID) []byte {
	switch f {
	case FormatBinary:
		return append(dst, u[:]...)
	case FormatInteger:
		dst = append(dst, u.Decimal()...)
		return append(dst, '\n')
	default:
		var buf [36]byte
		encodeHex(buf[:], u)
		dst = append(dst, buf[:]...)
		return append(dst, '\n')
	}
}

// WriteRecord writes one encoded UUID to w in a single Write call.
func (f Format) WriteRecord(w io.Writer, u UUID) error {
	var scratch [40]byte
	_, err := w.Write(f.AppendRecord(scratch[:0], u))
	return err
}
