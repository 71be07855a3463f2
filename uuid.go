package uuidgen

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The UUID is a 128-bit (16 byte) value laid out in network byte order.
type UUID [16]byte

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// gregorianOffset is the number of 100ns intervals between the UUID epoch
// (1582-10-15) and the Unix epoch.
const gregorianOffset = 122192928000000000

// fromGofrs converts a value produced by the generation library.
func fromGofrs(u uuid.UUID) UUID {
	return UUID(u)
}

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Decimal returns the UUID read as a big-endian unsigned 128-bit integer,
// rendered in base 10.
func (u UUID) Decimal() string {
	return new(big.Int).SetBytes(u[:]).String()
}

// ParseDecimal is the inverse of Decimal.
func ParseDecimal(s string) (UUID, error) {
	var id UUID
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return id, ErrInvalidFormat
	}
	n.FillBytes(id[:])
	return id, nil
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
func Parse(s string) (UUID, error) {
	var id UUID

	s = strings.TrimPrefix(s, "urn:uuid:")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	switch len(s) {
	case 36:
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return id, ErrInvalidFormat
		}
		segments := [...]struct {
			dst []byte
			src string
		}{
			{id[0:4], s[0:8]},
			{id[4:6], s[9:13]},
			{id[6:8], s[14:18]},
			{id[8:10], s[19:23]},
			{id[10:16], s[24:36]},
		}
		for _, seg := range segments {
			if err := decodeHexSegment(seg.dst, seg.src); err != nil {
				return id, err
			}
		}
		return id, nil
	case 32:
		if err := decodeHexSegment(id[:], s); err != nil {
			return id, err
		}
		return id, nil
	}

	return id, ErrInvalidFormat
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) UUID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidgen: Parse(%q): %v", s, err))
	}
	return id
}

func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	var id UUID
	if len(b) != 16 {
		return id, ErrInvalidLength
	}
	copy(id[:], b)
	return id, nil
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Timestamp returns the 60-bit count of 100ns intervals since 1582-10-15
// carried by a version 1 UUID, or 0 for any other version.
func (u UUID) Timestamp() uint64 {
	if u.Version() != VersionTimeBased {
		return 0
	}
	low := uint64(binary.BigEndian.Uint32(u[0:4]))
	mid := uint64(binary.BigEndian.Uint16(u[4:6]))
	high := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0fff)
	return high<<48 | mid<<32 | low
}

// Time returns the timestamp of a version 1 UUID as a time.Time
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeBased {
		return time.Time{}
	}
	ns100 := int64(u.Timestamp() - gregorianOffset)
	return time.Unix(ns100/1e7, (ns100%1e7)*100)
}

// ClockSequence returns the 14-bit clock sequence of a version 1 UUID.
func (u UUID) ClockSequence() uint16 {
	return binary.BigEndian.Uint16(u[8:10]) & 0x3fff
}

// Node returns the node identifier of a version 1 UUID.
func (u UUID) Node() NodeID {
	var n NodeID
	copy(n[:], u[10:16])
	return n
}
