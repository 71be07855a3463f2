package uuidgen

import (
	"bytes"
	"math/big"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "canonical format",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "without hyphens",
			input:   "f47ac10b58cc4372a5670e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with URN prefix",
			input:   "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: false,
		},
		{
			name:    "with braces",
			input:   "{f47ac10b-58cc-4372-a567-0e02b2c3d479}",
			wantErr: false,
		},
		{
			name:    "invalid format - wrong length",
			input:   "f47ac10b-58cc-4372-a567",
			wantErr: true,
		},
		{
			name:    "invalid format - invalid hex",
			input:   "g47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: true,
		},
		{
			name:    "invalid format - wrong hyphen position",
			input:   "f47ac10b58cc-4372-a567-0e02b2c3d479",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uuid, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if uuid.IsNil() {
					t.Error("Parse() returned nil UUID for valid input")
				}
				// Verify round-trip
				str := uuid.String()
				uuid2, err := Parse(str)
				if err != nil {
					t.Errorf("Round-trip parse failed: %v", err)
				}
				if uuid != uuid2 {
					t.Errorf("Round-trip UUID mismatch: got %v, want %v", uuid2, uuid)
				}
			}
		})
	}
}

func TestUUID_String(t *testing.T) {
	testUUID := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	want := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	got := testUUID.String()
	if got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func TestUUID_IsNil(t *testing.T) {
	nilUUID := Nil
	if !nilUUID.IsNil() {
		t.Error("Nil UUID should return true for IsNil()")
	}

	nonNilUUID := UUID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if nonNilUUID.IsNil() {
		t.Error("Non-nil UUID should return false for IsNil()")
	}
}

func TestMustParse(t *testing.T) {
	// Valid UUID should not panic
	uuid := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	if uuid.IsNil() {
		t.Error("MustParse() returned nil UUID")
	}

	// Invalid UUID should panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("invalid-uuid")
}

func TestUUID_Bytes(t *testing.T) {
	uuid := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	b := uuid.Bytes()
	if len(b) != 16 {
		t.Errorf("Bytes() length = %d, want 16", len(b))
	}
	if !bytes.Equal(b, uuid[:]) {
		t.Error("Bytes() did not return correct byte slice")
	}
}

func TestUUID_Version(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Version
	}{
		{"v1", "c232ab00-9414-11ec-b3c8-9f6bdeced846", VersionTimeBased},
		{"v3", "6fa459ea-ee8a-3ca4-894e-db77e160355e", VersionNameBasedMD5},
		{"v4", "f47ac10b-58cc-4372-a567-0e02b2c3d479", VersionRandom},
		{"v5", "886313e1-3b8a-5372-9b90-0c9aee199e5d", VersionNameBasedSHA1},
		{"v7", "017f22e2-79b0-7cc3-98c4-dc0c0c07398f", VersionTimeSorted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustParse(tt.in).Version(); got != tt.want {
				t.Errorf("Version() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUUID_Variant(t *testing.T) {
	tests := []struct {
		b    byte
		want Variant
	}{
		{0x00, VariantNCS},
		{0x7f, VariantNCS},
		{0x80, VariantRFC4122},
		{0xbf, VariantRFC4122},
		{0xc0, VariantMicrosoft},
		{0xe0, VariantFuture},
	}

	for _, tt := range tests {
		var uuid UUID
		uuid[8] = tt.b
		if got := uuid.Variant(); got != tt.want {
			t.Errorf("Variant() with byte %#x = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestUUID_Decimal(t *testing.T) {
	tests := []struct {
		name string
		in   UUID
		want string
	}{
		{"nil", Nil, "0"},
		{"one", UUID{15: 1}, "1"},
		{"max", UUID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "340282366920938463463374607431768211455"},
		{"high bit", UUID{0x80}, "170141183460469231731687303715884105728"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Decimal(); got != tt.want {
				t.Errorf("Decimal() = %v, want %v", got, tt.want)
			}
			back, err := ParseDecimal(tt.want)
			if err != nil {
				t.Fatalf("ParseDecimal() error = %v", err)
			}
			if back != tt.in {
				t.Errorf("ParseDecimal() = %v, want %v", back, tt.in)
			}
		})
	}
}

func TestUUID_Decimal_MatchesBigInt(t *testing.T) {
	uuid := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	want, _ := new(big.Int).SetString("f47ac10b58cc4372a5670e02b2c3d479", 16)
	if got := uuid.Decimal(); got != want.String() {
		t.Errorf("Decimal() = %v, want %v", got, want.String())
	}
}

func TestParseDecimal_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "340282366920938463463374607431768211456"} {
		if _, err := ParseDecimal(in); err == nil {
			t.Errorf("ParseDecimal(%q) expected error", in)
		}
	}
}

func TestFromBytes(t *testing.T) {
	b := []byte{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	uuid, err := FromBytes(b)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if !bytes.Equal(uuid[:], b) {
		t.Errorf("FromBytes() = %v, want %x", uuid, b)
	}

	for _, n := range []int{0, 15, 17} {
		if _, err := FromBytes(make([]byte, n)); err != ErrInvalidLength {
			t.Errorf("FromBytes(%d bytes) error = %v, want %v", n, err, ErrInvalidLength)
		}
	}
}

func TestUUID_V1Fields(t *testing.T) {
	// 2022-02-22T19:22:22Z from RFC 9562 appendix A.1
	uuid := MustParse("c232ab00-9414-11ec-b3c8-9f6bdeced846")

	if got := uuid.Timestamp(); got != 0x1EC9414C232AB00 {
		t.Errorf("Timestamp() = %#x, want %#x", got, uint64(0x1EC9414C232AB00))
	}
	want := time.Date(2022, 2, 22, 19, 22, 22, 0, time.UTC)
	if got := uuid.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got.UTC(), want)
	}
	if got := uuid.ClockSequence(); got != 0x33c8 {
		t.Errorf("ClockSequence() = %#x, want %#x", got, 0x33c8)
	}
	if got := uuid.Node(); got != (NodeID{0x9f, 0x6b, 0xde, 0xce, 0xd8, 0x46}) {
		t.Errorf("Node() = %v", got)
	}
}

func TestUUID_Time_NonV1(t *testing.T) {
	uuid := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	if uuid.Timestamp() != 0 {
		t.Errorf("Timestamp() for non-v1 UUID = %v, want 0", uuid.Timestamp())
	}
	if !uuid.Time().IsZero() {
		t.Errorf("Time() for non-v1 UUID = %v, want zero time", uuid.Time())
	}
}
