package uuidgen

import "strconv"

// Version represents the UUID version. It doubles as the CLI version
// selector and implements pflag.Value for that purpose.
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	_
	VersionTimeSorted // UUIDv7
	VersionCustom     // UUIDv8
)

// Supported reports whether this tool can generate the version.
func (v Version) Supported() bool {
	switch v {
	case VersionTimeBased, VersionNameBasedMD5, VersionRandom, VersionNameBasedSHA1:
		return true
	}
	return false
}

// String returns the version number, or the empty string for the zero value.
func (v Version) String() string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(int(v))
}

// Set parses one of the tokens "1", "3", "4" or "5".
func (v *Version) Set(s string) error {
	switch s {
	case "1":
		*v = VersionTimeBased
	case "3":
		*v = VersionNameBasedMD5
	case "4":
		*v = VersionRandom
	case "5":
		*v = VersionNameBasedSHA1
	default:
		return ErrInvalidVersion
	}
	return nil
}

// Type implements pflag.Value
func (v *Version) Type() string {
	return "{1,3,4,5}"
}

// Config is the validated input of a single run.
type Config struct {
	Version      Version
	RandomNode   bool   // use a random node id instead of the hardware address
	Count        int    // number of UUIDs to emit
	ResetContext bool   // reseed the timestamp context between iterations
	Format       Format // record encoding
	Output       string // file path; empty means standard output
}

// DefaultConfig returns the defaults applied before flags are parsed.
func DefaultConfig() Config {
	return Config{
		Count:  1,
		Format: FormatString,
	}
}

// Validate checks the configuration before any work begins.
func (c Config) Validate() error {
	if c.Version == 0 {
		return ErrMissingVersion
	}
	if !c.Version.Supported() {
		return ErrInvalidVersion
	}
	if c.Count < 1 {
		return ErrInvalidCount
	}
	if !c.Format.valid() {
		return ErrUnknownFormat
	}
	if c.ResetContext && c.Count == 1 {
		return ErrResetConflict
	}
	return nil
}
