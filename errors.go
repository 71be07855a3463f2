package uuidgen

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("uuidgen: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidgen: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("uuidgen: invalid or unsupported UUID version (expected 1, 3, 4 or 5)")

	// ErrMissingVersion indicates that no UUID version was requested
	ErrMissingVersion = errors.New("uuidgen: a UUID version is required")

	// ErrInvalidCount indicates a non-positive iteration count
	ErrInvalidCount = errors.New("uuidgen: count must be at least 1")

	// ErrUnknownFormat indicates an output format other than BIN, STR or SIV
	ErrUnknownFormat = errors.New("uuidgen: unknown output format (expected BIN, STR or SIV)")

	// ErrResetConflict is returned when a context reset is requested for a single UUID
	ErrResetConflict = errors.New("uuidgen: '-1' used while '-n' is set to 1")

	// ErrMissingContext is returned when a version 1 generator has no timestamp context
	ErrMissingContext = errors.New("uuidgen: version 1 requires a timestamp context")

	// ErrNodeQuery indicates that the host network interfaces could not be listed
	ErrNodeQuery = errors.New("uuidgen: hardware address query failed")

	// ErrNoHardwareAddr indicates that the host has no usable hardware address.
	// Pass -m to use a random node identifier instead.
	ErrNoHardwareAddr = errors.New("uuidgen: no hardware address found (use -m for a random node id)")

	// ErrSinkOpen indicates that the output file could not be opened
	ErrSinkOpen = errors.New("uuidgen: cannot open output")

	// ErrSinkWrite indicates that a record could not be written to the output
	ErrSinkWrite = errors.New("uuidgen: write failed")
)
