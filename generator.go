package uuidgen

import (
	"crypto/rand"
	"io"

	"github.com/gofrs/uuid/v5"
)

// NameURL is the name hashed under the URL namespace for versions 3 and 5.
// Both versions therefore yield one constant UUID each.
const NameURL = "http://www.ossp.org/"

// NamespaceURL is the RFC 4122 URL namespace.
var NamespaceURL = fromGofrs(uuid.NamespaceURL)

// Generator produces UUIDs of a single version.
type Generator struct {
	version Version
	ctx     *Context
	random  *uuid.Gen
}

// NewGenerator returns a generator for version v. ctx is required for
// version 1 and ignored otherwise. A nil r means crypto/rand.Reader.
func NewGenerator(v Version, ctx *Context, r io.Reader) (*Generator, error) {
	if !v.Supported() {
		return nil, ErrInvalidVersion
	}
	if v == VersionTimeBased && ctx == nil {
		return nil, ErrMissingContext
	}
	if r == nil {
		r = rand.Reader
	}
	return &Generator{
		version: v,
		ctx:     ctx,
		random:  uuid.NewGenWithOptions(uuid.WithRandomReader(r)),
	}, nil
}

// Version returns the version this generator produces.
func (g *Generator) Version() Version {
	return g.version
}

// Next generates one UUID.
func (g *Generator) Next() (UUID, error) {
	switch g.version {
	case VersionTimeBased:
		return g.ctx.NewV1()
	case VersionNameBasedMD5:
		return fromGofrs(uuid.NewV3(uuid.NamespaceURL, NameURL)), nil
	case VersionRandom:
		u, err := g.random.NewV4()
		if err != nil {
			return Nil, err
		}
		return fromGofrs(u), nil
	case VersionNameBasedSHA1:
		return fromGofrs(uuid.NewV5(uuid.NamespaceURL, NameURL)), nil
	}
	return Nil, ErrInvalidVersion
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil.
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}
