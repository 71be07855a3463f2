package uuidgen

import (
	"crypto/rand"
	"io"
	"net"

	"github.com/gofrs/uuid/v5"
)

// Context holds the clock sequence state used for version 1 UUIDs.
// Two UUIDs produced within the same clock tick differ in their clock
// sequence. It is not safe for concurrent use.
type Context struct {
	node       NodeID
	randReader io.Reader
	gen        *uuid.Gen
}

// NewContext creates a context bound to node. Its clock sequence is seeded
// from crypto/rand on first use.
func NewContext(node NodeID) *Context {
	return NewContextWithReader(node, rand.Reader)
}

// NewContextWithReader creates a context with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewContextWithReader(node NodeID, r io.Reader) *Context {
	if r == nil {
		r = rand.Reader
	}
	c := &Context{
		node:       node,
		randReader: r,
	}
	c.Reset()
	return c
}

// Reset discards the current clock sequence state. The next UUID starts
// from a freshly randomized sequence.
func (c *Context) Reset() {
	node := c.node
	c.gen = uuid.NewGenWithOptions(
		uuid.WithRandomReader(c.randReader),
		uuid.WithHWAddrFunc(func() (net.HardwareAddr, error) {
			return node.HardwareAddr(), nil
		}),
	)
}

// Node returns the node id embedded in every UUID of this context.
func (c *Context) Node() NodeID {
	return c.node
}

// NewV1 generates a version 1 UUID from the current time, the context's
// clock sequence and its node id.
func (c *Context) NewV1() (UUID, error) {
	u, err := c.gen.NewV1()
	if err != nil {
		return Nil, err
	}
	return fromGofrs(u), nil
}
