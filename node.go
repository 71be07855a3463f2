package uuidgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"net"
)

// NodeID is the 48-bit node component of a version 1 UUID.
type NodeID [6]byte

// HardwareAddr returns the node id as a net.HardwareAddr.
func (n NodeID) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(n[:])
}

// String returns the colon separated hex form, e.g. 02:42:ac:11:00:02.
func (n NodeID) String() string {
	return n.HardwareAddr().String()
}

// InterfaceLister lists the network interfaces of the host.
// net.Interfaces satisfies it.
type InterfaceLister func() ([]net.Interface, error)

// RandomNode draws a node id from r. A nil r means crypto/rand.Reader.
func RandomNode(r io.Reader) (NodeID, error) {
	var n NodeID
	if r == nil {
		r = rand.Reader
	}
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return n, err
	}
	return n, nil
}

// HardwareNode returns the address of the first non-loopback interface that
// carries a non-zero 6-byte hardware address. There is no random fallback.
func HardwareNode(list InterfaceLister) (NodeID, error) {
	var n NodeID
	if list == nil {
		list = net.Interfaces
	}
	ifaces, err := list()
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrNodeQuery, err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) != len(n) {
			continue
		}
		copy(n[:], iface.HardwareAddr)
		if n != (NodeID{}) {
			return n, nil
		}
	}
	return NodeID{}, ErrNoHardwareAddr
}

// ResolveNode picks the node id source requested by cfg.
func ResolveNode(cfg Config, r io.Reader, list InterfaceLister) (NodeID, error) {
	if cfg.RandomNode {
		return RandomNode(r)
	}
	return HardwareNode(list)
}
