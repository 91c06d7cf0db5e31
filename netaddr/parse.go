// Package netaddr parses a "host[:port]" address string into a typed
// address, distinguishing IPv4 and Tor hosts from unsupported ones. The
// MMS transport selection (transport.Resolve) does not call this parser.
package netaddr

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AddressKind identifies which network family an Address belongs to.
type AddressKind int

const (
	KindUnsupported AddressKind = iota
	KindIPv4
	KindTor
)

// Address is the parsed form of a "host[:port]" transport address string.
type Address struct {
	Kind AddressKind
	Host string // the .onion hostname for KindTor, dotted-quad for KindIPv4
	Port uint16
}

var (
	// ErrInvalidHost is returned when the host portion is empty.
	ErrInvalidHost = errors.New("netaddr: invalid or empty host")
	// ErrInvalidPort is returned when a trailing ":port" fails to parse.
	ErrInvalidPort = errors.New("netaddr: invalid port")
	// ErrI2PUnsupported marks .i2p hosts, which this module never resolves
	// in order to avoid leaking a public DNS lookup for an anonymity-network
	// address.
	ErrI2PUnsupported = errors.New("netaddr: i2p addresses are not supported")
	// ErrUnsupportedAddress covers every host form this parser can't place
	// into Tor or IPv4.
	ErrUnsupportedAddress = errors.New("netaddr: unsupported address")
)

// Parse splits address into host and an optional ":port" suffix and
// classifies the host. defaultPort is used when address carries no port.
func Parse(address string, defaultPort uint16) (Address, error) {
	host := address
	port := defaultPort

	if idx := strings.LastIndexByte(address, ':'); idx >= 0 {
		host = address[:idx]
		if portStr := address[idx+1:]; portStr != "" {
			p, err := strconv.ParseUint(portStr, 10, 16)
			if err != nil {
				return Address{}, ErrInvalidPort
			}
			port = uint16(p)
		}
	}

	if host == "" {
		return Address{}, ErrInvalidHost
	}
	if strings.HasSuffix(host, ".onion") {
		return Address{Kind: KindTor, Host: host, Port: port}, nil
	}
	if strings.HasSuffix(host, ".i2p") {
		return Address{}, ErrI2PUnsupported
	}

	ip := net.ParseIP(host)
	if ip != nil && ip.To4() != nil {
		return Address{Kind: KindIPv4, Host: ip.To4().String(), Port: port}, nil
	}
	return Address{}, ErrUnsupportedAddress
}

func (a Address) String() string {
	switch a.Kind {
	case KindTor, KindIPv4:
		return fmt.Sprintf("%s:%d", a.Host, a.Port)
	default:
		return "<unsupported>"
	}
}
