package checkpoint

import (
	"context"
	"net"
	"strconv"
	"strings"

	"gitlab.com/jaxnet/cryptonote-consensus/hardfork"
)

// dnsHostnames lists the DNSSEC-validated TXT hosts consulted per network.
// All three lists are currently empty, matching the upstream table this
// code was ported from. LoadFromDNS reads hosts only from this table; it
// does not consult any host list from the configuration.
var dnsHostnames = map[hardfork.Network][]string{
	hardfork.Mainnet:  {},
	hardfork.Testnet:  {},
	hardfork.Stagenet: {},
}

// Resolver is the subset of net.Resolver this package needs, so tests can
// substitute a fake without touching real DNS.
type Resolver interface {
	LookupTXT(ctx context.Context, host string) ([]string, error)
}

// LoadFromDNS queries the configured TXT hosts for network and adds every
// well-formed "height:hexhash" record found. Malformed records are
// skipped silently. A DNS fetch failure is treated as advisory, not
// fatal: it returns nil exactly like a successful empty fetch, since
// operators running without working DNS must not be blocked from syncing.
func (r *Registry) LoadFromDNS(ctx context.Context, resolver Resolver, network hardfork.Network) error {
	hosts := dnsHostnames[network]
	var records []string
	for _, host := range hosts {
		txt, err := resolver.LookupTXT(ctx, host)
		if err != nil {
			log.Warn().Err(err).Str("host", host).Msg("dns txt lookup failed, ignoring")
			continue
		}
		records = append(records, txt...)
	}

	for _, rec := range records {
		height, hexHash, ok := splitRecord(rec)
		if !ok {
			continue
		}
		if err := r.AddHex(height, hexHash); err != nil {
			log.Warn().Err(err).Str("record", rec).Msg("skipping malformed checkpoint record")
			continue
		}
	}
	return nil
}

func splitRecord(rec string) (height uint64, hexHash string, ok bool) {
	idx := strings.IndexByte(rec, ':')
	if idx < 0 {
		return 0, "", false
	}
	h, err := strconv.ParseUint(rec[:idx], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return h, rec[idx+1:], true
}

// SystemResolver adapts the stdlib default resolver to Resolver.
type SystemResolver struct{}

func (SystemResolver) LookupTXT(ctx context.Context, host string) ([]string, error) {
	return net.DefaultResolver.LookupTXT(ctx, host)
}
