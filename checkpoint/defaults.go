package checkpoint

import "gitlab.com/jaxnet/cryptonote-consensus/hardfork"

// InitDefaults populates r from the hard-coded table for network. Testnet
// and stagenet are intentionally empty: they exist for throwaway chains
// that never accumulate a durable checkpoint history.
func (r *Registry) InitDefaults(network hardfork.Network) error {
	if network != hardfork.Mainnet {
		return nil
	}
	for _, cp := range mainnetCheckpoints {
		if err := r.AddHex(cp.Height, cp.Hash); err != nil {
			return err
		}
	}
	return nil
}
