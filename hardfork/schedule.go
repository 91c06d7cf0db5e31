// Package hardfork holds the static, per-network activation tables and the
// lookup that turns a block height into an active protocol version.
package hardfork

// Network identifies which of the three fixed schedules applies.
type Network int

const (
	Mainnet Network = iota
	Testnet
	Stagenet
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Stagenet:
		return "stagenet"
	default:
		return "unknown"
	}
}

// Entry is one row of a hardfork table: version activates at Height once
// at least Threshold percent of the recent window votes for it, and the
// activation is timestamped for informational display only.
type Entry struct {
	Version   uint8
	Height    uint64
	Threshold uint8
	Timestamp uint64
}

// Schedule is an ordered, height-sorted table of Entry with the invariant
// that Version strictly increases with Height.
type Schedule []Entry

var mainnetSchedule = Schedule{
	{7, 1, 0, 1519605000},
	{8, 6969, 0, 1524214739},
	{9, 53666, 0, 1538689773},
	{10, 63469, 0, 1541700352},
	{11, 81769, 0, 1549238400},
	{12, 82069, 0, 1549318761},
	{13, 114969, 0, 1559292691},
	{14, 115257, 0, 1559292774},
	{15, 160777, 0, 1573280497},
}

var testnetSchedule = Schedule{
	{7, 1, 0, 1519605000},
	{8, 5, 0, 1524214739},
	{9, 10, 0, 1538689773},
	{10, 15, 0, 1541700352},
	{11, 20, 0, 1549238400},
	{12, 25, 0, 1549318761},
	{13, 30, 0, 1559292691},
	{14, 35, 0, 1559292774},
	{15, 40, 0, 1573280497},
	{16, 45, 0, 1589210508},
}

var stagenetSchedule = Schedule{
	{1, 1, 0, 1341378000},
	{2, 32000, 0, 1521000000},
	{3, 33000, 0, 1521120000},
	{4, 34000, 0, 1521240000},
	{5, 35000, 0, 1521360000},
	{6, 36000, 0, 1521480000},
	{7, 37000, 0, 1521600000},
	{8, 176456, 0, 1537821770},
	{9, 177176, 0, 1537821771},
	{10, 269000, 0, 1550153694},
	{11, 269720, 0, 1550225678},
	{12, 454721, 0, 1571419280},
}

// Default returns the built-in schedule for network. The returned slice is
// shared and must not be mutated by the caller.
func Default(network Network) Schedule {
	switch network {
	case Mainnet:
		return mainnetSchedule
	case Testnet:
		return testnetSchedule
	case Stagenet:
		return stagenetSchedule
	default:
		log.Warn().Stringer("network", network).Msg("unknown network, returning empty schedule")
		return nil
	}
}

// ActiveVersion returns the greatest version whose activation height is at
// or below height, or 0 if height precedes every entry in s.
func (s Schedule) ActiveVersion(height uint64) uint8 {
	var version uint8
	for _, e := range s {
		if e.Height > height {
			break
		}
		version = e.Version
	}
	return version
}

// Validate reports whether s is height-sorted with strictly increasing
// version, the invariant every built-in and operator-supplied schedule
// must satisfy.
func (s Schedule) Validate() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Height <= s[i-1].Height || s[i].Version <= s[i-1].Version {
			return false
		}
	}
	return true
}
