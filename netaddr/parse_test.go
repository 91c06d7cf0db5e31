package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIPv4WithPort(t *testing.T) {
	a, err := Parse("127.0.0.1:18080", 9999)
	assert.NoError(t, err)
	assert.Equal(t, KindIPv4, a.Kind)
	assert.Equal(t, uint16(18080), a.Port)
}

func TestParseIPv4DefaultPort(t *testing.T) {
	a, err := Parse("127.0.0.1", 18080)
	assert.NoError(t, err)
	assert.Equal(t, KindIPv4, a.Kind)
	assert.Equal(t, uint16(18080), a.Port)
}

func TestParseTorOnion(t *testing.T) {
	a, err := Parse("exampleonionaddress.onion:18080", 9999)
	assert.NoError(t, err)
	assert.Equal(t, KindTor, a.Kind)
}

func TestParseI2PUnsupported(t *testing.T) {
	_, err := Parse("example.i2p", 9999)
	assert.ErrorIs(t, err, ErrI2PUnsupported)
}

func TestParseEmptyHost(t *testing.T) {
	_, err := Parse(":18080", 9999)
	assert.ErrorIs(t, err, ErrInvalidHost)
}

func TestParseInvalidPort(t *testing.T) {
	_, err := Parse("127.0.0.1:notaport", 9999)
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestParseUnsupportedHost(t *testing.T) {
	_, err := Parse("not-an-ip-or-onion", 9999)
	assert.ErrorIs(t, err, ErrUnsupportedAddress)
}
