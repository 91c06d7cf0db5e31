package mms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportEnvelopeEncodeDecodeRoundTrip(t *testing.T) {
	env := TransportEnvelope{
		SourceTransportAddress:      "BM-source",
		DestinationTransportAddress: "BM-dest",
		Timestamp:                   12345,
		Type:                        KeySet,
		Subject:                     "MMS V0 2026-08-06 00:00:00",
		Content:                     []byte("ciphertext"),
		Signature:                   []byte("sig"),
	}
	env.Hash = ContentHash(env.Content)

	data, err := env.Encode()
	require.NoError(t, err)

	decoded, err := DecodeEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, env, decoded)
}

func TestSnapshotEncodeDecodeRoundTrip(t *testing.T) {
	snap := snapshot{
		Active:        true,
		CoalitionSize: 3,
		Threshold:     2,
		Members:       []Member{{Index: 0, IsSelf: true, Label: "me"}},
		Messages:      []Message{{ID: 1, Type: Note}},
		NextMessageID: 2,
	}

	data, err := encodeSnapshot(snap)
	require.NoError(t, err)

	decoded, err := decodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}
