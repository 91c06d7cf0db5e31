package mms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knownAddress(b byte) AccountPublicKey {
	return AccountPublicKey{Spend: PublicKey{b}, View: PublicKey{b, b}, Signing: PublicKey{b, b, b}}
}

func fullyKnownStore(t *testing.T, coalitionSize, threshold uint32) *Store {
	s := NewStore(&fakeTransport{})
	state := testWalletState()
	require.NoError(t, s.Init(state, "me", "BM-X", coalitionSize, threshold))
	for i := uint32(1); i < coalitionSize; i++ {
		label := "peer"
		transportAddr := "BM-peer"
		addr := knownAddress(byte(i))
		require.NoError(t, s.SetMember(state, i, &label, &transportAddr, &addr))
	}
	return s
}

func TestPlannerPrepareMultisigOnFreshStore(t *testing.T) {
	s := fullyKnownStore(t, 3, 2)
	state := testWalletState()

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 1)
	assert.Equal(t, PrepareMultisig, plans[0].Kind)
	assert.Empty(t, plans[0].MessageIDs)
}

func TestPlannerWaitsOnIncompleteMemberList(t *testing.T) {
	s := NewStore(&fakeTransport{})
	state := testWalletState()
	require.NoError(t, s.Init(state, "me", "BM-X", 3, 2))

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.NotEmpty(t, reason)
}

func TestPlannerMakeMultisigWhenKeySetsComplete(t *testing.T) {
	s := fullyKnownStore(t, 3, 2)
	state := testWalletState()

	_, err := s.AddMessage(state, 0, KeySet, Outbound, []byte("own"))
	require.NoError(t, err)
	idFromPeer1, err := s.AddMessage(state, 1, KeySet, Inbound, []byte("p1"))
	require.NoError(t, err)
	idFromPeer2, err := s.AddMessage(state, 2, KeySet, Inbound, []byte("p2"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 1)
	assert.Equal(t, MakeMultisig, plans[0].Kind)
	assert.ElementsMatch(t, []uint32{idFromPeer1, idFromPeer2}, plans[0].MessageIDs)
}

func TestPlannerWaitsOnIncompleteKeySets(t *testing.T) {
	s := fullyKnownStore(t, 3, 2)
	state := testWalletState()

	_, err := s.AddMessage(state, 0, KeySet, Outbound, []byte("own"))
	require.NoError(t, err)
	_, err = s.AddMessage(state, 1, KeySet, Inbound, []byte("p1"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.NotEmpty(t, reason)
}

func TestPlannerFinalizeMultisig(t *testing.T) {
	s := fullyKnownStore(t, 3, 3)
	state := testWalletState()
	state.Multisig = true
	state.MultisigIsReady = false

	id1, err := s.AddMessage(state, 1, FinalizingKeySet, Inbound, []byte("p1"))
	require.NoError(t, err)
	id2, err := s.AddMessage(state, 2, FinalizingKeySet, Inbound, []byte("p2"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 1)
	assert.Equal(t, FinalizeMultisig, plans[0].Kind)
	assert.ElementsMatch(t, []uint32{id1, id2}, plans[0].MessageIDs)
}

func readyState(t *testing.T) (*Store, WalletState) {
	s := fullyKnownStore(t, 3, 2)
	state := testWalletState()
	state.Multisig = true
	state.MultisigIsReady = true
	return s, state
}

func TestPlannerCreateSyncDataFirst(t *testing.T) {
	s, state := readyState(t)
	state.HasMultisigPartialKeyImages = true

	_, err := s.AddMessage(state, 1, MultisigSyncData, Inbound, []byte("p1"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 1)
	assert.Equal(t, CreateSyncData, plans[0].Kind)
}

func TestPlannerProcessSyncDataAfterOwnCreated(t *testing.T) {
	s, state := readyState(t)
	state.HasMultisigPartialKeyImages = true

	_, err := s.AddMessage(state, 0, MultisigSyncData, Outbound, []byte("own"))
	require.NoError(t, err)
	id1, err := s.AddMessage(state, 1, MultisigSyncData, Inbound, []byte("p1"))
	require.NoError(t, err)
	id2, err := s.AddMessage(state, 2, MultisigSyncData, Inbound, []byte("p2"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 1)
	assert.Equal(t, ProcessSyncData, plans[0].Kind)
	assert.ElementsMatch(t, []uint32{id1, id2}, plans[0].MessageIDs)
}

func TestPlannerFullySignedTxOffersSubmitAndSendToEachPeer(t *testing.T) {
	s, state := readyState(t)

	id, err := s.AddMessage(state, 1, FullySignedTx, Inbound, []byte("tx"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 3)
	assert.Equal(t, SubmitTx, plans[0].Kind)
	assert.Equal(t, []uint32{id}, plans[0].MessageIDs)
	assert.Equal(t, SendTx, plans[1].Kind)
	assert.Equal(t, uint32(1), plans[1].ReceivingMemberIndex)
	assert.Equal(t, SendTx, plans[2].Kind)
	assert.Equal(t, uint32(2), plans[2].ReceivingMemberIndex)
}

func TestPlannerOwnPartiallySignedTxSendsToEachPeer(t *testing.T) {
	s, state := readyState(t)

	id, err := s.AddMessage(state, 0, PartiallySignedTx, Inbound, []byte("tx"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 2)
	for _, p := range plans {
		assert.Equal(t, SendTx, p.Kind)
		assert.Equal(t, []uint32{id}, p.MessageIDs)
	}
}

func TestPlannerPeerPartiallySignedTxCanBeSignedLocally(t *testing.T) {
	s, state := readyState(t)

	id, err := s.AddMessage(state, 1, PartiallySignedTx, Inbound, []byte("tx"))
	require.NoError(t, err)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, reason)
	require.Len(t, plans, 1)
	assert.Equal(t, SignTx, plans[0].Kind)
	assert.Equal(t, []uint32{id}, plans[0].MessageIDs)
}

func TestPlannerNothingToDo(t *testing.T) {
	s, state := readyState(t)

	plans, reason, err := s.GetProcessableMessages(state, false)
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.NotEmpty(t, reason)
}
