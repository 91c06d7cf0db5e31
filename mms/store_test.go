package mms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	sent     []TransportEnvelope
	deleted  []string
	incoming []TransportEnvelope
	stopped  bool
}

func (f *fakeTransport) SendMessage(env TransportEnvelope) error {
	f.sent = append(f.sent, env)
	return nil
}

func (f *fakeTransport) ReceiveMessages(AccountPublicKey, string) ([]TransportEnvelope, error) {
	out := f.incoming
	f.incoming = nil
	return out, nil
}

func (f *fakeTransport) DeleteMessage(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeTransport) Stop() { f.stopped = true }

func testWalletState() WalletState {
	return WalletState{MMSFile: ""}
}

func TestInitInstallsSelfAtIndexZero(t *testing.T) {
	s := NewStore(&fakeTransport{})
	state := testWalletState()
	state.Address = AccountPublicKey{Spend: PublicKey{1}}

	require.NoError(t, s.Init(state, "me", "BM-X", 3, 2))

	members := s.Members()
	require.Len(t, members, 3)
	assert.True(t, members[0].IsSelf)
	assert.Equal(t, "me", members[0].Label)
	assert.Equal(t, "BM-X", members[0].TransportAddress)
	assert.True(t, members[0].MoneroAddressKnown)
	assert.False(t, members[1].IsSelf)
	assert.False(t, members[1].MoneroAddressKnown)
}

func TestSetMemberPartialUpdate(t *testing.T) {
	s := NewStore(&fakeTransport{})
	state := testWalletState()
	require.NoError(t, s.Init(state, "me", "BM-X", 2, 2))

	label := "peer"
	require.NoError(t, s.SetMember(state, 1, &label, nil, nil))

	members := s.Members()
	assert.Equal(t, "peer", members[1].Label)
	assert.Equal(t, "", members[1].TransportAddress)
	assert.False(t, members[1].MoneroAddressKnown)
}

func TestAddMessageAssignsMonotonicIDs(t *testing.T) {
	s := NewStore(&fakeTransport{})
	state := testWalletState()
	require.NoError(t, s.Init(state, "me", "BM-X", 2, 2))

	id1, err := s.AddMessage(state, 1, Note, Outbound, []byte("a"))
	require.NoError(t, err)
	id2, err := s.AddMessage(state, 1, Note, Outbound, []byte("b"))
	require.NoError(t, err)

	assert.Equal(t, uint32(1), id1)
	assert.Equal(t, uint32(2), id2)

	messages := s.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, ReadyToSend, messages[0].State)
}

func TestProcessWalletCreatedDataFansOutToPeers(t *testing.T) {
	s := NewStore(&fakeTransport{})
	state := testWalletState()
	require.NoError(t, s.Init(state, "me", "BM-X", 3, 2))

	require.NoError(t, s.ProcessWalletCreatedData(state, KeySet, []byte("keys")))

	messages := s.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, uint32(1), messages[0].MemberIndex)
	assert.Equal(t, uint32(2), messages[1].MemberIndex)
	for _, m := range messages {
		assert.Equal(t, Outbound, m.Direction)
		assert.Equal(t, KeySet, m.Type)
	}
}

func TestProcessWalletCreatedDataPromotesSingleThreshold(t *testing.T) {
	s := NewStore(&fakeTransport{})
	state := testWalletState()
	require.NoError(t, s.Init(state, "me", "BM-X", 2, 1))

	require.NoError(t, s.ProcessWalletCreatedData(state, PartiallySignedTx, []byte("tx")))

	messages := s.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, FullySignedTx, messages[0].Type)
	assert.Equal(t, Inbound, messages[0].Direction)
	assert.Equal(t, uint32(0), messages[0].MemberIndex)
}

func TestDeleteMessageRemovesAndCleansUpTransport(t *testing.T) {
	ft := &fakeTransport{}
	s := NewStore(ft)
	state := testWalletState()
	require.NoError(t, s.Init(state, "me", "BM-X", 2, 2))

	id, err := s.AddMessage(state, 1, Note, Outbound, []byte("a"))
	require.NoError(t, err)

	s.mu.Lock()
	idx, err := s.indexByIDLocked(id)
	require.NoError(t, err)
	s.messages[idx].TransportID = "tid-1"
	s.mu.Unlock()

	require.NoError(t, s.DeleteMessage(id))
	assert.Empty(t, s.Messages())
	assert.Equal(t, []string{"tid-1"}, ft.deleted)
}
