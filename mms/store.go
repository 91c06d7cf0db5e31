package mms

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Store coordinates one coalition member's view of a multisig setup: the
// member list, the message list, and the transport used to exchange
// messages with peers. It is owned by a single wallet thread; the only
// concurrency primitive beyond its own mutex is the run flag used to
// cancel an in-flight poll.
type Store struct {
	mu sync.Mutex

	active        bool
	coalitionSize uint32
	threshold     uint32
	autoSend      bool
	members       []Member
	messages      []Message
	nextMessageID uint32

	filename    string
	transporter Transport
	resolve     func(address string) Transport

	run atomic.Bool
}

// NewStore constructs an empty, inactive Store using transporter to send
// and receive envelopes.
func NewStore(transporter Transport) *Store {
	s := &Store{transporter: transporter, nextMessageID: 1}
	s.run.Store(true)
	return s
}

// Init resets the store for a fresh coalition of coalitionSize members
// requiring threshold signatures, installs self at index 0, and persists.
func (s *Store) Init(state WalletState, ownLabel, ownTransport string, coalitionSize, threshold uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coalitionSize = coalitionSize
	s.threshold = threshold
	s.members = make([]Member, coalitionSize)
	for i := range s.members {
		s.members[i] = Member{Index: uint32(i), IsSelf: i == 0}
	}
	s.messages = nil
	s.nextMessageID = 1

	s.members[0].Label = ownLabel
	s.members[0].TransportAddress = ownTransport
	s.members[0].MoneroAddress = state.Address
	s.members[0].MoneroAddressKnown = true

	s.active = true
	s.filename = state.MMSFile

	return s.saveLocked(state)
}

// SetMember partially updates member idx: fields left nil are unchanged.
func (s *Store) SetMember(state WalletState, idx uint32, label, transportAddress *string, address *AccountPublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx >= uint32(len(s.members)) {
		return errors.Errorf("mms: invalid member index %d", idx)
	}
	m := &s.members[idx]
	if label != nil {
		m.Label = *label
	}
	if transportAddress != nil {
		m.TransportAddress = *transportAddress
	}
	if address != nil {
		m.MoneroAddress = *address
		m.MoneroAddressKnown = true
	}
	return s.saveLocked(state)
}

// Members returns a copy of the current member list.
func (s *Store) Members() []Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Member(nil), s.members...)
}

// Messages returns a copy of the current message list.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Store) memberInfoCompleteLocked() bool {
	if uint32(len(s.members)) < s.coalitionSize {
		return false
	}
	for _, m := range s.members {
		if m.Label == "" || m.TransportAddress == "" || !m.MoneroAddressKnown {
			return false
		}
	}
	return true
}

func (s *Store) anyMessageOfTypeLocked(typ MessageType, direction MessageDirection) bool {
	for _, m := range s.messages {
		if m.Type == typ && m.Direction == direction {
			return true
		}
	}
	return false
}

func (s *Store) anyMessageWithHashLocked(hash [32]byte) bool {
	for _, m := range s.messages {
		if m.Hash == hash {
			return true
		}
	}
	return false
}

// AddMessage assigns the next id to a new message and appends it to the
// store, persisting the result.
func (s *Store) AddMessage(state WalletState, memberIndex uint32, typ MessageType, direction MessageDirection, content []byte) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addMessageLocked(state, memberIndex, typ, direction, content)
}

func (s *Store) addMessageLocked(state WalletState, memberIndex uint32, typ MessageType, direction MessageDirection, content []byte) (uint32, error) {
	now := uint64(time.Now().Unix())
	initialState := ReadyToSend
	if direction == Inbound {
		initialState = Waiting
	}

	m := Message{
		ID:          s.nextMessageID,
		Type:        typ,
		Direction:   direction,
		Content:     content,
		Created:     now,
		Modified:    now,
		MemberIndex: memberIndex,
		State:       initialState,
		WalletHeight: state.NumTransferDetails,
	}
	s.nextMessageID++
	s.messages = append(s.messages, m)

	log.Info().
		Str("direction", direction.String()).
		Uint32("id", m.ID).
		Uint32("member", memberIndex).
		Str("type", typ.String()).
		Msg("mms: added message")

	if err := s.saveLocked(state); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// ProcessWalletCreatedData dispatches freshly produced wallet content to
// the right set of outbound messages, or wraps it as a self-addressed
// inbound container for tx data awaiting further signatures.
func (s *Store) ProcessWalletCreatedData(state WalletState, typ MessageType, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch typ {
	case KeySet, FinalizingKeySet, MultisigSyncData:
		for i := uint32(1); i < uint32(len(s.members)); i++ {
			if _, err := s.addMessageLocked(state, i, typ, Outbound, content); err != nil {
				return err
			}
		}
		return nil

	case PartiallySignedTx:
		if s.threshold == 1 {
			typ = FullySignedTx
		}
		_, err := s.addMessageLocked(state, 0, typ, Inbound, content)
		return err

	case FullySignedTx:
		_, err := s.addMessageLocked(state, 0, typ, Inbound, content)
		return err

	default:
		return errors.Errorf("mms: illegal message type %v", typ)
	}
}

func (s *Store) indexByIDLocked(id uint32) (int, error) {
	for i, m := range s.messages {
		if m.ID == id {
			return i, nil
		}
	}
	return 0, errors.Errorf("mms: no message found with id %d", id)
}

// DeleteMessage removes a message from the store, also asking the
// transporter to delete its transport-side copy if any.
func (s *Store) DeleteMessage(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.indexByIDLocked(id)
	if err != nil {
		return err
	}
	if tid := s.messages[idx].TransportID; tid != "" {
		if err := s.transporter.DeleteMessage(tid); err != nil {
			log.Warn().Err(err).Str("transport_id", tid).Msg("mms: failed to delete transport-side message")
		}
	}
	s.messages = append(s.messages[:idx], s.messages[idx+1:]...)
	return nil
}

// SetMessagesProcessed advances every message referenced by plan to its
// terminal per-direction state (waiting->processed, ready_to_send->sent)
// and persists.
func (s *Store) SetMessagesProcessed(state WalletState, plan ProcessingPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range plan.MessageIDs {
		if err := s.setMessageProcessedOrSentLocked(id); err != nil {
			return err
		}
	}
	return s.saveLocked(state)
}

func (s *Store) setMessageProcessedOrSentLocked(id uint32) error {
	idx, err := s.indexByIDLocked(id)
	if err != nil {
		return err
	}
	m := &s.messages[idx]
	switch m.State {
	case Waiting:
		if m.TransportID != "" {
			if err := s.transporter.DeleteMessage(m.TransportID); err != nil {
				log.Warn().Err(err).Str("transport_id", m.TransportID).Msg("mms: failed to delete transport-side message")
			}
		}
		m.State = Processed
	case ReadyToSend:
		m.State = Sent
	}
	m.Modified = uint64(time.Now().Unix())
	return nil
}

// Stop requests cancellation of any in-flight CheckForMessages call and
// propagates it to the transporter.
func (s *Store) Stop() {
	s.run.Store(false)
	s.transporter.Stop()
}
