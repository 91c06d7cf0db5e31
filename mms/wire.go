package mms

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"gitlab.com/jaxnet/cryptonote-consensus/cnerrors"
)

// transportFor picks the Transport to use for address: the resolver
// installed by the wiring layer if any, else the store's default
// transporter.
func (s *Store) transportFor(address string) Transport {
	if s.resolve != nil {
		return s.resolve(address)
	}
	return s.transporter
}

// SetTransportResolver installs a function that chooses a Transport per
// peer transport address (Bitmessage vs. file debug, see the transport
// subpackage's Resolve). Without one, every send and receive uses the
// Transport passed to NewStore.
func (s *Store) SetTransportResolver(resolve func(address string) Transport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolve = resolve
}

func formatUTCTimestamp(ts uint64) string {
	return time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05")
}

// SendMessage encrypts message id for its recipient, signs the result,
// dispatches it through the appropriate transport, and marks it sent.
func (s *Store) SendMessage(state WalletState, id uint32) error {
	s.mu.Lock()
	idx, err := s.indexByIDLocked(id)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	m := s.messages[idx]
	recipient := s.members[m.MemberIndex]
	self := s.members[0]
	s.mu.Unlock()

	ciphertext, ephPub, iv, err := EncryptForMember(recipient.MoneroAddress.View, m.Content)
	if err != nil {
		return err
	}
	hash := ContentHash(ciphertext)
	signature := Sign(state.ViewSecretKey, hash)
	now := uint64(time.Now().Unix())

	env := TransportEnvelope{
		SourceMoneroAddress:          self.MoneroAddress,
		SourceTransportAddress:       self.TransportAddress,
		DestinationMoneroAddress:     recipient.MoneroAddress,
		DestinationTransportAddress:  recipient.TransportAddress,
		IV:                           iv,
		EncryptionPublicKey:          ephPub,
		Timestamp:                    now,
		Type:                         m.Type,
		Subject:                      "MMS V0 " + formatUTCTimestamp(now),
		Content:                      ciphertext,
		Hash:                         hash,
		Signature:                    signature,
	}

	if err := s.transportFor(recipient.TransportAddress).SendMessage(env); err != nil {
		return errors.Wrap(err, "mms: sending message")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err = s.indexByIDLocked(id)
	if err != nil {
		return err
	}
	s.messages[idx].State = Sent
	s.messages[idx].Sent = now
	s.messages[idx].Modified = now
	return s.saveLocked(state)
}

func (s *Store) memberIndexByAddressLocked(addr AccountPublicKey) (uint32, bool) {
	for _, m := range s.members {
		if m.MoneroAddressKnown && m.MoneroAddress == addr {
			return m.Index, true
		}
	}
	return 0, false
}

// CheckForMessages polls the transporter for new envelopes addressed to
// self. It honors cancellation between the blocking poll and the
// subsequent processing loop, but once processing has started it runs to
// completion: partial persistence on a cancelled poll is not permitted.
func (s *Store) CheckForMessages(state WalletState) ([]Message, error) {
	s.mu.Lock()
	self := s.members[0]
	s.mu.Unlock()

	s.run.Store(true)
	transporter := s.transportFor(self.TransportAddress)
	envelopes, err := transporter.ReceiveMessages(self.MoneroAddress, self.TransportAddress)
	if err != nil {
		return nil, errors.Wrap(err, "mms: receiving messages")
	}
	if !s.run.Load() {
		log.Info().Msg("mms: poll cancelled before processing, discarding batch")
		return nil, nil
	}

	var newMessages []Message
	for _, env := range envelopes {
		s.mu.Lock()

		if s.anyMessageWithHashLocked(env.Hash) {
			s.mu.Unlock()
			continue
		}

		senderIndex, found := s.memberIndexByAddressLocked(env.SourceMoneroAddress)
		if !found {
			log.Warn().Msg("mms: dropping envelope from unknown sender")
			s.mu.Unlock()
			continue
		}
		signingKey := s.members[senderIndex].MoneroAddress.Signing
		s.mu.Unlock()

		actualHash := ContentHash(env.Content)
		if actualHash != env.Hash {
			authErr := cnerrors.NewRuleError(cnerrors.CodeAuth, fmt.Sprintf("content hash mismatch from sender %d", senderIndex))
			log.Warn().Err(authErr).Uint32("sender", senderIndex).Msg("mms: dropping envelope")
			continue
		}
		if !Verify(signingKey, actualHash, env.Signature) {
			authErr := cnerrors.NewRuleError(cnerrors.CodeAuth, fmt.Sprintf("invalid signature from sender %d", senderIndex))
			log.Warn().Err(authErr).Uint32("sender", senderIndex).Msg("mms: dropping envelope")
			continue
		}

		plaintext, err := DecryptFromSender(env.Content, env.EncryptionPublicKey, env.IV, state.ViewSecretKey)
		if err != nil {
			return newMessages, err
		}

		s.mu.Lock()
		id, err := s.addMessageLocked(state, senderIndex, env.Type, Inbound, plaintext)
		if err != nil {
			s.mu.Unlock()
			return newMessages, err
		}
		idx, _ := s.indexByIDLocked(id)
		s.messages[idx].Hash = env.Hash
		s.messages[idx].TransportID = env.TransportID
		s.messages[idx].Sent = env.Timestamp
		s.messages[idx].Round = env.Round
		s.messages[idx].SignatureCount = env.SignatureCount
		added := s.messages[idx]
		s.mu.Unlock()

		newMessages = append(newMessages, added)
	}

	return newMessages, nil
}
