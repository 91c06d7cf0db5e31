package mms

// messageIDsComplete reports whether every index from 1 onward holds a
// nonzero id. Index 0 (self) is intentionally skipped: a per-member id
// slice is built with len == coalition size and filled by member index,
// so there is never an id recorded for self at that slot.
func messageIDsComplete(ids []uint32) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i] == 0 {
			return false
		}
	}
	return true
}

func dropSelf(ids []uint32) []uint32 {
	if len(ids) == 0 {
		return nil
	}
	return append([]uint32(nil), ids[1:]...)
}

// GetProcessableMessages evaluates the planner state machine and returns
// the set of actions ready to take, in order of priority: member list
// completeness, then key set exchange, then finalization, then sync data
// exchange, then transaction signing/submission. At most one of these
// stages contributes plans to a single call; within the tx stage, a
// fully signed tx yields both a local-submit and one send-to-peer plan
// per peer so the caller can pick either.
func (s *Store) GetProcessableMessages(state WalletState, forceSync bool) ([]ProcessingPlan, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.memberInfoCompleteLocked() {
		return nil, "the list of coalition members is not complete", nil
	}

	if !state.Multisig {
		if !s.anyMessageOfTypeLocked(KeySet, Outbound) {
			return []ProcessingPlan{{Kind: PrepareMultisig}}, "", nil
		}

		keySetIDs := make([]uint32, s.coalitionSize)
		for _, m := range s.messages {
			if m.Type == KeySet && m.State == Waiting && keySetIDs[m.MemberIndex] == 0 {
				keySetIDs[m.MemberIndex] = m.ID
			}
		}
		if messageIDsComplete(keySetIDs) {
			return []ProcessingPlan{{Kind: MakeMultisig, MessageIDs: dropSelf(keySetIDs)}}, "", nil
		}
		return nil, "wallet can't go multisig because key sets from other members are missing or incomplete", nil
	}

	if state.Multisig && !state.MultisigIsReady {
		finalizingIDs := make([]uint32, s.coalitionSize)
		for _, m := range s.messages {
			if m.Type == FinalizingKeySet && m.State == Waiting && finalizingIDs[m.MemberIndex] == 0 {
				finalizingIDs[m.MemberIndex] = m.ID
			}
		}
		if messageIDsComplete(finalizingIDs) {
			return []ProcessingPlan{{Kind: FinalizeMultisig, MessageIDs: dropSelf(finalizingIDs)}}, "", nil
		}
		return nil, "wallet can't finalize multisig because key sets from other members are missing or incomplete", nil
	}

	if state.HasMultisigPartialKeyImages || forceSync {
		ownSyncDataCreated := false
		syncIDs := make([]uint32, s.coalitionSize)
		for _, m := range s.messages {
			if m.Type != MultisigSyncData {
				continue
			}
			if !forceSync && m.WalletHeight != state.NumTransferDetails {
				continue
			}
			switch {
			case m.Direction == Outbound:
				ownSyncDataCreated = true
			case m.Direction == Inbound && m.State == Waiting:
				if syncIDs[m.MemberIndex] == 0 {
					syncIDs[m.MemberIndex] = m.ID
				}
			}
		}
		if !ownSyncDataCreated {
			return []ProcessingPlan{{Kind: CreateSyncData}}, "", nil
		}
		if messageIDsComplete(syncIDs) {
			return []ProcessingPlan{{Kind: ProcessSyncData, MessageIDs: dropSelf(syncIDs)}}, "", nil
		}
		return nil, "syncing not possible because multisig sync data from other members is missing or incomplete", nil
	}

	waitingFound := false
	for _, m := range s.messages {
		if m.State != Waiting {
			continue
		}
		waitingFound = true

		switch m.Type {
		case FullySignedTx:
			plans := []ProcessingPlan{{Kind: SubmitTx, MessageIDs: []uint32{m.ID}}}
			for j := uint32(1); j < uint32(len(s.members)); j++ {
				plans = append(plans, ProcessingPlan{Kind: SendTx, MessageIDs: []uint32{m.ID}, ReceivingMemberIndex: j})
			}
			return plans, "", nil

		case PartiallySignedTx:
			if m.MemberIndex == 0 {
				var plans []ProcessingPlan
				for j := uint32(1); j < uint32(len(s.members)); j++ {
					plans = append(plans, ProcessingPlan{Kind: SendTx, MessageIDs: []uint32{m.ID}, ReceivingMemberIndex: j})
				}
				return plans, "", nil
			}
			return []ProcessingPlan{{Kind: SignTx, MessageIDs: []uint32{m.ID}}}, "", nil
		}
	}

	if waitingFound {
		return nil, "waiting message is not a tx and thus not processable now", nil
	}
	return nil, "there is no message waiting to be processed", nil
}
