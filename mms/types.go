// Package mms implements the multisig message store: a coordinator that
// tracks coalition members and the messages exchanged between them while
// setting up and operating an M-of-M multisig wallet, plus the planner
// that decides which messages are ready to act on next.
package mms

// MessageType is the payload category carried by a Message.
type MessageType int

const (
	KeySet MessageType = iota
	FinalizingKeySet
	MultisigSyncData
	PartiallySignedTx
	FullySignedTx
	Note
)

func (t MessageType) String() string {
	switch t {
	case KeySet:
		return "key set"
	case FinalizingKeySet:
		return "finalizing key set"
	case MultisigSyncData:
		return "multisig sync data"
	case PartiallySignedTx:
		return "partially signed tx"
	case FullySignedTx:
		return "fully signed tx"
	case Note:
		return "note"
	default:
		return "unknown message type"
	}
}

// MessageDirection distinguishes messages this store produced (Outbound)
// from messages it received or is holding as a self-addressed container
// (Inbound).
type MessageDirection int

const (
	Inbound MessageDirection = iota
	Outbound
)

func (d MessageDirection) String() string {
	switch d {
	case Inbound:
		return "in"
	case Outbound:
		return "out"
	default:
		return "unknown direction"
	}
}

// MessageState tracks a Message through its lifecycle. Outbound messages
// move ready_to_send -> sent; inbound messages move waiting -> processed;
// either may move to cancelled instead.
type MessageState int

const (
	ReadyToSend MessageState = iota
	Sent
	Waiting
	Processed
	Cancelled
)

func (s MessageState) String() string {
	switch s {
	case ReadyToSend:
		return "ready to send"
	case Sent:
		return "sent"
	case Waiting:
		return "waiting"
	case Processed:
		return "processed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown message state"
	}
}

// PlanKind names the next action a ProcessingPlan recommends.
type PlanKind int

const (
	PrepareMultisig PlanKind = iota
	MakeMultisig
	FinalizeMultisig
	CreateSyncData
	ProcessSyncData
	SignTx
	SendTx
	SubmitTx
)

func (k PlanKind) String() string {
	switch k {
	case PrepareMultisig:
		return "prepare multisig"
	case MakeMultisig:
		return "make multisig"
	case FinalizeMultisig:
		return "finalize multisig"
	case CreateSyncData:
		return "create sync data"
	case ProcessSyncData:
		return "process sync data"
	case SignTx:
		return "sign tx"
	case SendTx:
		return "send tx"
	case SubmitTx:
		return "submit tx"
	default:
		return "unknown plan kind"
	}
}

// Message is one unit of MMS traffic, either produced locally (outbound)
// or received from / held for a peer (inbound).
type Message struct {
	ID             uint32
	Type           MessageType
	Direction      MessageDirection
	Content        []byte
	Created        uint64
	Modified       uint64
	Sent           uint64
	MemberIndex    uint32
	Hash           [32]byte
	State          MessageState
	WalletHeight   uint32
	Round          uint32
	SignatureCount uint32
	TransportID    string
}

// Member is one coalition participant. Index 0 is always self.
type Member struct {
	Index               uint32
	Label               string
	TransportAddress    string
	MoneroAddressKnown  bool
	MoneroAddress       AccountPublicKey
	IsSelf              bool
}

// ProcessingPlan is one actionable recommendation from GetProcessableMessages:
// "here is what to do, and with which messages".
type ProcessingPlan struct {
	Kind                 PlanKind
	MessageIDs           []uint32
	ReceivingMemberIndex uint32
}

// WalletState is the caller's wallet snapshot, read but never held
// beyond a single call: the coordinator has no independent view of wallet
// internals.
type WalletState struct {
	Address                     AccountPublicKey
	ViewSecretKey               SecretKey
	Multisig                    bool
	MultisigIsReady             bool
	HasMultisigPartialKeyImages bool
	NumTransferDetails          uint32
	MMSFile                     string
}
