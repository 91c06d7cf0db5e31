package mms

// Transport is the capability a Store uses to exchange TransportEnvelope
// values with other coalition members. Concrete implementations — a
// Bitmessage-backed client and a file-based debug transport — live in the
// transport subpackage, selected by the recipient's transport address
// prefix (see transport.Resolve).
type Transport interface {
	// SendMessage dispatches env to its destination transport address.
	SendMessage(env TransportEnvelope) error

	// ReceiveMessages polls for envelopes addressed to selfTransportAddress.
	// It may block on network I/O until Stop is called.
	ReceiveMessages(selfAddress AccountPublicKey, selfTransportAddress string) ([]TransportEnvelope, error)

	// DeleteMessage removes the transport-side copy of a message already
	// processed locally, identified by the envelope's TransportID.
	DeleteMessage(transportID string) error

	// Stop unblocks any in-flight ReceiveMessages call. Idempotent.
	Stop()
}
