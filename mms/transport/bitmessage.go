// Package transport provides the concrete Transport implementations that
// a mms.Store dispatches to, selected by the recipient's transport address
// prefix: addresses starting with "BM-" go to Bitmessage, everything else
// goes to the file-based debug transport.
package transport

import (
	"github.com/pkg/errors"

	"gitlab.com/jaxnet/cryptonote-consensus/mms"
)

// ErrBitmessageNotImplemented is returned by every BitmessageTransport
// method. Driving an actual PyBitmessage daemon over its XML-RPC API is
// out of scope here; the client is kept interface-only so the dispatch
// and the rest of the MMS state machine can be built and tested against
// the file-based transport instead.
var ErrBitmessageNotImplemented = errors.New("mms/transport: bitmessage transport not implemented")

// BitmessageOptions carries the two config flags the reference exposes
// for its Bitmessage client.
type BitmessageOptions struct {
	Address string
	Login   string
}

// DefaultBitmessageOptions matches the reference's hard-coded defaults.
func DefaultBitmessageOptions() BitmessageOptions {
	return BitmessageOptions{
		Address: "http://localhost:8442/",
		Login:   "username:password",
	}
}

// BitmessageTransport is a placeholder satisfying mms.Transport. Every
// operation fails with ErrBitmessageNotImplemented.
type BitmessageTransport struct {
	opts BitmessageOptions
}

// NewBitmessage constructs a BitmessageTransport with the given options.
func NewBitmessage(opts BitmessageOptions) *BitmessageTransport {
	return &BitmessageTransport{opts: opts}
}

func (b *BitmessageTransport) SendMessage(mms.TransportEnvelope) error {
	return ErrBitmessageNotImplemented
}

func (b *BitmessageTransport) ReceiveMessages(mms.AccountPublicKey, string) ([]mms.TransportEnvelope, error) {
	return nil, ErrBitmessageNotImplemented
}

func (b *BitmessageTransport) DeleteMessage(string) error {
	return ErrBitmessageNotImplemented
}

func (b *BitmessageTransport) Stop() {}
