package transport

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/pkg/errors"

	"gitlab.com/jaxnet/cryptonote-consensus/mms"
)

const debugMessageFilename = "debug_message"

// FileDebugTransport is a drop-box transport for testing without a
// Bitmessage daemon: sending a message writes it into a subdirectory
// named by the recipient's transport address; receiving reads and
// consumes whatever single file is waiting in the caller's own
// subdirectory.
type FileDebugTransport struct {
	stopped atomic.Bool
}

// NewFileDebug constructs a FileDebugTransport.
func NewFileDebug() *FileDebugTransport {
	return &FileDebugTransport{}
}

func (f *FileDebugTransport) SendMessage(env mms.TransportEnvelope) error {
	dir := env.DestinationTransportAddress
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "mms/transport: creating debug transport directory")
	}
	data, err := env.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, debugMessageFilename), data, 0o600); err != nil {
		return errors.Wrap(err, "mms/transport: writing debug message file")
	}
	return nil
}

func (f *FileDebugTransport) ReceiveMessages(_ mms.AccountPublicKey, selfTransportAddress string) ([]mms.TransportEnvelope, error) {
	path := filepath.Join(selfTransportAddress, debugMessageFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "mms/transport: reading debug message file")
	}
	if f.stopped.Load() {
		return nil, nil
	}
	env, err := mms.DecodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	if err := os.Remove(path); err != nil {
		return nil, errors.Wrap(err, "mms/transport: removing consumed debug message file")
	}
	return []mms.TransportEnvelope{env}, nil
}

func (f *FileDebugTransport) DeleteMessage(string) error {
	return nil
}

func (f *FileDebugTransport) Stop() {
	f.stopped.Store(true)
}

// Resolve selects the Transport implementation for a given recipient (or
// self, for receiving) transport address: Bitmessage-style addresses are
// prefixed "BM-", everything else is treated as a file debug directory.
func Resolve(transportAddress string, bitmessageOpts BitmessageOptions) mms.Transport {
	if len(transportAddress) >= 3 && transportAddress[:3] == "BM-" {
		return NewBitmessage(bitmessageOpts)
	}
	return NewFileDebug()
}
