package mms

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
)

// TransportEnvelope is what travels over the wire between two coalition
// members. Authenticity comes from Signature over Hash, not from the
// cipher: the payload encryption has no AEAD tag of its own.
type TransportEnvelope struct {
	SourceMoneroAddress        AccountPublicKey
	SourceTransportAddress     string
	DestinationMoneroAddress   AccountPublicKey
	DestinationTransportAddress string
	IV                         [16]byte
	EncryptionPublicKey        PublicKey
	Timestamp                  uint64
	Type                       MessageType
	Subject                    string
	Content                    []byte
	Hash                       [32]byte
	Signature                  []byte
	TransportID                string
	Round                      uint32
	SignatureCount             uint32
}

// Encode serialises the envelope to a portable binary form.
func (e TransportEnvelope) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return nil, errors.Wrap(err, "mms: encoding transport envelope")
	}
	return buf.Bytes(), nil
}

// DecodeEnvelope reverses Encode.
func DecodeEnvelope(data []byte) (TransportEnvelope, error) {
	var e TransportEnvelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&e); err != nil {
		return TransportEnvelope{}, errors.Wrap(err, "mms: decoding transport envelope")
	}
	return e, nil
}

// fileMagic and fileVersion identify the on-disk snapshot format. Bumping
// fileVersion is the upgrade path for a changed format; nothing in this
// tree currently requires more than version 0.
const (
	fileMagic   = "MMS"
	fileVersion = uint32(0)
)

// FileEnvelope wraps an encrypted MessageStore snapshot for on-disk
// persistence.
type FileEnvelope struct {
	Magic         string
	FileVersion   uint32
	IV            [16]byte
	EncryptedData []byte
}

// snapshot is the plaintext that FileEnvelope.EncryptedData decrypts to:
// the full in-memory state of a Store.
type snapshot struct {
	Active        bool
	CoalitionSize uint32
	Threshold     uint32
	AutoSend      bool
	Members       []Member
	Messages      []Message
	NextMessageID uint32
}

func encodeSnapshot(s snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, errors.Wrap(err, "mms: encoding store snapshot")
	}
	return buf.Bytes(), nil
}

func decodeSnapshot(data []byte) (snapshot, error) {
	var s snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return snapshot{}, errors.Wrap(err, "mms: decoding store snapshot")
	}
	return s, nil
}
