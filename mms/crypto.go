package mms

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/sha3"
)

// SecretKey is an account view secret key: a 32-byte scalar used both to
// derive the X25519 point published as View and, via a domain-separated
// blake2b hash, an independent ed25519 signing key.
type SecretKey [32]byte

// PublicKey is a 32-byte curve point: either an X25519 public key or an
// ed25519 verification key, depending on context.
type PublicKey [32]byte

// AccountPublicKey is what one coalition member publishes about itself:
// a spend key (opaque to this package, carried for wire compatibility),
// a view key used for ECDH, and a signing key used to verify message
// authenticity. The reference implementation reuses the view keypair for
// both ECDH and Schnorr signing because its key pairs are raw points on
// the same curve; Go's ed25519 applies incompatible scalar clamping to
// any seed, so this port derives a second, deterministic keypair instead
// of reusing the view secret directly for signing.
type AccountPublicKey struct {
	Spend   PublicKey
	View    PublicKey
	Signing PublicKey
}

// ViewPublicKey returns the X25519 public point for sk.
func ViewPublicKey(sk SecretKey) PublicKey {
	var pub [32]byte
	curve25519.ScalarBaseMult(&pub, (*[32]byte)(&sk))
	return PublicKey(pub)
}

const signingSeedDomain = "mms-signing-seed-v1:"

func signingKeypair(sk SecretKey) (ed25519.PublicKey, ed25519.PrivateKey) {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(signingSeedDomain))
	h.Write(sk[:])
	seed := h.Sum(nil)
	priv := ed25519.NewKeyFromSeed(seed)
	return priv.Public().(ed25519.PublicKey), priv
}

// SigningPublicKey returns the ed25519 verification key derived from sk.
func SigningPublicKey(sk SecretKey) PublicKey {
	pub, _ := signingKeypair(sk)
	var out PublicKey
	copy(out[:], pub)
	return out
}

// DeriveAccountPublicKey builds the public record a member publishes,
// given its spend key (opaque here) and view secret key.
func DeriveAccountPublicKey(spend PublicKey, viewSecret SecretKey) AccountPublicKey {
	return AccountPublicKey{
		Spend:   spend,
		View:    ViewPublicKey(viewSecret),
		Signing: SigningPublicKey(viewSecret),
	}
}

// Sign produces a detached signature over hash using the signing key
// derived from viewSecret.
func Sign(viewSecret SecretKey, hash [32]byte) []byte {
	_, priv := signingKeypair(viewSecret)
	return ed25519.Sign(priv, hash[:])
}

// Verify checks a signature produced by Sign against the sender's
// published Signing key.
func Verify(signing PublicKey, hash [32]byte, signature []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(signing[:]), hash[:], signature)
}

// ContentHash mirrors the reference's crypto::cn_fast_hash, which is
// Keccak-256, not NIST SHA3-256.
func ContentHash(content []byte) [32]byte {
	var out [32]byte
	d := sha3.NewLegacyKeccak256()
	d.Write(content)
	copy(out[:], d.Sum(nil))
	return out
}

// EncryptForMember generates an ephemeral X25519 keypair, derives a
// shared secret with destView, and encrypts plaintext under the
// resulting chacha20 key. The ephemeral public key and IV must travel
// alongside the ciphertext for the recipient to decrypt it.
func EncryptForMember(destView PublicKey, plaintext []byte) (ciphertext []byte, ephemeralPublic PublicKey, iv [16]byte, err error) {
	var ephSecret [32]byte
	if _, err = rand.Read(ephSecret[:]); err != nil {
		return nil, PublicKey{}, iv, errors.Wrap(err, "mms: generating ephemeral key")
	}
	var ephPub [32]byte
	curve25519.ScalarBaseMult(&ephPub, &ephSecret)

	shared, err := curve25519.X25519(ephSecret[:], destView[:])
	if err != nil {
		return nil, PublicKey{}, iv, errors.Wrap(err, "mms: computing ecdh shared secret")
	}

	if _, err = rand.Read(iv[:]); err != nil {
		return nil, PublicKey{}, iv, errors.Wrap(err, "mms: generating iv")
	}

	ct, err := chachaCrypt(deriveChachaKey(shared), iv, plaintext)
	if err != nil {
		return nil, PublicKey{}, iv, err
	}
	return ct, PublicKey(ephPub), iv, nil
}

// DecryptFromSender reverses EncryptForMember using the recipient's view
// secret key.
func DecryptFromSender(ciphertext []byte, ephemeralPublic PublicKey, iv [16]byte, viewSecret SecretKey) ([]byte, error) {
	shared, err := curve25519.X25519(viewSecret[:], ephemeralPublic[:])
	if err != nil {
		return nil, errors.Wrap(err, "mms: computing ecdh shared secret")
	}
	return chachaCrypt(deriveChachaKey(shared), iv, ciphertext)
}

func deriveChachaKey(shared []byte) [32]byte {
	var key [32]byte
	h, _ := blake2b.New256(nil)
	h.Write(shared)
	copy(key[:], h.Sum(nil))
	return key
}

// chachaCrypt XORs data against a chacha20 keystream. chacha20 is
// symmetric: the same call encrypts and decrypts.
//
// The wire format carries a 16-byte IV to match the reference's
// chacha_iv; golang.org/x/crypto/chacha20 takes a 12-byte nonce, so only
// the first 12 bytes are used as the actual nonce material.
func chachaCrypt(key [32]byte, iv [16]byte, data []byte) ([]byte, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], iv[:12])
	if err != nil {
		return nil, errors.Wrap(err, "mms: constructing chacha20 cipher")
	}
	out := make([]byte, len(data))
	c.XORKeyStream(out, data)
	return out, nil
}
