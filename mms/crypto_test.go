package mms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	var aliceView, bobView SecretKey
	for i := range aliceView {
		aliceView[i] = byte(i + 1)
	}
	for i := range bobView {
		bobView[i] = byte(200 - i)
	}
	bobPublic := ViewPublicKey(bobView)

	plaintext := []byte("prepare_multisig data goes here")
	ciphertext, ephPub, iv, err := EncryptForMember(bobPublic, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := DecryptFromSender(ciphertext, ephPub, iv, bobView)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecryptWithWrongKeyDoesNotRecoverPlaintext(t *testing.T) {
	var bobView, maloryView SecretKey
	for i := range bobView {
		bobView[i] = byte(i + 1)
	}
	for i := range maloryView {
		maloryView[i] = byte(i + 2)
	}
	bobPublic := ViewPublicKey(bobView)

	ciphertext, ephPub, iv, err := EncryptForMember(bobPublic, []byte("secret"))
	require.NoError(t, err)

	got, err := DecryptFromSender(ciphertext, ephPub, iv, maloryView)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("secret"), got)
}

func TestSignVerify(t *testing.T) {
	var view SecretKey
	for i := range view {
		view[i] = byte(i * 3)
	}
	hash := ContentHash([]byte("hello mms"))
	sig := Sign(view, hash)

	signingPub := SigningPublicKey(view)
	assert.True(t, Verify(signingPub, hash, sig))

	otherHash := ContentHash([]byte("tampered"))
	assert.False(t, Verify(signingPub, otherHash, sig))
}

func TestContentHashDeterministic(t *testing.T) {
	a := ContentHash([]byte("same input"))
	b := ContentHash([]byte("same input"))
	assert.Equal(t, a, b)

	c := ContentHash([]byte("different input"))
	assert.NotEqual(t, a, c)
}

func TestDeriveAccountPublicKey(t *testing.T) {
	var view SecretKey
	for i := range view {
		view[i] = byte(i)
	}
	var spend PublicKey
	spend[0] = 0xAB

	acc := DeriveAccountPublicKey(spend, view)
	assert.Equal(t, spend, acc.Spend)
	assert.Equal(t, ViewPublicKey(view), acc.View)
	assert.Equal(t, SigningPublicKey(view), acc.Signing)
}
