// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storycommitd/fault"
)

func TestMakeRawKeyPair(t *testing.T) {
	raw, keyPair, err := MakeRawKeyPair(true)
	assert.Nil(t, err, "make error")
	assert.True(t, keyPair.Test, "wrong network")
	assert.Equal(t, raw.Address, keyPair.Address, "address mismatch")
	assert.Equal(t, ed25519.PrivateKeySize, len(keyPair.PrivateKey), "wrong private key size")

	again, err := FromSeed(raw.Seed)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, keyPair.Address, again.Address, "seed did not reproduce address")

	message := []byte("sign me")
	assert.Nil(t, keyPair.Address.CheckSignature(message, ed25519.Sign(keyPair.PrivateKey, message)), "signature check failed")
}

func TestSeedNetwork(t *testing.T) {
	seed, err := NewSeed(false)
	assert.Nil(t, err, "seed error")

	_, _, err = MakeRawKeyPairFromSeed(seed, true)
	assert.Equal(t, fault.ErrInvalidSeedNetwork, err, "live seed accepted as test")

	_, keyPair, err := MakeRawKeyPairFromSeed(seed, false)
	assert.Nil(t, err, "live seed rejected")
	assert.False(t, keyPair.Test, "wrong network")
}

func TestFixedSeed(t *testing.T) {
	core := make([]byte, seedCoreLength)
	for i := range core {
		core[i] = byte(i)
	}
	seed := packSeed(core, true)

	keyPair, err := FromSeed(seed)
	assert.Nil(t, err, "decode error")

	expected := ed25519.NewKeyFromSeed(core)
	assert.Equal(t, expected, keyPair.PrivateKey, "wrong private key")
}

func TestInvalidSeeds(t *testing.T) {
	seed, err := NewSeed(true)
	assert.Nil(t, err, "seed error")

	packed, _ := base58.Decode(seed)
	packed[len(packed)-1] ^= 0xff
	_, err = FromSeed(base58.Encode(packed))
	assert.Equal(t, fault.ErrInvalidSeedChecksum, err, "bad checksum accepted")

	_, err = FromSeed(seed[:len(seed)-3])
	assert.Equal(t, fault.ErrInvalidSeed, err, "truncated seed accepted")

	_, err = FromSeed("0OIl")
	assert.Equal(t, fault.ErrInvalidSeed, err, "non base58 accepted")
}
