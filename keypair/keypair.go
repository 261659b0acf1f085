// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - ed25519 identities held as checksummed base58 seeds
package keypair

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
)

// seed layout: header(3) ++ network(1) ++ core(32) ++ checksum(4)
var seedHeader = []byte{0x5a, 0xfe, 0x01}

const (
	seedHeaderLength   = 3
	seedCoreLength     = ed25519.SeedSize
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + 1 + seedCoreLength + seedChecksumLength
)

// KeyPair - an identity and the seed it was generated from
type KeyPair struct {
	Seed       string
	Test       bool
	Address    account.Address
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string          `json:"seed"`
	Address    account.Address `json:"address"`
	PrivateKey string          `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	core := make([]byte, seedCoreLength)
	n, err := rand.Read(core)
	if nil != err {
		return "", err
	}
	if seedCoreLength != n {
		panic("too few random bytes")
	}
	return packSeed(core, test), nil
}

// MakeRawKeyPair - create new seed and generate the keys from it
func MakeRawKeyPair(test bool) (*RawKeyPair, *KeyPair, error) {
	seed, err := NewSeed(test)
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed, test)
}

// MakeRawKeyPairFromSeed - generate the keys from an existing seed
func MakeRawKeyPairFromSeed(seed string, test bool) (*RawKeyPair, *KeyPair, error) {
	keyPair, err := FromSeed(seed)
	if nil != err {
		return nil, nil, err
	}
	if keyPair.Test != test {
		return nil, nil, fault.ErrInvalidSeedNetwork
	}

	rawKeyPair := RawKeyPair{
		Seed:       seed,
		Address:    keyPair.Address,
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	}
	return &rawKeyPair, keyPair, nil
}

// FromSeed - decode and check a base58 seed
func FromSeed(seed string) (*KeyPair, error) {
	packed, err := base58.Decode(seed)
	if nil != err || seedLength != len(packed) {
		return nil, fault.ErrInvalidSeed
	}
	if !bytes.Equal(seedHeader, packed[:seedHeaderLength]) {
		return nil, fault.ErrInvalidSeed
	}

	split := len(packed) - seedChecksumLength
	checksum := sha3.Sum256(packed[:split])
	if !bytes.Equal(checksum[:seedChecksumLength], packed[split:]) {
		return nil, fault.ErrInvalidSeedChecksum
	}

	var test bool
	switch packed[seedHeaderLength] {
	case 0x00:
		test = false
	case 0x01:
		test = true
	default:
		return nil, fault.ErrInvalidSeed
	}

	privateKey := ed25519.NewKeyFromSeed(packed[seedHeaderLength+1 : split])
	address, err := account.AddressFromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return nil, err
	}

	return &KeyPair{
		Seed:       seed,
		Test:       test,
		Address:    address,
		PrivateKey: privateKey,
	}, nil
}

func packSeed(core []byte, test bool) string {
	network := byte(0x00)
	if test {
		network = 0x01
	}
	packed := make([]byte, 0, seedLength)
	packed = append(packed, seedHeader...)
	packed = append(packed, network)
	packed = append(packed, core...)
	checksum := sha3.Sum256(packed)
	packed = append(packed, checksum[:seedChecksumLength]...)
	return base58.Encode(packed)
}
