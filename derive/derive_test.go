// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derive_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/derive"
	"github.com/bitmark-inc/storycommitd/fault"
)

func mustAddress(t *testing.T, s string) account.Address {
	a, err := account.AddressFromBase58(s)
	if nil != err {
		t.Fatalf("address: %q  error: %s", s, err)
	}
	return a
}

func TestCreateAddressVectors(t *testing.T) {
	programId := mustAddress(t, "BPFLoaderUpgradeab1e11111111111111111111111")

	a, err := derive.CreateAddress([][]byte{[]byte(""), {1}}, programId)
	assert.Nil(t, err, "create error")
	assert.Equal(t, "BwqrghZA2htAcqq8dzP1WDAhTXYTYWj7CHxF5j7TDBAe", a.String(), "wrong address")

	a, err = derive.CreateAddress([][]byte{[]byte("Talking"), []byte("Squirrels")}, programId)
	assert.Nil(t, err, "create error")
	assert.Equal(t, "2fnQrngrQT4SeLcdToJAD96phoEjNL2man2kfRLCASVk", a.String(), "wrong address")
}

func TestCreateAddressLimits(t *testing.T) {
	programId := mustAddress(t, "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp")

	long := make([]byte, derive.MaximumSeedLength+1)
	_, err := derive.CreateAddress([][]byte{long}, programId)
	assert.Equal(t, fault.ErrSeedTooLong, err, "long seed accepted")

	many := make([][]byte, derive.MaximumSeeds+1)
	_, err = derive.CreateAddress(many, programId)
	assert.Equal(t, fault.ErrTooManySeeds, err, "too many seeds accepted")

	_, _, err = derive.FindAddress(make([][]byte, derive.MaximumSeeds), programId)
	assert.Equal(t, fault.ErrTooManySeeds, err, "no room for bump accepted")
}

func TestFindAddressIsReproducible(t *testing.T) {
	programId := mustAddress(t, "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp")

	a1, bump1, err := derive.FindAddress(derive.BankSeeds(), programId)
	assert.Nil(t, err, "find error")
	a2, bump2, err := derive.FindAddress(derive.BankSeeds(), programId)
	assert.Nil(t, err, "find error")
	assert.Equal(t, a1, a2, "address not reproducible")
	assert.Equal(t, bump1, bump2, "bump not reproducible")

	// the bump recreates the same address
	seeds := append(derive.BankSeeds(), []byte{bump1})
	a3, err := derive.CreateAddress(seeds, programId)
	assert.Nil(t, err, "create error")
	assert.Equal(t, a1, a3, "bump does not recreate address")
}

func TestCommitAddressesDoNotCollide(t *testing.T) {
	programId := mustAddress(t, "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp")

	bank, _, err := derive.FindAddress(derive.BankSeeds(), programId)
	assert.Nil(t, err, "bank error")

	seen := map[account.Address]struct{}{bank: {}}
	for i := 0; i < 20; i += 1 {
		publicKey, _, err := ed25519.GenerateKey(nil)
		assert.Nil(t, err, "generate error")
		mint, _ := account.AddressFromBytes(publicKey)

		a, _, err := derive.FindAddress(derive.CommitSeeds(mint), programId)
		assert.Nil(t, err, "find error")
		_, duplicate := seen[a]
		assert.False(t, duplicate, "address collision")
		seen[a] = struct{}{}
	}
}

func TestSeedOrderMatters(t *testing.T) {
	programId := mustAddress(t, "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp")
	mint := mustAddress(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	forward, _, err := derive.FindAddress([][]byte{[]byte(derive.CommitTag), mint.Bytes()}, programId)
	assert.Nil(t, err, "forward error")
	reverse, _, err := derive.FindAddress([][]byte{mint.Bytes(), []byte(derive.CommitTag)}, programId)
	assert.Nil(t, err, "reverse error")
	assert.NotEqual(t, forward, reverse, "seed order ignored")
}

func TestVerifyBump(t *testing.T) {
	programId := mustAddress(t, "2HV1ywovUQmKbVkadpBPpb9fSAE4sYfhpPxCUFg26FCp")
	mint := mustAddress(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	expected, bump, err := derive.FindAddress(derive.CommitSeeds(mint), programId)
	assert.Nil(t, err, "find error")

	a, err := derive.VerifyBump(derive.CommitSeeds(mint), programId, bump)
	assert.Nil(t, err, "canonical bump rejected")
	assert.Equal(t, expected, a, "wrong address")

	_, err = derive.VerifyBump(derive.CommitSeeds(mint), programId, bump-1)
	assert.Equal(t, fault.ErrInvalidBump, err, "non canonical bump accepted")
}
