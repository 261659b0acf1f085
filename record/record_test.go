// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/record"
)

func TestBankPack(t *testing.T) {
	creator, _ := account.AddressFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	bank := &record.Bank{
		Bump:    254,
		Creator: creator,
	}

	packed := bank.Pack()
	assert.Equal(t, record.BankKind.Size(), len(packed), "wrong packed length")

	kind, err := record.KindOf(packed)
	assert.Nil(t, err, "kind error")
	assert.Equal(t, record.BankKind, kind, "wrong kind")

	unpacked, err := record.UnpackBank(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, bank, unpacked, "wrong bank")
	assert.True(t, unpacked.HasCreator(), "creator lost")

	assert.False(t, (&record.Bank{Bump: 1}).HasCreator(), "zero creator reported")
}

func TestCommitPack(t *testing.T) {
	commit := &record.Commit{
		Traits: record.Traits{
			Background: 1,
			Body:       2,
			Clothes:    3,
			Head:       4,
			InsideHead: 5,
			Eyes:       6,
			Mouths:     7,
			Hats:       255,
		},
		Bump:     253,
		Sequence: 0x0102,
	}

	packed := commit.Pack()
	assert.Equal(t, record.CommitKind.Size(), len(packed), "wrong packed length")
	assert.Equal(t, 25, len(packed), "wrong commit size")
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 255, 253, 2, 1, 0, 0, 0, 0, 0, 0}, packed[record.DiscriminatorLength:], "wrong field layout")

	r, err := record.Unpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, commit, r, "wrong commit")
}

func TestUnpackErrors(t *testing.T) {
	bank := (&record.Bank{Bump: 1}).Pack()
	commit := (&record.Commit{Bump: 1}).Pack()

	_, err := record.UnpackCommit(bank)
	assert.Equal(t, fault.ErrWrongRecordKind, err, "bank unpacked as commit")

	_, err = record.UnpackBank(commit)
	assert.Equal(t, fault.ErrWrongRecordKind, err, "commit unpacked as bank")

	_, err = record.UnpackCommit(commit[:len(commit)-1])
	assert.Equal(t, fault.ErrRecordLength, err, "truncated commit accepted")

	_, err = record.UnpackBank(append(bank, 0))
	assert.Equal(t, fault.ErrRecordLength, err, "extended bank accepted")

	_, err = record.Unpack([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrRecordLength, err, "short buffer accepted")

	_, err = record.Unpack([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, fault.ErrWrongRecordKind, err, "unknown discriminator accepted")
}

func TestTraitsArray(t *testing.T) {
	a := [record.TraitCount]uint8{8, 7, 6, 5, 4, 3, 2, 1}
	traits := record.TraitsFromArray(a)
	assert.Equal(t, uint8(8), traits.Background, "wrong background")
	assert.Equal(t, uint8(4), traits.InsideHead, "wrong insidehead")
	assert.Equal(t, uint8(1), traits.Hats, "wrong hats")
	assert.Equal(t, a, traits.Array(), "array round trip")
}

func TestParseTraits(t *testing.T) {
	traits, err := record.ParseTraits([]string{"background=3", "InsideHead=200", " hats = 9"})
	assert.Nil(t, err, "parse error")
	assert.Equal(t, record.Traits{Background: 3, InsideHead: 200, Hats: 9}, traits, "wrong traits")
	assert.Equal(t, "background=3 body=0 clothes=0 head=0 insidehead=200 eyes=0 mouths=0 hats=9", traits.String(), "wrong text")

	_, err = record.ParseTraits([]string{"wings=1"})
	assert.NotNil(t, err, "unknown slot accepted")

	_, err = record.ParseTraits([]string{"body=256"})
	assert.NotNil(t, err, "out of range value accepted")

	_, err = record.ParseTraits([]string{"body"})
	assert.NotNil(t, err, "missing value accepted")
}
