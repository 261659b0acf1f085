// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/storycommitd/fault"
)

// TraitCount - number of trait slots on a commit
const TraitCount = 8

// SequenceLength - bytes of the little endian commit sequence
const SequenceLength = 8

// discriminator ++ traits ++ bump ++ sequence
const commitSize = DiscriminatorLength + TraitCount + 1 + SequenceLength

// TraitNames - slot names in packing order
var TraitNames = [TraitCount]string{
	"background",
	"body",
	"clothes",
	"head",
	"insidehead",
	"eyes",
	"mouths",
	"hats",
}

// Traits - the attribute slots of a collectible
type Traits struct {
	Background uint8 `json:"background"`
	Body       uint8 `json:"body"`
	Clothes    uint8 `json:"clothes"`
	Head       uint8 `json:"head"`
	InsideHead uint8 `json:"insidehead"`
	Eyes       uint8 `json:"eyes"`
	Mouths     uint8 `json:"mouths"`
	Hats       uint8 `json:"hats"`
}

// Commit - per collectible trait record
//
// Sequence counts accepted trait overwrites, a signed overwrite must
// carry the next value so it cannot be applied twice
type Commit struct {
	Traits   Traits `json:"traits"`
	Bump     uint8  `json:"bump"`
	Sequence uint64 `json:"sequence,string"`
}

// Array - traits in packing order
func (traits Traits) Array() [TraitCount]uint8 {
	return [TraitCount]uint8{
		traits.Background,
		traits.Body,
		traits.Clothes,
		traits.Head,
		traits.InsideHead,
		traits.Eyes,
		traits.Mouths,
		traits.Hats,
	}
}

// TraitsFromArray - build traits from packing order values
func TraitsFromArray(a [TraitCount]uint8) Traits {
	return Traits{
		Background: a[0],
		Body:       a[1],
		Clothes:    a[2],
		Head:       a[3],
		InsideHead: a[4],
		Eyes:       a[5],
		Mouths:     a[6],
		Hats:       a[7],
	}
}

// ParseTraits - decode "name=value" pairs, unnamed slots are zero
func ParseTraits(items []string) (Traits, error) {
	a := [TraitCount]uint8{}
	for _, item := range items {
		kv := strings.SplitN(item, "=", 2)
		if 2 != len(kv) {
			return Traits{}, fmt.Errorf("trait: %q is not name=value", item)
		}
		slot := -1
		for i, name := range TraitNames {
			if strings.EqualFold(name, strings.TrimSpace(kv[0])) {
				slot = i
				break
			}
		}
		if slot < 0 {
			return Traits{}, fmt.Errorf("trait: %q is not a known slot", kv[0])
		}
		n, err := strconv.ParseUint(strings.TrimSpace(kv[1]), 10, 8)
		if nil != err {
			return Traits{}, fmt.Errorf("trait: %q value error: %s", kv[0], err)
		}
		a[slot] = uint8(n)
	}
	return TraitsFromArray(a), nil
}

// String - compact text form
func (traits Traits) String() string {
	a := traits.Array()
	s := make([]string, TraitCount)
	for i, name := range TraitNames {
		s[i] = name + "=" + strconv.Itoa(int(a[i]))
	}
	return strings.Join(s, " ")
}

// Kind - CommitKind
func (commit *Commit) Kind() Kind {
	return CommitKind
}

// Pack - binary form of the commit
func (commit *Commit) Pack() []byte {
	buffer := header(CommitKind)
	a := commit.Traits.Array()
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, commit.Bump)
	sequence := make([]byte, SequenceLength)
	binary.LittleEndian.PutUint64(sequence, commit.Sequence)
	return append(buffer, sequence...)
}

// UnpackCommit - decode a packed commit
func UnpackCommit(buffer []byte) (*Commit, error) {
	data, err := fields(CommitKind, buffer)
	if nil != err {
		return nil, err
	}
	if TraitCount+1+SequenceLength != len(data) {
		return nil, fault.ErrRecordLength
	}
	a := [TraitCount]uint8{}
	copy(a[:], data[:TraitCount])
	return &Commit{
		Traits:   TraitsFromArray(a),
		Bump:     data[TraitCount],
		Sequence: binary.LittleEndian.Uint64(data[TraitCount+1:]),
	}, nil
}
