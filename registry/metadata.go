// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
)

// MaximumCreators - creators allowed on one metadata entry
const MaximumCreators = 5

// address ++ verified ++ share
const creatorSize = account.AddressLength + 2

// Creator - a declared creator of a collectible
type Creator struct {
	Address  account.Address `json:"address"`
	Verified bool            `json:"verified"`
	Share    uint8           `json:"share"`
}

// Metadata - the registry entry describing a collectible
type Metadata struct {
	Mint            account.Address `json:"mint"`
	UpdateAuthority account.Address `json:"updateAuthority"`
	Creators        []Creator       `json:"creators"`
}

// Validate - structural checks before storing
func (metadata *Metadata) Validate() error {
	if metadata.Mint.IsZero() {
		return fault.ErrZeroAddress
	}
	if len(metadata.Creators) > MaximumCreators {
		return fault.ErrTooManyCreators
	}
	if 0 == len(metadata.Creators) {
		return nil
	}
	total := 0
	for _, c := range metadata.Creators {
		total += int(c.Share)
	}
	if 100 != total {
		return fault.ErrCreatorShares
	}
	return nil
}

// Pack - binary form
func (metadata *Metadata) Pack() []byte {
	buffer := make([]byte, 0, 2*account.AddressLength+1+len(metadata.Creators)*creatorSize)
	buffer = append(buffer, metadata.Mint[:]...)
	buffer = append(buffer, metadata.UpdateAuthority[:]...)
	buffer = append(buffer, byte(len(metadata.Creators)))
	for _, c := range metadata.Creators {
		buffer = append(buffer, c.Address[:]...)
		verified := byte(0)
		if c.Verified {
			verified = 1
		}
		buffer = append(buffer, verified, c.Share)
	}
	return buffer
}

// UnpackMetadata - decode a packed metadata entry
func UnpackMetadata(buffer []byte) (*Metadata, error) {
	fixed := 2*account.AddressLength + 1
	if len(buffer) < fixed {
		return nil, fault.ErrRecordLength
	}
	count := int(buffer[fixed-1])
	if count > MaximumCreators {
		return nil, fault.ErrTooManyCreators
	}
	if fixed+count*creatorSize != len(buffer) {
		return nil, fault.ErrRecordLength
	}

	metadata := &Metadata{
		Creators: make([]Creator, count),
	}
	n := copy(metadata.Mint[:], buffer)
	n += copy(metadata.UpdateAuthority[:], buffer[n:])
	n += 1
	for i := 0; i < count; i += 1 {
		c := &metadata.Creators[i]
		n += copy(c.Address[:], buffer[n:])
		c.Verified = 0 != buffer[n]
		c.Share = buffer[n+1]
		n += 2
	}
	return metadata, nil
}
