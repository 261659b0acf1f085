// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derive - program derived addresses
//
// a derived address is the SHA-256 of the seeds, the program id and a
// fixed marker.  The result must not be a valid ed25519 point so that
// no private key can exist for it.  A bump byte is appended as the
// final seed and decremented from 255 until an off curve result is
// found; that first bump is the canonical one.
package derive

import (
	"filippo.io/edwards25519"
	sha256 "github.com/minio/sha256-simd"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
)

// limits on seeds
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32
)

// namespace tags, versioned so earlier contract revisions cannot collide
const (
	BankTag     = "bank_v06"
	CommitTag   = "commit_v06"
	MetadataTag = "metadata"
)

var marker = []byte("ProgramDerivedAddress")

// CreateAddress - compute the derived address for a complete set of
// seeds (including any bump)
func CreateAddress(seeds [][]byte, programId account.Address) (account.Address, error) {
	if len(seeds) > MaximumSeeds {
		return account.Address{}, fault.ErrTooManySeeds
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return account.Address{}, fault.ErrSeedTooLong
		}
		h.Write(seed)
	}
	h.Write(programId[:])
	h.Write(marker)

	a, err := account.AddressFromBytes(h.Sum(nil))
	if nil != err {
		return account.Address{}, err
	}
	if isOnCurve(a) {
		return account.Address{}, fault.ErrAddressOnCurve
	}
	return a, nil
}

// FindAddress - search for the canonical bump and return the address
// it produces
func FindAddress(seeds [][]byte, programId account.Address) (account.Address, uint8, error) {
	if len(seeds) >= MaximumSeeds {
		return account.Address{}, 0, fault.ErrTooManySeeds
	}

	bumped := make([][]byte, len(seeds)+1)
	copy(bumped, seeds)

	for bump := 255; bump >= 0; bump -= 1 {
		bumped[len(seeds)] = []byte{byte(bump)}
		a, err := CreateAddress(bumped, programId)
		if nil == err {
			return a, uint8(bump), nil
		}
		if fault.ErrAddressOnCurve != err {
			return account.Address{}, 0, err
		}
	}
	return account.Address{}, 0, fault.ErrNoViableBump
}

// VerifyBump - check a caller supplied bump is the canonical one
func VerifyBump(seeds [][]byte, programId account.Address, bump uint8) (account.Address, error) {
	a, canonical, err := FindAddress(seeds, programId)
	if nil != err {
		return account.Address{}, err
	}
	if canonical != bump {
		return account.Address{}, fault.ErrInvalidBump
	}
	return a, nil
}

// BankSeeds - seeds of the singleton bank record
func BankSeeds() [][]byte {
	return [][]byte{[]byte(BankTag)}
}

// CommitSeeds - seeds of the commit record for a mint
func CommitSeeds(mint account.Address) [][]byte {
	return [][]byte{[]byte(CommitTag), mint.Bytes()}
}

// MetadataSeeds - seeds of the metadata registry entry for a mint
// (derived under the metadata program)
func MetadataSeeds(metadataProgramId account.Address, mint account.Address) [][]byte {
	return [][]byte{[]byte(MetadataTag), metadataProgramId.Bytes(), mint.Bytes()}
}

func isOnCurve(a account.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}
