// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/storycommitd/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// Address - a ledger address
type Address [AddressLength]byte

// AddressFromBytes - convert a byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromBase58 - convert a Base58 string to an address
func AddressFromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	return AddressFromBytes(buffer)
}

// Bytes - copy of the address bytes
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equal - compare two addresses
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a[:], b[:])
}

// String - Base58 form
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its Base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert Base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CheckSignature - verify an ed25519 signature made by the private
// key corresponding to this address
func (a Address) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(a[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
