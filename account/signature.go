// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/bitmark-inc/storycommitd/fault"
)

// Signature - ed25519 signature bytes, hex in text form
type Signature []byte

// String - hex form for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - hex encode, an absent signature is empty text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - hex decode; empty text leaves the request unsigned,
// anything else must be a complete signature
func (signature *Signature) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*signature = nil
		return nil
	}
	if hex.EncodedLen(ed25519.SignatureSize) != len(s) {
		return fault.ErrInvalidSignature
	}
	b := make([]byte, ed25519.SignatureSize)
	if _, err := hex.Decode(b, s); nil != err {
		return err
	}
	*signature = b
	return nil
}
