// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the program owned records
//
// every record is packed as an 8 byte discriminator identifying its
// kind followed by its fields in declaration order
package record

import (
	"bytes"

	sha256 "github.com/minio/sha256-simd"

	"github.com/bitmark-inc/storycommitd/fault"
)

// Kind - the type of a record
type Kind byte

// record kinds
const (
	BankKind Kind = iota + 1
	CommitKind
)

// DiscriminatorLength - bytes of kind prefix on every packed record
const DiscriminatorLength = 8

// Record - common interface for program records
type Record interface {
	Kind() Kind
	Pack() []byte
}

var discriminators = map[Kind][]byte{
	BankKind:   discriminator("Bank"),
	CommitKind: discriminator("CommitState"),
}

func discriminator(name string) []byte {
	digest := sha256.Sum256([]byte("account:" + name))
	return digest[:DiscriminatorLength]
}

// String - name of a record kind
func (kind Kind) String() string {
	switch kind {
	case BankKind:
		return "Bank"
	case CommitKind:
		return "Commit"
	default:
		return "Unknown"
	}
}

// Size - length of a packed record of this kind
func (kind Kind) Size() int {
	switch kind {
	case BankKind:
		return bankSize
	case CommitKind:
		return commitSize
	default:
		return 0
	}
}

// KindOf - identify a packed record from its discriminator
func KindOf(buffer []byte) (Kind, error) {
	if len(buffer) < DiscriminatorLength {
		return 0, fault.ErrRecordLength
	}
	for kind, d := range discriminators {
		if bytes.Equal(d, buffer[:DiscriminatorLength]) {
			return kind, nil
		}
	}
	return 0, fault.ErrWrongRecordKind
}

// Unpack - decode any packed record
func Unpack(buffer []byte) (Record, error) {
	kind, err := KindOf(buffer)
	if nil != err {
		return nil, err
	}
	switch kind {
	case BankKind:
		return UnpackBank(buffer)
	case CommitKind:
		return UnpackCommit(buffer)
	default:
		return nil, fault.ErrWrongRecordKind
	}
}

// check kind and exact length, return the field bytes
func fields(kind Kind, buffer []byte) ([]byte, error) {
	actual, err := KindOf(buffer)
	if nil != err {
		return nil, err
	}
	if actual != kind {
		return nil, fault.ErrWrongRecordKind
	}
	if len(buffer) != kind.Size() {
		return nil, fault.ErrRecordLength
	}
	return buffer[DiscriminatorLength:], nil
}

func header(kind Kind) []byte {
	buffer := make([]byte, DiscriminatorLength, kind.Size())
	copy(buffer, discriminators[kind])
	return buffer
}
