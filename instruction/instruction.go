// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - signed program requests
//
// each request packs as Varint64(tag) ++ program id followed by its
// fields in declaration order; the signer's ed25519 signature over
// that message is appended last
package instruction

import (
	"crypto/ed25519"

	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/fault"
	"github.com/bitmark-inc/storycommitd/record"
	"github.com/bitmark-inc/storycommitd/storycommit"
)

// Tag - type code for instructions
type Tag uint64

// enumerate the possible instruction tags
const (
	// null marks beginning of list - not used as a tag
	NullTag Tag = iota

	InitialiseBankTag Tag = iota
	InitialiseTag     Tag = iota
	CommitTag         Tag = iota

	// this item must be last
	InvalidTag Tag = iota
)

// String - name of a tag
func (tag Tag) String() string {
	switch tag {
	case InitialiseBankTag:
		return "InitialiseBank"
	case InitialiseTag:
		return "Initialise"
	case CommitTag:
		return "Commit"
	default:
		return "Invalid"
	}
}

// Packed - signed binary form
type Packed []byte

// Tag - the type code at the start of a packed instruction
func (packed Packed) Tag() Tag {
	n, count := readVarint64(packed)
	if 0 == count || n >= uint64(InvalidTag) {
		return InvalidTag
	}
	return Tag(n)
}

// Instruction - common behaviour of all requests
type Instruction interface {
	Signer() account.Address
	Message(programId account.Address) []byte
	Sign(programId account.Address, privateKey ed25519.PrivateKey)
	Pack(programId account.Address) (Packed, error)
}

// InitialiseBank - create the bank
type InitialiseBank struct {
	Payer     account.Address   `json:"payer"`
	Bump      uint8             `json:"bump"`
	Creator   *account.Address  `json:"creator,omitempty"`
	Signature account.Signature `json:"signature"`
}

// Initialise - open the commit record of a collectible
type Initialise struct {
	Caller    account.Address   `json:"caller"`
	Holding   account.Address   `json:"holding"`
	Mint      account.Address   `json:"mint"`
	Metadata  *account.Address  `json:"metadata,omitempty"`
	Bump      uint8             `json:"bump"`
	Traits    record.Traits     `json:"traits"`
	Signature account.Signature `json:"signature"`
}

// Commit - overwrite the traits of a collectible
type Commit struct {
	Caller    account.Address   `json:"caller"`
	Holding   account.Address   `json:"holding"`
	Mint      account.Address   `json:"mint"`
	Traits    record.Traits     `json:"traits"`
	Sequence  uint64            `json:"sequence,string"`
	Signature account.Signature `json:"signature"`
}

// Signer - the payer
func (ib *InitialiseBank) Signer() account.Address {
	return ib.Payer
}

// Message - the bytes covered by the signature
func (ib *InitialiseBank) Message(programId account.Address) []byte {
	message := header(InitialiseBankTag, programId)
	message = append(message, ib.Payer[:]...)
	message = append(message, ib.Bump)
	return appendOptionalAddress(message, ib.Creator)
}

// Sign - set the signature
func (ib *InitialiseBank) Sign(programId account.Address, privateKey ed25519.PrivateKey) {
	ib.Signature = ed25519.Sign(privateKey, ib.Message(programId))
}

// Pack - verify the signature and return the signed form
//
// NOTE: returns the unsigned message on signature failure
func (ib *InitialiseBank) Pack(programId account.Address) (Packed, error) {
	return pack(ib.Payer, ib.Message(programId), ib.Signature)
}

// Arguments - the program request
func (ib *InitialiseBank) Arguments() *storycommit.InitialiseBankArguments {
	return &storycommit.InitialiseBankArguments{
		Payer:   ib.Payer,
		Bump:    ib.Bump,
		Creator: ib.Creator,
	}
}

// Signer - the caller
func (i *Initialise) Signer() account.Address {
	return i.Caller
}

// Message - the bytes covered by the signature
func (i *Initialise) Message(programId account.Address) []byte {
	message := header(InitialiseTag, programId)
	message = append(message, i.Caller[:]...)
	message = append(message, i.Holding[:]...)
	message = append(message, i.Mint[:]...)
	message = appendOptionalAddress(message, i.Metadata)
	message = append(message, i.Bump)
	return appendTraits(message, i.Traits)
}

// Sign - set the signature
func (i *Initialise) Sign(programId account.Address, privateKey ed25519.PrivateKey) {
	i.Signature = ed25519.Sign(privateKey, i.Message(programId))
}

// Pack - verify the signature and return the signed form
//
// NOTE: returns the unsigned message on signature failure
func (i *Initialise) Pack(programId account.Address) (Packed, error) {
	return pack(i.Caller, i.Message(programId), i.Signature)
}

// Arguments - the program request
func (i *Initialise) Arguments() *storycommit.InitialiseArguments {
	return &storycommit.InitialiseArguments{
		Caller:   i.Caller,
		Holding:  i.Holding,
		Mint:     i.Mint,
		Metadata: i.Metadata,
		Bump:     i.Bump,
		Traits:   i.Traits,
	}
}

// Signer - the caller
func (c *Commit) Signer() account.Address {
	return c.Caller
}

// Message - the bytes covered by the signature
func (c *Commit) Message(programId account.Address) []byte {
	message := header(CommitTag, programId)
	message = append(message, c.Caller[:]...)
	message = append(message, c.Holding[:]...)
	message = append(message, c.Mint[:]...)
	message = appendTraits(message, c.Traits)
	return appendVarint64(message, c.Sequence)
}

// Sign - set the signature
func (c *Commit) Sign(programId account.Address, privateKey ed25519.PrivateKey) {
	c.Signature = ed25519.Sign(privateKey, c.Message(programId))
}

// Pack - verify the signature and return the signed form
//
// NOTE: returns the unsigned message on signature failure
func (c *Commit) Pack(programId account.Address) (Packed, error) {
	return pack(c.Caller, c.Message(programId), c.Signature)
}

// Arguments - the program request
func (c *Commit) Arguments() *storycommit.CommitArguments {
	return &storycommit.CommitArguments{
		Caller:   c.Caller,
		Holding:  c.Holding,
		Mint:     c.Mint,
		Traits:   c.Traits,
		Sequence: c.Sequence,
	}
}

// Verify - check the signature of any instruction
func Verify(i Instruction, programId account.Address) error {
	_, err := i.Pack(programId)
	return err
}

func pack(signer account.Address, message []byte, signature account.Signature) (Packed, error) {
	if signer.IsZero() {
		return nil, fault.ErrZeroAddress
	}
	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	message = appendVarint64(message, uint64(len(signature)))
	return append(message, signature...), nil
}

func header(tag Tag, programId account.Address) []byte {
	message := appendVarint64(nil, uint64(tag))
	return append(message, programId[:]...)
}

func appendOptionalAddress(buffer []byte, a *account.Address) []byte {
	if nil == a {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	return append(buffer, a[:]...)
}

func appendTraits(buffer []byte, traits record.Traits) []byte {
	a := traits.Array()
	return append(buffer, a[:]...)
}
