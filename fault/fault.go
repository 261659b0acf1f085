// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type FundsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressOnCurve          = InvalidError("derived address lies on the ed25519 curve")
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBankAlreadyExists       = ExistsError("bank record already exists")
	ErrBankNotFound            = NotFoundError("bank record not found")
	ErrCannotDecodeAddress     = InvalidError("cannot decode address")
	ErrCertificateExpired      = InvalidError("certificate has expired")
	ErrCertificateFileExists   = ExistsError("certificate file already exists")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrCreatorMismatch         = AuthorisationError("first creator is not the trusted creator")
	ErrCreatorNotVerified      = AuthorisationError("first creator has not verified the metadata")
	ErrCreatorShares           = InvalidError("creator shares must total 100")
	ErrHoldingAmountNotOne     = AuthorisationError("holding account amount is not exactly one")
	ErrHoldingMintMismatch     = AuthorisationError("holding account mint does not match")
	ErrHoldingNotFound         = AuthorisationError("holding account not found")
	ErrInsufficientFunds       = FundsError("insufficient funds")
	ErrInvalidAddressLength    = LengthError("invalid address length")
	ErrInvalidBump             = InvalidError("bump is not canonical")
	ErrInvalidChain            = InvalidError("invalid chain")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidCursor           = InvalidError("invalid cursor")
	ErrInvalidIpAddress        = InvalidError("invalid IP address")
	ErrInvalidSeed             = InvalidError("invalid seed")
	ErrInvalidSeedChecksum     = InvalidError("invalid seed checksum")
	ErrInvalidSeedNetwork      = InvalidError("seed is for a different network")
	ErrInvalidSignature        = InvalidError("invalid signature")
	ErrKeyFileExists           = ExistsError("key file already exists")
	ErrMetadataAddressMismatch = AuthorisationError("metadata address does not match derived address")
	ErrMetadataMintMismatch    = AuthorisationError("metadata mint does not match")
	ErrMetadataNotFound        = AuthorisationError("metadata entry not found")
	ErrMissingCreator          = InvalidError("trusted creator is required")
	ErrMissingMetadata         = InvalidError("metadata address is required")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNoCreators              = AuthorisationError("metadata entry lists no creators")
	ErrNoViableBump            = NotFoundError("no viable bump seed")
	ErrNotAvailableOnChain     = InvalidError("not available on this chain")
	ErrNotHoldingOwner         = AuthorisationError("caller is not the holding account owner")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrRateLimiting            = InvalidError("rate limiting")
	ErrRecordAlreadyExists     = ExistsError("record already exists")
	ErrRecordLength            = LengthError("record length is invalid")
	ErrRecordNotFound          = NotFoundError("record not found")
	ErrSeedTooLong             = LengthError("seed is too long")
	ErrSequenceMismatch        = InvalidError("commit sequence is not the next value")
	ErrTooManyCreators         = LengthError("too many creators")
	ErrTooManySeeds            = LengthError("too many seeds")
	ErrTransactionInUse        = ProcessError("transaction already in use")
	ErrTransactionNotInUse     = ProcessError("transaction not begun")
	ErrValueOverflow           = FundsError("value overflow")
	ErrWrongRecordKind         = InvalidError("wrong record kind")
	ErrZeroAddress             = InvalidError("zero address")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e FundsError) Error() string         { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrFunds(e error) bool         { _, ok := e.(FundsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
