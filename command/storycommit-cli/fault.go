// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/storycommitd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidAmount   = fault.InvalidError("amount must be positive")
	ErrInvalidCreator  = fault.InvalidError("creator must be ADDRESS:SHARE[:verified]")
	ErrMissingSeed     = fault.NotFoundError("seed is required: use --seed or STORYCOMMIT_SEED")
	ErrRequiredAddress = fault.InvalidError("address option is required")
	ErrWrongNetwork    = fault.InvalidError("seed network does not match --network")
)
