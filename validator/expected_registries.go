// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/registry"
	"github.com/bitmark-inc/storycommitd/storage"
)

// HoldingReader - read access to the token holding registry
type HoldingReader interface {
	Holding(storage.Transaction, account.Address) (*registry.Holding, error)
}

// MetadataReader - read access to the collectible metadata registry
type MetadataReader interface {
	Metadata(storage.Transaction, account.Address) (*registry.Metadata, error)
}
