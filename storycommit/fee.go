// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storycommit

import (
	"github.com/bitmark-inc/storycommitd/account"
	"github.com/bitmark-inc/storycommitd/storage"
)

// ServiceFee - minimal units paid out of the bank on each initialise
const ServiceFee uint64 = 100000000

// move the service fee from the bank to the caller
//
// the bank balance is not checked here, the transfer primitive refuses
// to overdraw and that failure aborts the whole operation
func (p *Program) extractFee(trx storage.Transaction, bankAddress account.Address, caller account.Address) error {
	err := p.collaborators.Transfer.Transfer(trx, bankAddress, caller, ServiceFee)
	if nil != err {
		p.log.Warnf("fee: %d from: %s to: %s  error: %s", ServiceFee, bankAddress, caller, err)
		return err
	}
	p.log.Debugf("fee: %d from: %s to: %s", ServiceFee, bankAddress, caller)
	return nil
}
