// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/storycommitd/fault"
)

func TestAdmitRefusesLongQueue(t *testing.T) {
	// one token per minute, bucket of one
	limiter := rate.NewLimiter(rate.Every(time.Minute), 1)

	assert.Nil(t, admit(limiter, 1, time.Second), "first request refused")

	start := time.Now()
	assert.Equal(t, fault.ErrRateLimiting, admit(limiter, 1, time.Second), "queued past the maximum wait")
	assert.True(t, time.Since(start) < time.Second, "refusal waited")

	// the refused reservation was returned: the next token is one
	// interval away, not two
	now := time.Now()
	r := limiter.ReserveN(now, 1)
	assert.True(t, r.OK(), "reservation failed")
	assert.True(t, r.DelayFrom(now) <= time.Minute, "refused reservation kept its token: %s", r.DelayFrom(now))
	r.CancelAt(now)
}
