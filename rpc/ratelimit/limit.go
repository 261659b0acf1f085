// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling shared by the RPC services
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/storycommitd/fault"
)

// MaximumWait - longest a request is held waiting for tokens, a longer
// queue is refused and its reservation returned to the bucket
const MaximumWait = 5 * time.Second

// Limit - hold a single request until the limiter admits it
func Limit(limiter *rate.Limiter) error {
	return admit(limiter, 1, MaximumWait)
}

// LimitN - hold a request costing count tokens
//
// a count outside 1..maximumCount still costs one token, then fails
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return admit(limiter, count, MaximumWait)
	}
	if err := admit(limiter, 1, MaximumWait); nil != err {
		return err
	}
	return fault.ErrInvalidCount
}

func admit(limiter *rate.Limiter, tokens int, maximumWait time.Duration) error {
	now := time.Now()
	r := limiter.ReserveN(now, tokens)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	delay := r.DelayFrom(now)
	if delay > maximumWait {
		r.CancelAt(now)
		return fault.ErrRateLimiting
	}
	time.Sleep(delay)
	return nil
}
