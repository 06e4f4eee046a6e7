// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit throttles abuse-prone account operations: failed logins
// and password-reset requests, both keyed by the normalized email.
//
// Two implementations share the [Limiter] interface. [RedisLimiter] keeps
// fixed-window counters in Redis so that several server instances share one
// budget. [MemoryLimiter] keeps token buckets in process memory and is used
// when no Redis address is configured.
package ratelimit
