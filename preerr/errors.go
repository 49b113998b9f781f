// Package preerr defines the typed error surface shared by every package in
// this module (spec §6.3, §7): structural failures, detected-cheating
// failures, and environment failures. Callers distinguish them with
// errors.Is against the sentinels below; wrapped errors keep the sentinel
// via %w and include the underlying cause's message, so context is never
// silently dropped.
package preerr

import (
	"errors"
	"fmt"
)

// Structural errors: malformed wire data. Never retried, never swallowed.
var (
	ErrInvalidEncoding   = errors.New("invalid encoding")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrInvalidKey        = errors.New("invalid key")
	ErrMessageTooLarge   = errors.New("message exceeds group element capacity")
	ErrUnsupportedGroup  = errors.New("group does not support this operation")
)

// Cryptographic failures: a detected cheating participant. The library
// reports these with enough context to blame an offending fragment, but
// performs no retry, rotation, or blacklisting — that is a policy decision
// left to the caller (spec §7).
var (
	ErrInconsistentFragment = errors.New("kfrag fails consistency check against vKeys")
	ErrChallengeFailed      = errors.New("challenge response verification failed")
	ErrUmbral               = errors.New("umbral witness check failed")
)

// Environment failures: entropy source exhaustion. Fatal to the current
// operation; callers may retry.
var (
	ErrRandomness = errors.New("randomness source failure")
)

// Wrap annotates a sentinel with the re_id (or other identifying context)
// of the offending fragment, keeping errors.Is(err, sentinel) working.
func Wrap(sentinel error, context string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s: %w: %v", context, sentinel, cause)
	}
	return fmt.Errorf("%s: %w", context, sentinel)
}
