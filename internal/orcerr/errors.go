// Package orcerr defines the small error-kind taxonomy every loop tick
// dispatches on (spec §7): transient network errors retry with backoff,
// decoding errors are skipped, insufficient-power/fee errors pause or
// escalate, and wrong-contract/invalid-signature errors are fatal.
package orcerr

import "fmt"

// Kind classifies a tick error for the orchestrator's dispatch logic.
type Kind int

const (
	// KindTransient covers unreachable RPC endpoints, timeouts, and nodes
	// reporting they are still syncing. The loop retries without
	// advancing any cursor.
	KindTransient Kind = iota
	// KindDecoding covers a single event or artifact that failed to
	// parse (overflow, malformed log). The loop skips it and continues
	// with the rest of the batch.
	KindDecoding
	// KindInsufficientPower covers a relayer computing a confirm set
	// below the 66% threshold. The loop waits for more signers.
	KindInsufficientPower
	// KindInvalidSignature covers a confirmation whose signature cannot
	// be recovered to any address. A confirmation that recovers to an
	// address other than the one it claims does not get this kind: the
	// signature engine panics on it, since the native module accepted a
	// malformed confirm and this process cannot route around it.
	KindInvalidSignature
	// KindInsufficientFees covers the native chain rejecting our own
	// confirm-signing transaction for underpaying fees. Persisting this
	// condition risks slashing, so it is fatal.
	KindInsufficientFees
	// KindWrongContract covers oracle resync walking to block 0 without
	// finding the deploy valset: the configured contract address does
	// not match the chain being scanned.
	KindWrongContract
	// KindNonceStalled covers a claim submission that did not advance
	// last_event_nonce on the native side.
	KindNonceStalled
	// KindConfig covers a malformed or unloadable configuration, keyring,
	// or keystore: nothing a retry loop can recover from, since the
	// process has no valid identity to act with.
	KindConfig
)

// Error wraps an underlying cause with a Kind so callers can dispatch via
// errors.As without string matching.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an *Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an *Error of the given kind around cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// Fatal reports whether a Kind should terminate the process rather than
// be retried by its loop.
func (k Kind) Fatal() bool {
	switch k {
	case KindInvalidSignature, KindInsufficientFees, KindWrongContract, KindConfig:
		return true
	default:
		return false
	}
}
