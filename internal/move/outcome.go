// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

package move

// Outcome is the single terminal result of one move invocation. Every
// run ends in exactly one Outcome, and the process exit status is
// derived from it once, at the top level.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	// OutcomeOpenFailed means the source could not be opened; nothing
	// else was attempted.
	OutcomeOpenFailed
	// OutcomeResolutionFailed covers destination resolution errors,
	// including the deliberate refusal to overwrite an existing file.
	OutcomeResolutionFailed
	// OutcomeEligibilityFailed means one of the endpoints is not on a
	// CIFS/SMB2 mount; no copy was attempted.
	OutcomeEligibilityFailed
	// OutcomeCopyFailed means the server-side copy was rejected or
	// aborted; the source is untouched and the destination's contents
	// are undefined.
	OutcomeCopyFailed
	// OutcomeUnlinkFailed means the copy fully succeeded but the
	// source could not be removed; both copies exist.
	OutcomeUnlinkFailed
	// OutcomeCloseFailed means everything succeeded but releasing a
	// handle reported an error, which on network filesystems can mean
	// a deferred write failure.
	OutcomeCloseFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeOpenFailed:
		return "open failed"
	case OutcomeResolutionFailed:
		return "destination resolution failed"
	case OutcomeEligibilityFailed:
		return "eligibility check failed"
	case OutcomeCopyFailed:
		return "server-side copy failed"
	case OutcomeUnlinkFailed:
		return "source unlink failed"
	case OutcomeCloseFailed:
		return "handle close failed"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome to the process exit status: 0 for a full
// success, 1 for every failure.
func (o Outcome) ExitCode() int {
	if o == OutcomeSuccess {
		return 0
	}
	return 1
}
