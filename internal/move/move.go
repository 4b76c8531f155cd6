// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

// Package move implements the server-side file move: destination
// resolution, eligibility checking, the copy-then-unlink sequencing,
// and the lifecycle of the two file handles involved.
package move

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/smbkit/smb2mv/internal/cifs"
)

// Mover performs a logical move of one file between two mount points
// of the same SMB server. The platform operations are held as fields
// so tests can substitute them; production movers come from New.
type Mover struct {
	// fsKind reports the filesystem kind backing an open file.
	fsKind func(*os.File) (cifs.Kind, error)
	// copyChunk asks the server to copy all of src's bytes into dst.
	copyChunk func(dst, src *os.File) error
	// removeSource unlinks the source path after a successful copy.
	removeSource func(string) error
}

// New returns a Mover backed by the real CIFS client operations.
func New() *Mover {
	return &Mover{
		fsKind:       cifs.FileKind,
		copyChunk:    cifs.CopyChunk,
		removeSource: os.Remove,
	}
}

// Move moves the file at srcPath to dstPath (or into it, when dstPath
// is a directory) by server-side copy followed by source unlink. It
// returns the single terminal outcome of the attempt and, for any
// outcome other than success, the error describing the failing step.
//
// Ordering guarantee: the source is unlinked only after the copy has
// fully succeeded, so no failure mode loses data. An unlink failure
// after a successful copy leaves two valid copies. Both handles are
// released on every path; the releases are independent of each other,
// and a close error on an otherwise successful run is itself reported
// as a failure since it can carry a deferred write error on network
// filesystems.
func (m *Mover) Move(srcPath, dstPath string) (outcome Outcome, err error) {
	src, oerr := os.OpenFile(srcPath, os.O_RDWR, 0)
	if oerr != nil {
		return OutcomeOpenFailed, fmt.Errorf("failed to open %s: %w", srcPath, oerr)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			if outcome == OutcomeSuccess {
				outcome = OutcomeCloseFailed
				err = fmt.Errorf("failed to close source file: %w", cerr)
			} else {
				slog.Error("failed to close source file", "error", cerr)
			}
		}
	}()

	dst, derr := resolveDestination(srcPath, dstPath)
	if derr != nil {
		return OutcomeResolutionFailed, derr
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil {
			if outcome == OutcomeSuccess {
				outcome = OutcomeCloseFailed
				err = fmt.Errorf("failed to close destination file: %w", cerr)
			} else {
				slog.Error("failed to close destination file", "error", cerr)
			}
		}
	}()

	if eerr := m.checkEligible(src, dst); eerr != nil {
		return OutcomeEligibilityFailed, eerr
	}

	// The created destination file stays in place if the copy fails;
	// its contents are undefined and the source is untouched.
	if cerr := m.copyChunk(dst, src); cerr != nil {
		return OutcomeCopyFailed, cerr
	}
	slog.Debug("server-side copy complete", "source", srcPath, "destination", dst.Name())

	if uerr := m.removeSource(srcPath); uerr != nil {
		// Copy succeeded, unlink did not: report failure but keep
		// the destination, leaving a duplicate rather than a loss.
		return OutcomeUnlinkFailed, fmt.Errorf("unable to remove source file: %w", uerr)
	}
	slog.Debug("source file removed", "source", srcPath)

	return OutcomeSuccess, nil
}
