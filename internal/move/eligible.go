// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

package move

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/smbkit/smb2mv/internal/cifs"
)

var (
	// ErrSourceNotSMB means the source file is not on a CIFS/SMB2 mount.
	ErrSourceNotSMB = errors.New("source file system is not CIFS/SMB2")
	// ErrDestNotSMB means the destination file is not on a CIFS/SMB2 mount.
	ErrDestNotSMB = errors.New("destination file system is not CIFS/SMB2")
)

// checkEligible verifies that both open handles are backed by the
// kernel CIFS client. The sides are queried independently and a mixed
// pairing fails on whichever side is not SMB: the copychunk request
// needs both endpoints inside the same protocol stack. Passing the
// check does not guarantee the copy succeeds (the mounts may still
// point at different servers); it cheaply rejects the common
// inapplicable cases first.
func (m *Mover) checkEligible(src, dst *os.File) error {
	srcKind, err := m.fsKind(src)
	if err != nil {
		return fmt.Errorf("failed to stat source file system: %w", err)
	}
	if srcKind != cifs.KindSMB {
		return ErrSourceNotSMB
	}

	dstKind, err := m.fsKind(dst)
	if err != nil {
		return fmt.Errorf("failed to stat destination file system: %w", err)
	}
	if dstKind != cifs.KindSMB {
		return ErrDestNotSMB
	}

	slog.Debug("both endpoints are on CIFS/SMB2 mounts",
		"source", src.Name(), "destination", dst.Name())
	return nil
}
