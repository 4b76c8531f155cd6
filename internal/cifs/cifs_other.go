// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

//go:build !linux

package cifs

import (
	"fmt"
	"os"
	"runtime"
)

// FileKind reports the kind of filesystem backing f. Server-side copy
// relies on the Linux CIFS client, so every filesystem is KindOther
// here and the eligibility check rejects the move before any copy is
// attempted.
func FileKind(f *os.File) (Kind, error) {
	return KindOther, nil
}

// CopyChunk is not available outside Linux.
func CopyChunk(dst, src *os.File) error {
	return fmt.Errorf("server-side copy is not supported on %s", runtime.GOOS)
}
