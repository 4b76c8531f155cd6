// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

//go:build linux

package cifs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Superblock magics reported by the kernel CIFS client. Mounts
// negotiated as SMB1 report cifsSuperMagic, SMB2 and later report
// smb2SuperMagic.
const (
	cifsSuperMagic uint32 = 0xFF534D42
	smb2SuperMagic uint32 = 0xFE534D42
)

// CIFS_IOC_COPYCHUNK_FILE, _IOW(0xCF, 3, int) from the kernel's
// fs/smb/client/cifs_ioctl.h. Takes the source fd as argument and
// asks the server holding the destination to copy the source's full
// byte range itself.
const copychunkFile = 0x4004cf03

// FileKind reports the kind of filesystem backing f.
func FileKind(f *os.File) (Kind, error) {
	var sfs unix.Statfs_t
	if err := unix.Fstatfs(int(f.Fd()), &sfs); err != nil {
		return KindOther, &os.PathError{Op: "fstatfs", Path: f.Name(), Err: err}
	}
	// f_type is int32 on 32-bit architectures, where the CIFS magic
	// comes back sign-extended; truncating makes the compare uniform.
	return kindForMagic(uint32(sfs.Type)), nil
}

func kindForMagic(magic uint32) Kind {
	switch magic {
	case cifsSuperMagic, smb2SuperMagic:
		return KindSMB
	}
	return KindOther
}

// CopyChunk instructs the server holding dst to duplicate the entire
// contents of src into dst. Both files must be open on mounts of the
// same SMB server; no file data traverses the client link. Any errno
// from the ioctl is a hard failure, there is no retry and no
// client-side fallback.
func CopyChunk(dst, src *os.File) error {
	if err := unix.IoctlSetInt(int(dst.Fd()), copychunkFile, int(src.Fd())); err != nil {
		return fmt.Errorf("server-side copy failed: %w", err)
	}
	return nil
}
