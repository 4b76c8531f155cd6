// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

// Package cifs wraps the Linux CIFS client facilities smb2mv needs:
// detecting whether an open file lives on a CIFS/SMB2 mount and
// issuing the server-side copy ioctl. On non-Linux platforms both
// facilities degrade to "not an SMB mount" / "not supported".
package cifs

// Kind classifies the filesystem backing an open file. It is derived
// fresh from the kernel on every query and never cached.
type Kind int

const (
	// KindOther is any filesystem smb2mv cannot server-side copy on.
	KindOther Kind = iota
	// KindSMB is a mount served by the kernel CIFS client, whether
	// negotiated as SMB1 (CIFS) or SMB2/SMB3.
	KindSMB
)

func (k Kind) String() string {
	switch k {
	case KindSMB:
		return "cifs/smb2"
	default:
		return "other"
	}
}
