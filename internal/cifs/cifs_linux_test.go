// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

//go:build linux

package cifs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKindForMagic(t *testing.T) {
	tests := []struct {
		name  string
		magic uint32
		want  Kind
	}{
		{"cifs (smb1) mount", cifsSuperMagic, KindSMB},
		{"smb2 mount", smb2SuperMagic, KindSMB},
		{"ext4", 0xEF53, KindOther},
		{"tmpfs", 0x01021994, KindOther},
		{"btrfs", 0x9123683E, KindOther},
		{"zero", 0, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kindForMagic(tt.magic); got != tt.want {
				t.Errorf("kindForMagic(%#x) = %v, want %v", tt.magic, got, tt.want)
			}
		})
	}
}

// TestFileKindLocalFile verifies that a file on an ordinary local
// filesystem is never classified as an SMB mount.
func TestFileKindLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create probe file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open probe file: %v", err)
	}
	defer f.Close()

	kind, err := FileKind(f)
	if err != nil {
		t.Fatalf("FileKind failed: %v", err)
	}
	if kind != KindOther {
		t.Errorf("FileKind on local filesystem = %v, want %v", kind, KindOther)
	}
}

// TestFileKindClosedFile verifies the error path when the handle is
// no longer valid.
func TestFileKindClosedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("Failed to create probe file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open probe file: %v", err)
	}
	f.Close()

	if _, err := FileKind(f); err == nil {
		t.Error("Expected error from FileKind on closed file, got nil")
	}
}
