// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/smbkit/smb2mv/internal/move"
)

// TestWrongOperandCount verifies that anything but exactly two
// operands is rejected during argument parsing, before the move
// machinery runs.
func TestWrongOperandCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"one"},
		{"one", "two", "three"},
	} {
		outcome := move.OutcomeSuccess
		cmd := newRootCmd(&outcome)
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		if err := cmd.Execute(); err == nil {
			t.Errorf("Expected argument error for %d operands, got nil", len(args))
		}
		if outcome != move.OutcomeSuccess {
			t.Errorf("Move must not run on an argument error, outcome = %v", outcome)
		}
	}
}

// TestRunReportsOpenFailure verifies that a failing move surfaces
// through Execute with the outcome captured for exit-status mapping.
func TestRunReportsOpenFailure(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "missing.txt")
	dst := filepath.Join(tempDir, "dst.txt")

	outcome := move.OutcomeSuccess
	cmd := newRootCmd(&outcome)
	cmd.SetArgs([]string{missing, dst})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected error for missing source, got nil")
	}
	if outcome != move.OutcomeOpenFailed {
		t.Errorf("Outcome = %v, want %v", outcome, move.OutcomeOpenFailed)
	}
	if outcome.ExitCode() != 1 {
		t.Errorf("Exit code = %d, want 1", outcome.ExitCode())
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Error("Destination must not be created when the source cannot be opened")
	}
}
