// SPDX-FileCopyrightText: (C) 2026 The smb2mv Authors
// SPDX-License-Identifier: Apache 2.0

package move

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrWouldOverwrite is returned when the destination already exists
// and is not a directory. Refusing to overwrite is policy, not a
// transient error; there is no force mode.
var ErrWouldOverwrite = errors.New("refusing to overwrite existing destination")

const destMode = 0o644

// resolveDestination turns dstPath into an open, newly created
// destination file. If dstPath does not exist it is created as the
// destination itself; if it is a directory, a file named after
// srcPath's base name is created inside it. Both creations are
// exclusive, so a pre-existing target always fails rather than being
// truncated. On success a real (empty) file now exists on the
// destination filesystem; it is left in place if a later step fails.
func resolveDestination(srcPath, dstPath string) (*os.File, error) {
	st, err := os.Stat(dstPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", dstPath, err)
		}
		f, err := os.OpenFile(dstPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, destMode)
		if err != nil {
			// The exclusive open can still hit an existing target the
			// stat missed: a file created in between, or a dangling
			// symlink. Same refusal as the other branches.
			if errors.Is(err, fs.ErrExist) {
				return nil, fmt.Errorf("%w: %s", ErrWouldOverwrite, dstPath)
			}
			return nil, fmt.Errorf("failed to create %s: %w", dstPath, err)
		}
		slog.Debug("created destination file", "path", dstPath)
		return f, nil
	}

	if st.IsDir() {
		composed := filepath.Join(dstPath, filepath.Base(srcPath))
		f, err := os.OpenFile(composed, os.O_CREATE|os.O_EXCL|os.O_WRONLY, destMode)
		if err != nil {
			if errors.Is(err, fs.ErrExist) {
				return nil, fmt.Errorf("%w: %s", ErrWouldOverwrite, composed)
			}
			return nil, fmt.Errorf("failed to create %s: %w", composed, err)
		}
		slog.Debug("created destination file inside directory", "path", composed)
		return f, nil
	}

	// Exists and is not a directory: a regular file, symlink, device
	// node or similar. Never overwritten.
	return nil, fmt.Errorf("%w: %s", ErrWouldOverwrite, dstPath)
}
