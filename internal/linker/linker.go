// Package linker keeps the top-level compile_commands.json symlink pointed at
// the database of the most recently built profile.
package linker

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/filesystem"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const tempAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Relink points linkPath at target.
//
// target is stored verbatim, so a path relative to linkPath's directory keeps
// the link valid when the project directory moves. A regular file or empty
// directory at linkPath is removed first; an existing symlink is replaced by
// renaming a freshly created link over it, so readers never see the link
// missing.
func Relink(fsys filesystem.FileSystem, target, linkPath string) error {
	if info, err := fsys.Lstat(linkPath); err == nil && info.Mode()&fs.ModeSymlink == 0 {
		if err := fsys.Remove(linkPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cerrors.Wrap(cerrors.LinkReplaceFailed, err,
				"cannot replace %s: it is not a symlink and could not be removed", linkPath)
		}
	}

	tmpPath, err := tempLinkPath(linkPath)
	if err != nil {
		return cerrors.Wrap(cerrors.IOFailed, err, "failed to create a temporary link name")
	}

	if err := fsys.Symlink(target, tmpPath); err != nil {
		return cerrors.Wrap(cerrors.IOFailed, err, "failed to create symlink to %s", target)
	}

	if err := fsys.Rename(tmpPath, linkPath); err != nil {
		_ = fsys.Remove(tmpPath)
		return cerrors.Wrap(cerrors.LinkReplaceFailed, err, "failed to replace %s", linkPath)
	}

	return nil
}

// Unlink removes the symlink at linkPath. A missing link is not an error.
func Unlink(fsys filesystem.FileSystem, linkPath string) error {
	if err := fsys.Remove(linkPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", linkPath, err)
	}
	return nil
}

func tempLinkPath(linkPath string) (string, error) {
	id, err := gonanoid.Generate(tempAlphabet, 8)
	if err != nil {
		return "", err
	}
	dir, base := filepath.Split(linkPath)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s", base, id)), nil
}
