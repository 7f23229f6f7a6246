// Package output names destination files and writes them safely.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gerunddev/docbridge/internal/logger"
)

// Policy decides what happens when the destination already exists
type Policy string

const (
	PolicyPrompt    Policy = "prompt"
	PolicyOverwrite Policy = "overwrite"
	PolicyRename    Policy = "rename"
)

// maxRenameAttempts bounds the " (N)" search
const maxRenameAttempts = 10000

// ErrNoFreeName is returned when every numbered candidate is taken
var ErrNoFreeName = errors.New("no free destination name")

// Prompter asks whether an existing file may be replaced
type Prompter interface {
	ConfirmOverwrite(path string) (bool, error)
}

// Resolver picks the path a conversion writes to
type Resolver struct {
	Policy Policy

	// Prompter is consulted under PolicyPrompt; nil means no terminal,
	// in which case the rename path is taken
	Prompter Prompter

	Logger *logger.Logger
}

// DestinationPath returns input with its extension replaced by ext
func DestinationPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// Resolve returns the path to write for the wanted destination
func (r *Resolver) Resolve(dest string) (string, error) {
	log := r.Logger
	if log == nil {
		log = logger.Discard()
	}

	if !Exists(dest) {
		return dest, nil
	}

	overwrite := false
	switch r.Policy {
	case PolicyOverwrite:
		overwrite = true
	case PolicyRename:
	case PolicyPrompt, "":
		if r.Prompter != nil {
			ok, err := r.Prompter.ConfirmOverwrite(dest)
			if err != nil {
				return "", fmt.Errorf("failed to confirm overwrite: %w", err)
			}
			overwrite = ok
		}
	default:
		return "", fmt.Errorf("unknown overwrite policy %q", r.Policy)
	}

	if overwrite {
		log.Overwriting(dest)
		return dest, nil
	}

	free, err := NextFreeName(dest)
	if err != nil {
		return "", err
	}
	log.DestinationRenamed(dest, free)
	return free, nil
}

// NextFreeName appends " (N)" before the extension, N = 1, 2, ..., and
// returns the first name that does not exist
func NextFreeName(path string) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for n := 1; n <= maxRenameAttempts; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if !Exists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %s", ErrNoFreeName, path)
}

// Exists reports whether path names an existing file or directory
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteAtomic writes data to a temporary file beside path and renames it
// into place, so readers never observe a partial file
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
