// Package files defines the file-storage port used to persist profile photos.
//
//go:generate mockgen -package mockfiles -source=interface.go -destination=mock/mockfiles.go *
package files

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Kind groups stored files by the entity type owning them.
type Kind string

const (
	KindPerfil Kind = "perfil"
)

// ErrInvalidPath is returned when a path escapes the storage root or is empty.
var ErrInvalidPath = errors.New("invalid file path")

// Storage persists opaque file contents under relative paths.
type Storage interface {
	// Save writes data and returns the relative path it was stored under.
	Save(ctx context.Context, kind Kind, entityID int64, filename string, data []byte) (string, error)
	// Read returns the contents stored at p.
	Read(ctx context.Context, p string) ([]byte, error)
	// Delete removes p and reports whether it existed.
	Delete(ctx context.Context, p string) (bool, error)
	// Exists reports whether p is present.
	Exists(ctx context.Context, p string) (bool, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename keeps the base name of filename with every character
// outside [a-zA-Z0-9._-] replaced by an underscore.
func SanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "_.")
	if base == "" {
		return "file"
	}

	return base
}

// NewPath builds a unique relative path <kind>/<entityID>/<uuid>-<filename>.
func NewPath(kind Kind, entityID int64, filename string) string {
	return fmt.Sprintf("%s/%d/%s-%s", kind, entityID, uuid.NewString(), SanitizeFilename(filename))
}

// CleanPath validates a relative path returned by Save.
func CleanPath(p string) (string, error) {
	cleaned := path.Clean(strings.TrimSpace(p))
	if cleaned == "." || cleaned == "" || strings.HasPrefix(cleaned, "/") || cleaned == ".." ||
		strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}

	return cleaned, nil
}
