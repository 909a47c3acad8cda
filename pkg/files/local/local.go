// Package local stores files on the local filesystem below a root directory.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"registry/pkg/files"
	"registry/pkg/logger"

	"go.uber.org/zap"
)

const (
	dirPerm  = 0o750
	filePerm = 0o640
)

type Local struct {
	root string
}

var _ files.Storage = (*Local)(nil)

// New creates the root directory if needed.
func New(root string) (*Local, error) {
	if root == "" {
		return nil, errors.New("local file storage root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("could not resolve file storage root: %w", err)
	}
	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return nil, fmt.Errorf("could not create file storage root: %w", err)
	}

	return &Local{root: abs}, nil
}

func (l *Local) resolve(p string) (string, error) {
	cleaned, err := files.CleanPath(p)
	if err != nil {
		return "", err
	}

	return filepath.Join(l.root, filepath.FromSlash(cleaned)), nil
}

func (l *Local) Save(ctx context.Context, kind files.Kind, entityID int64, filename string, data []byte) (string, error) {
	rel := files.NewPath(kind, entityID, filename)
	full, err := l.resolve(rel)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return "", fmt.Errorf("could not create directory for %s: %w", rel, err)
	}

	// write to a temp file first so readers never observe a partial file
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("could not create temp file for %s: %w", rel, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return "", fmt.Errorf("could not write %s: %w", rel, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()

		return "", fmt.Errorf("could not chmod %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("could not close %s: %w", rel, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return "", fmt.Errorf("could not move %s into place: %w", rel, err)
	}

	logger.Get(ctx).Debug("stored file", zap.String("path", rel), zap.Int("size", len(data)))

	return rel, nil
}

func (l *Local) Read(_ context.Context, p string) ([]byte, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", p, err)
	}

	return data, nil
}

func (l *Local) Delete(ctx context.Context, p string) (bool, error) {
	full, err := l.resolve(p)
	if err != nil {
		return false, err
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("could not delete %s: %w", p, err)
	}

	logger.Get(ctx).Debug("deleted file", zap.String("path", p))

	return true, nil
}

func (l *Local) Exists(_ context.Context, p string) (bool, error) {
	full, err := l.resolve(p)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("could not stat %s: %w", p, err)
	}

	return info.Mode().IsRegular(), nil
}
