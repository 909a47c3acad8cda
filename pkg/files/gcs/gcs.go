// Package gcs stores files in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"registry/pkg/files"
	"registry/pkg/logger"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type Options struct {
	Bucket string
	// CredentialsFile is a service account JSON key. Application default
	// credentials are used when empty.
	CredentialsFile string
	// Prefix is prepended to every object name.
	Prefix string
}

type GCS struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

var _ files.Storage = (*GCS)(nil)

func New(ctx context.Context, options Options, clientOpts ...option.ClientOption) (*GCS, error) {
	if options.Bucket == "" {
		return nil, errors.New("gcs bucket is empty")
	}
	if options.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(options.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not create gcs client: %w", err)
	}

	return &GCS{
		client: client,
		bucket: client.Bucket(options.Bucket),
		prefix: options.Prefix,
	}, nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}

func (g *GCS) object(p string) (*storage.ObjectHandle, error) {
	cleaned, err := files.CleanPath(p)
	if err != nil {
		return nil, err
	}

	return g.bucket.Object(g.prefix + cleaned), nil
}

func (g *GCS) Save(ctx context.Context, kind files.Kind, entityID int64, filename string, data []byte) (string, error) {
	rel := files.NewPath(kind, entityID, filename)
	obj, err := g.object(rel)
	if err != nil {
		return "", err
	}

	// paths are unique, refuse to overwrite anything
	w := obj.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = http.DetectContentType(data)
	w.ChunkSize = 0
	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return "", fmt.Errorf("could not upload %s: %w", rel, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("could not finalize upload of %s: %w", rel, err)
	}

	logger.Get(ctx).Debug("uploaded file", zap.String("path", rel), zap.Int("size", len(data)))

	return rel, nil
}

func (g *GCS) Read(ctx context.Context, p string) ([]byte, error) {
	obj, err := g.object(p)
	if err != nil {
		return nil, err
	}

	r, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", p, err)
	}
	defer func() {
		_ = r.Close()
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", p, err)
	}

	return data, nil
}

func (g *GCS) Delete(ctx context.Context, p string) (bool, error) {
	obj, err := g.object(p)
	if err != nil {
		return false, err
	}

	if err := obj.Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("could not delete %s: %w", p, err)
	}

	logger.Get(ctx).Debug("deleted file", zap.String("path", p))

	return true, nil
}

func (g *GCS) Exists(ctx context.Context, p string) (bool, error) {
	obj, err := g.object(p)
	if err != nil {
		return false, err
	}

	if _, err := obj.Attrs(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("could not stat %s: %w", p, err)
	}

	return true, nil
}
