// Package storage keeps donation images in a gocloud.dev blob bucket. The bucket URL selects the
// backend: file:// for a single host, s3:// or gs:// in the cloud, mem:// in tests.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"foodbridge/config"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
	now          func() time.Time
}

// Params holds dependencies for the image storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Upload
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("upload bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image storage ready", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicPrefix), nil
}

// NewBlobStorage wraps an opened bucket. publicPrefix is the URL path images are served under.
func NewBlobStorage(bucket *blob.Bucket, publicPrefix string) service.ImageStorage {
	return &blobStorage{
		bucket:       bucket,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
		now:          time.Now,
	}
}

// Save writes the content under donations/<yyyy>/<mm>/<uuid>.<ext>.
// An empty contentType lets the bucket sniff it from the first bytes.
func (s *blobStorage) Save(ctx context.Context, ext, contentType string, content io.Reader) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	key := path.Join("donations", s.now().UTC().Format("2006/01"), uuid.NewString()+"."+ext)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}
	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to flush image")
	}

	return key, nil
}

// Open streams a stored image. The caller closes Body.
func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	if !validKey(key) {
		return nil, domainerrors.ErrObjectNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrObjectNotFound
		}

		return nil, errors.Wrap(err, "failed to open image")
	}

	return &service.StoredObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// Delete removes an image; deleting a missing key succeeds.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

// PublicURL returns the path the API serves the image under.
func (s *blobStorage) PublicURL(key string) string {
	return s.publicPrefix + "/" + key
}

// validKey rejects traversal and absolute keys taken from request paths.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}

	return path.Clean(key) == key && !strings.Contains(key, "..")
}
