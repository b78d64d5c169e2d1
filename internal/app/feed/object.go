package feed

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
)

// ObjectConfig locates a feed object in S3-compatible storage.
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Key       string
	UseSSL    bool
}

// ObjectSource reads a text feed from MinIO or any S3-compatible store.
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
}

func NewObjectSource(config ObjectConfig) (*ObjectSource, error) {
	if config.Endpoint == "" {
		return nil, errors.InvalidField("object endpoint", "empty")
	}
	if config.Bucket == "" || config.Key == "" {
		return nil, errors.InvalidField("object location", "bucket and key are required")
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFeedSource, "create MinIO client: %v", err)
	}

	return &ObjectSource{client: client, bucket: config.Bucket, key: config.Key}, nil
}

// Open returns a reader over the feed object.
func (o *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := o.client.GetObject(ctx, o.bucket, o.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFeedSource, "get s3://%s/%s: %v", o.bucket, o.key, err)
	}
	return obj, nil
}

// Load reads the object and parses it like a local feed file.
func (o *ObjectSource) Load(ctx context.Context, rows, cols int, opts LoadOptions) (*grid.Grid, Stats, error) {
	body, err := o.Open(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	defer body.Close()

	return Load(body, rows, cols, opts)
}

// ParseObjectURL splits "s3://bucket/path/to/key" into bucket and key.
func ParseObjectURL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", errors.InvalidField("object url", err.Error())
	}
	if u.Scheme != "s3" {
		return "", "", errors.InvalidField("object url", "scheme must be s3")
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", errors.InvalidField("object url", "bucket and key are required")
	}
	return bucket, key, nil
}

// IsObjectURL reports whether a feed location points at object storage.
func IsObjectURL(location string) bool {
	return strings.HasPrefix(location, "s3://")
}
