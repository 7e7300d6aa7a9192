package gcs

import (
	"context"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/safework-lab/jhaboard/pkg/domain/interfaces"
	"google.golang.org/api/option"
)

// Source reads the workbook from a Cloud Storage object
type Source struct {
	client *storage.Client
	bucket string
	object string
	url    string
}

var _ interfaces.WorkbookSource = &Source{}

// New creates a workbook source for a gs://bucket/object URL
func New(ctx context.Context, url string, opts ...option.ClientOption) (*Source, error) {
	bucket, object, err := parseURL(url)
	if err != nil {
		return nil, err
	}

	opts = append([]option.ClientOption{option.WithScopes(storage.ScopeReadOnly)}, opts...)
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &Source{
		client: client,
		bucket: bucket,
		object: object,
		url:    url,
	}, nil
}

func parseURL(url string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(url, "gs://")
	if !ok {
		return "", "", goerr.New("workbook URL must start with gs://", goerr.V("url", url))
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", goerr.New("workbook URL must be gs://bucket/object", goerr.V("url", url))
	}
	return bucket, object, nil
}

// Open opens a reader for the object
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	rc, err := s.client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open object",
			goerr.V("bucket", s.bucket), goerr.V("object", s.object))
	}
	return rc, nil
}

// ModTime returns the object update time
func (s *Source) ModTime(ctx context.Context) (time.Time, error) {
	attrs, err := s.client.Bucket(s.bucket).Object(s.object).Attrs(ctx)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to read object attrs",
			goerr.V("bucket", s.bucket), goerr.V("object", s.object))
	}
	return attrs.Updated, nil
}

// Close releases the storage client
func (s *Source) Close() error {
	return s.client.Close()
}

// String returns the gs:// URL
func (s *Source) String() string {
	return s.url
}
