package propcat

import (
	"context"
	"io"
	"time"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBlobTimeout = 10 * time.Second

// BlobProvider serves catalog files from a gocloud.dev bucket, so catalogs can
// live in local directories (file://), memory (mem://) or object storage.
type BlobProvider struct {
	bucket  *blob.Bucket
	timeout time.Duration
}

// NewBlobProvider wraps an open bucket. The caller keeps ownership of it.
func NewBlobProvider(bucket *blob.Bucket) *BlobProvider {
	return &BlobProvider{bucket: bucket, timeout: defaultBlobTimeout}
}

// OpenBlobProvider opens the bucket at urlstr. The file:// and mem://
// schemes are always registered; other drivers must be imported by the
// caller. Close releases the bucket.
func OpenBlobProvider(ctx context.Context, urlstr string) (*BlobProvider, error) {
	bucket, err := blob.OpenBucket(ctx, urlstr)
	if err != nil {
		return nil, err
	}
	return NewBlobProvider(bucket), nil
}

// WithTimeout bounds every bucket call. Zero disables the bound.
func (p *BlobProvider) WithTimeout(timeout time.Duration) *BlobProvider {
	p.timeout = timeout
	return p
}

// Bucket returns the underlying bucket, e.g. to upload catalogs.
func (p *BlobProvider) Bucket() *blob.Bucket {
	return p.bucket
}

func (p *BlobProvider) Close() error {
	return p.bucket.Close()
}

func (p *BlobProvider) context() (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), p.timeout)
}

func (p *BlobProvider) HasResource(path string) bool {
	ctx, cancel := p.context()
	defer cancel()
	exists, err := p.bucket.Exists(ctx, path)
	return err == nil && exists
}

func (p *BlobProvider) Resource(path string) (Resource, error) {
	ctx, cancel := p.context()
	defer cancel()
	attrs, err := p.bucket.Attributes(ctx, path)
	if err != nil {
		return nil, err
	}
	return &blobResource{provider: p, key: path, modTime: attrs.ModTime}, nil
}

type blobResource struct {
	provider *BlobProvider
	key      string
	modTime  time.Time
}

func (r *blobResource) Name() string {
	return r.key
}

func (r *blobResource) ModTime() time.Time {
	return r.modTime
}

func (r *blobResource) Open() (io.ReadCloser, error) {
	ctx, cancel := r.provider.context()
	reader, err := r.provider.bucket.NewReader(ctx, r.key, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &cancelReader{ReadCloser: reader, cancel: cancel}, nil
}

// cancelReader releases the call context once the body is closed.
type cancelReader struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *cancelReader) Close() error {
	defer r.cancel()
	return r.ReadCloser.Close()
}
