package blobstore

import (
	"context"
	"io"

	"github.com/hupe1980/colorsep/internal/resource"
)

// ThrottledStore limits the write and read bandwidth of another store.
type ThrottledStore struct {
	BlobStore
	rc *resource.Controller
}

// NewThrottledStore wraps s. A nil controller disables throttling.
func NewThrottledStore(s BlobStore, rc *resource.Controller) BlobStore {
	if rc == nil {
		return s
	}
	return &ThrottledStore{BlobStore: s, rc: rc}
}

// Create returns a writer whose writes wait for IO budget.
func (s *ThrottledStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	w, err := s.BlobStore.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledWritableBlob{
		RateLimitedWriter: resource.NewRateLimitedWriter(ctx, w, s.rc),
		wb:                w,
	}, nil
}

// Put writes data after acquiring IO budget for it.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.rc.AcquireIO(ctx, len(data)); err != nil {
		return err
	}
	return s.BlobStore.Put(ctx, name, data)
}

// Open returns a blob whose range readers are throttled.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.BlobStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{Blob: b, rc: s.rc}, nil
}

type throttledWritableBlob struct {
	*resource.RateLimitedWriter
	wb WritableBlob
}

func (w *throttledWritableBlob) Sync() error { return w.wb.Sync() }

type throttledBlob struct {
	Blob
	rc *resource.Controller
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	n, err := b.Blob.ReadAt(ctx, p, off)
	if n > 0 {
		if werr := b.rc.AcquireIO(ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (b *throttledBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	rc, err := b.Blob.ReadRange(ctx, off, length)
	if err != nil {
		return nil, err
	}
	return struct {
		io.Reader
		io.Closer
	}{resource.NewRateLimitedReader(ctx, rc, b.rc), rc}, nil
}
