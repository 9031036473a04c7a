package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/colorsep/blobstore"
	"github.com/hupe1980/colorsep/blobstore/minio"
	"github.com/hupe1980/colorsep/blobstore/s3"
	"github.com/hupe1980/colorsep/internal/resource"
)

// openStore returns the store holding loc. Writes and reads through it are
// throttled by rc when rc has an IO limit.
func openStore(ctx context.Context, loc blobstore.Location, rc *resource.Controller) (blobstore.BlobStore, error) {
	var (
		store blobstore.BlobStore
		err   error
	)

	switch loc.Scheme {
	case blobstore.SchemeFile:
		store = blobstore.NewLocalStore(loc.Root)
	case blobstore.SchemeS3:
		store, err = s3.NewFromEnv(ctx, loc.Bucket, loc.Root)
	case blobstore.SchemeMinIO:
		store, err = minio.NewFromEnv(loc.Bucket, loc.Root)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", blobstore.ErrInvalidLocation, loc.Scheme)
	}
	if err != nil {
		return nil, err
	}

	if rc != nil {
		store = blobstore.NewThrottledStore(store, rc)
	}
	return store, nil
}
