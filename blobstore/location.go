package blobstore

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidLocation is returned for malformed location strings.
var ErrInvalidLocation = errors.New("blobstore: invalid location")

// Scheme identifies the backend of a Location.
type Scheme string

const (
	// SchemeFile is the local filesystem.
	SchemeFile Scheme = "file"
	// SchemeS3 is Amazon S3.
	SchemeS3 Scheme = "s3"
	// SchemeMinIO is a MinIO or other S3-compatible server.
	SchemeMinIO Scheme = "minio"
)

// Location is a parsed blob address: a store root plus a blob name.
type Location struct {
	Scheme Scheme
	// Bucket is empty for SchemeFile.
	Bucket string
	// Root is the directory (file) or key prefix (object stores) holding the blob.
	Root string
	// Name is the blob name relative to Root.
	Name string
}

// ParseLocation parses a local path or an s3:// or minio:// URL.
//
// For object stores the last path element is the blob name and the rest
// is the key prefix.
func ParseLocation(s string) (Location, error) {
	if s == "" {
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}

	scheme, rest, ok := strings.Cut(s, "://")
	if !ok {
		dir, name := filepath.Split(s)
		if name == "" {
			return Location{}, fmt.Errorf("%w: %q has no file name", ErrInvalidLocation, s)
		}
		if dir == "" {
			dir = "."
		}
		return Location{Scheme: SchemeFile, Root: filepath.Clean(dir), Name: name}, nil
	}

	switch Scheme(strings.ToLower(scheme)) {
	case SchemeFile:
		return ParseLocation(rest)
	case SchemeS3, SchemeMinIO:
	default:
		return Location{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocation, scheme)
	}

	u, err := url.Parse(strings.ToLower(scheme) + "://" + rest)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, fmt.Errorf("%w: %q needs a bucket and an object name", ErrInvalidLocation, s)
	}
	root, name := path.Split(key)
	return Location{
		Scheme: Scheme(u.Scheme),
		Bucket: u.Host,
		Root:   strings.TrimSuffix(root, "/"),
		Name:   name,
	}, nil
}

// String formats the location back into its address form.
func (l Location) String() string {
	if l.Scheme == SchemeFile || l.Scheme == "" {
		return filepath.Join(l.Root, l.Name)
	}
	return string(l.Scheme) + "://" + path.Join(l.Bucket, l.Root, l.Name)
}

// WithName returns a copy of l addressing another blob in the same root.
func (l Location) WithName(name string) Location {
	l.Name = name
	return l
}
