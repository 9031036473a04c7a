// Package blobstore abstracts where colorsep reads profiles and reference
// LUTs from and where it writes generated LUTs to.
//
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, mmap-backed reads, atomic writes
//   - MemoryStore: in-memory, for tests
//   - ThrottledStore: wraps another store with an IO rate limit
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible servers
//
// Destinations are addressed by location strings, parsed by ParseLocation:
//
//	out/rebeccapurple          local path
//	s3://bucket/luts/purple    Amazon S3
//	minio://bucket/luts/purple MinIO (endpoint from the environment)
package blobstore
