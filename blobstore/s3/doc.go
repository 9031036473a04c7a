// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "luts/")
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart streaming uploads with CRC32C checksums
//   - Automatic pagination for listing
//   - Key prefix for sharing a bucket
package s3
