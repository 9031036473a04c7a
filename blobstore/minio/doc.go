// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible servers (Ceph, Garage,
// SeaweedFS) without pulling in the AWS SDK configuration chain.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	store := minioblob.NewStore(client, "my-bucket", "luts/")
//
// NewFromEnv reads the endpoint and credentials from MINIO_ENDPOINT,
// MINIO_ACCESS_KEY, MINIO_SECRET_KEY and MINIO_SECURE.
package minio
