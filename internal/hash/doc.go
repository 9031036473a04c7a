// Package hash provides CRC32-Castagnoli checksums for written outputs.
//
// CRC32C is hardware accelerated on x86 (SSE4.2) and ARM and is the
// checksum S3 accepts for upload validation.
//
// For one-shot checksums:
//
//	sum := hash.CRC32C(data)
//
// For streamed outputs:
//
//	sw := hash.NewSumWriter(w)
//	_, _ = io.Copy(sw, r)
//	sum, n := sw.Sum32(), sw.Count()
package hash
