package hash

import (
	"hash"
	"hash/crc32"
	"io"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a new CRC32-Castagnoli hash.Hash32.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}

// SumWriter forwards writes and tracks their CRC32C and length.
type SumWriter struct {
	w     io.Writer
	h     hash.Hash32
	count int64
}

// NewSumWriter wraps w.
func NewSumWriter(w io.Writer) *SumWriter {
	return &SumWriter{w: w, h: NewCRC32C()}
}

func (s *SumWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	_, _ = s.h.Write(p[:n])
	s.count += int64(n)
	return n, err
}

// Sum32 returns the checksum of the bytes written so far.
func (s *SumWriter) Sum32() uint32 { return s.h.Sum32() }

// Count returns the number of bytes written so far.
func (s *SumWriter) Count() int64 { return s.count }
