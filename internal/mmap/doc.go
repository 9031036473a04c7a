// Package mmap maps files read-only into memory.
//
// The local blob store reads LUT files through a Mapping so that comparing
// large tables does not copy them through a read buffer first.
//
//	m, err := mmap.Open("film.cube")
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Advise(mmap.AccessSequential)
//	lut.Decode(m.NewReader())
//
// Unix systems use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile and ignores access hints.
//
// A Mapping is safe for concurrent reads. Close is idempotent; no slice
// obtained from Bytes may be used after it.
package mmap
