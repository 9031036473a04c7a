// Package resource enforces the optional limits of a separation run.
//
// A Controller tracks two resources:
//
//   - Memory: candidate sets and indexes reserve their estimated size before
//     they are built. Reservations fail fast with ErrMemoryLimitExceeded
//     instead of blocking, so an oversized target is reported as a
//     configuration problem before any work is done.
//   - IO: a token bucket throttles output uploads. RateLimitedWriter and
//     RateLimitedReader wrap streams with it.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   4 << 30,
//	    IOLimitBytesPerSec: 50 << 20,
//	})
//
//	if err := rc.AcquireMemory(estimate); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(estimate)
//
// All methods are safe for concurrent use and treat a nil Controller as
// unlimited.
package resource
