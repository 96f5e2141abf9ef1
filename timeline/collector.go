// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"context"
	"time"
)

// DefaultCollectInterval is used by RunCollector for a non-positive interval.
const DefaultCollectInterval = 50 * time.Millisecond

// RunCollector calls h.Flush and h.Collect every interval until ctx is done.
// It is meant to run in its own goroutine.
func RunCollector(ctx context.Context, h *Handle, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.Collect()
			return
		case <-ticker.C:
			h.Flush()
			h.Collect()
		}
	}
}
