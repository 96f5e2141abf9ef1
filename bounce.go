// SPDX-License-Identifier: EPL-2.0

package cliptrack

import (
	"context"
	"fmt"

	"github.com/ik5/cliptrack/timeline"
	"github.com/ik5/cliptrack/transport"
	"github.com/ik5/cliptrack/utils"
)

// BlockWriter consumes rendered blocks of interleaved stereo samples.
// *wav.Writer satisfies it.
type BlockWriter interface {
	Write(samples []float32) error
}

// Bounce renders frames frames offline. Each block is described by tr,
// mixed by e and written to w as interleaved stereo. The transport decides
// where playback starts and whether it loops, exactly as it would for a
// live callback.
//
// Bounce drives e from the calling goroutine, so nothing else may call
// e.Process while it runs.
func Bounce(ctx context.Context, e *timeline.Engine, tr *transport.Transport, frames int64, blockSize int, w BlockWriter) error {
	if blockSize <= 0 || blockSize > e.MaxFrames() {
		return fmt.Errorf("%d frames: %w", blockSize, ErrInvalidBlockSize)
	}

	left := make([]float32, blockSize)
	right := make([]float32, blockSize)
	inter := make([]float32, 2*blockSize)

	for done := int64(0); done < frames; {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("bounce stopped at frame %d: %w", done, err)
		}

		info := tr.Next(int(min(int64(blockSize), frames-done)))
		n := info.Frames
		if n <= 0 {
			return fmt.Errorf("transport returned an empty block: %w", ErrInvalidBlockSize)
		}

		e.Process(info, left[:n], right[:n])

		inter = utils.Interleave(inter, left[:n], right[:n])
		if err := w.Write(inter); err != nil {
			return fmt.Errorf("writing block at frame %d: %w", done, err)
		}

		done += int64(n)
	}

	return nil
}
