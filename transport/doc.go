// SPDX-License-Identifier: EPL-2.0

// Package transport keeps a playhead and produces the per-block
// timeline.ProcInfo a host hands to timeline.Engine.Process, including the
// start/stop ramp and the loop-jump crossfade envelopes.
//
//	tr, _ := transport.New(48000, 512, transport.DefaultDeclick)
//	tr.Play()
//	for {
//		info := tr.Next(512)
//		engine.Process(info, left, right)
//	}
package transport
