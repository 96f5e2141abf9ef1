// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/cliptrack/audio"
	"github.com/ik5/cliptrack/internal/audiotest"
)

// Example_stereoMixer shows a mono source being widened to stereo.
func Example_stereoMixer() {
	source := audiotest.NewConstantSource(16000, 1, 16000, 0.5) // 1 second mono

	stereo := audio.NewStereoMixer(source)

	samples, err := audio.ReadAll(stereo, 4096)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Channels: %d\n", stereo.Channels())
	fmt.Printf("Frames: %d\n", len(samples)/2)
	fmt.Printf("First frame: %.1f %.1f\n", samples[0], samples[1])
	// Output:
	// Channels: 2
	// Frames: 16000
	// First frame: 0.5 0.5
}

type nullDecoder struct{}

func (nullDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(8000, 1, 8), nil
}

// Example_registry shows extension based decoder lookup.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", nullDecoder{})

	_, ok := registry.Get(".WAV")
	fmt.Println("found .WAV:", ok)

	_, ok = registry.Get("mp3")
	fmt.Println("found mp3:", ok)
	// Output:
	// found .WAV: true
	// found mp3: false
}
