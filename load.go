// SPDX-License-Identifier: EPL-2.0

package cliptrack

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/cliptrack/audio"
	"github.com/ik5/cliptrack/formats/aiff"
	"github.com/ik5/cliptrack/formats/flac"
	"github.com/ik5/cliptrack/formats/mp3"
	"github.com/ik5/cliptrack/formats/vorbis"
	"github.com/ik5/cliptrack/formats/wav"
	"github.com/ik5/cliptrack/pcm"
)

// DefaultRegistry returns a registry holding every bundled decoder, keyed by
// the file extensions they are usually found under.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

// LoadSource drains src into an immutable PCM buffer suitable for a clip
// placement and closes it.
//
// Mono and stereo sources keep their layout. Wider layouts are folded to
// stereo by audio.StereoMixer, even channels to the left and odd channels
// to the right.
func LoadSource(src audio.Source) (*pcm.Buffer, error) {
	defer src.Close()

	channels := src.Channels()
	if channels > 2 {
		src = audio.NewStereoMixer(src)
		channels = 2
	}

	data, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	if channels <= 0 || len(data) < channels {
		return nil, ErrEmptySource
	}
	data = data[:len(data)-len(data)%channels]

	buf, err := pcm.FromInterleaved(src.SampleRate(), channels, data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}

// Load decodes r with dec and returns the whole stream as a PCM buffer.
func Load(dec audio.Decoder, r io.Reader) (*pcm.Buffer, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return LoadSource(src)
}

// LoadFile opens path and decodes it with the decoder registered for its
// extension.
//
// Example:
//
//	buf, err := cliptrack.LoadFile(cliptrack.DefaultRegistry(), "kick.wav")
//	if err != nil {
//	    return err
//	}
//	h.Add(timeline.Placement{Start: 4, Length: 1, PCM: buf}, tm)
func LoadFile(reg *audio.Registry, path string) (*pcm.Buffer, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	buf, err := Load(dec, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	slog.Debug("loaded clip audio",
		slog.String("path", path),
		slog.Int("rate", buf.SampleRate()),
		slog.Int("channels", buf.Channels()),
		slog.Int("frames", buf.Len()),
	)

	return buf, nil
}
