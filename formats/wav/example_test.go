// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ik5/cliptrack/formats/wav"
)

func Example_roundTrip() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := wav.WriteWAV16(f, 8000, 1, []int16{-1000, -500, 0, 500, 1000}); err != nil {
		fmt.Println(err)
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fmt.Println(err)
		return
	}

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]float32, 8)
	n, _ := src.ReadSamples(buf)

	recovered := make([]int16, n)
	for i := range n {
		recovered[i] = int16(buf[i] * 32768)
	}

	fmt.Println(src.SampleRate(), src.Channels())
	fmt.Println(recovered)
	// Output:
	// 8000 1
	// [-1000 -500 0 500 1000]
}

func ExampleWriter() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	w, err := wav.NewWriter(f, 48000, 2, 24)
	if err != nil {
		fmt.Println(err)
		return
	}

	block := make([]float32, 2*512)
	for range 4 {
		if err := w.Write(block); err != nil {
			fmt.Println(err)
			return
		}
	}
	if err := w.Close(); err != nil {
		fmt.Println(err)
		return
	}

	info, _ := f.Stat()
	fmt.Println("frames:", w.Frames())
	fmt.Println("bytes:", info.Size())
	// Output:
	// frames: 2048
	// bytes: 12332
}

func ExampleDecoder_Decode_notWAV() {
	_, err := wav.Decoder{}.Decode(strings.NewReader("This is not a WAV file"))
	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	// Output: true
}
