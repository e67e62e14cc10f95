// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"io"
	"math"
)

// PCMSource is a test helper that generates an interleaved S16LE byte
// stream. It implements io.Reader (without importing the parse package to
// avoid cycles).
type PCMSource struct {
	sampleRate  int
	channels    int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	partial     []byte
	waveform    func(frame int, channel int) int16
}

// NewPCMSource creates a new mock byte stream. totalFrames is the number
// of frames (one sample per channel) to generate. waveform produces the
// sample value for a given frame index and channel.
func NewPCMSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int16) *PCMSource {
	return &PCMSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock stream of silence (all zero samples).
func NewSilentSource(sampleRate, channels, totalFrames int) *PCMSource {
	return NewPCMSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return 0
	})
}

// NewSineSource creates a mock stream carrying a sine wave on every
// channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *PCMSource {
	return NewPCMSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(math.Sin(2*math.Pi*frequency*t) * 32767.0)
	})
}

// NewRampSource creates a mock stream where the sample value encodes the
// frame and channel it belongs to, which makes misplaced bytes obvious in
// test failures.
func NewRampSource(sampleRate, channels, totalFrames int) *PCMSource {
	return NewPCMSource(sampleRate, channels, totalFrames, func(frame int, channel int) int16 {
		return int16(frame*channels + channel)
	})
}

func (m *PCMSource) SampleRate() int { return m.sampleRate }
func (m *PCMSource) Channels() int   { return m.channels }

// Reset rewinds the stream so it can be read again.
func (m *PCMSource) Reset() {
	m.generated = 0
	m.partial = nil
}

// Read fills p with as many S16LE bytes as fit. Reads need not be frame
// aligned; a partially emitted frame continues on the next call.
func (m *PCMSource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	written := 0

	// Flush leftover bytes of a frame split by the previous call.
	if len(m.partial) > 0 {
		n := copy(p, m.partial)
		m.partial = m.partial[n:]
		written += n
	}

	for written < len(p) {
		if m.generated >= m.totalFrames {
			if written == 0 {
				return 0, io.EOF
			}
			return written, nil
		}

		frame := make([]byte, m.channels*2)
		for ch := 0; ch < m.channels; ch++ {
			v := m.waveform(m.generated, ch)
			binary.LittleEndian.PutUint16(frame[ch*2:], uint16(v))
		}
		m.generated++

		n := copy(p[written:], frame)
		written += n
		if n < len(frame) {
			m.partial = frame[n:]
		}
	}

	return written, nil
}

// Bytes generates the whole remaining stream at once.
func (m *PCMSource) Bytes() []byte {
	remaining := (m.totalFrames - m.generated) * m.channels * 2
	data := make([]byte, remaining)
	n, _ := io.ReadFull(m, data)
	return data[:n]
}

// S16LEBytes packs samples as little-endian 16-bit PCM.
func S16LEBytes(samples ...int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}

// ChunkedReader wraps a reader and serves reads in preset chunk sizes,
// cycling through sizes. It simulates a source that delivers data in
// arbitrary, frame-misaligned pieces.
type ChunkedReader struct {
	r     io.Reader
	sizes []int
	next  int
}

// NewChunkedReader creates a ChunkedReader. sizes must not be empty and
// every size must be positive.
func NewChunkedReader(r io.Reader, sizes ...int) *ChunkedReader {
	if len(sizes) == 0 {
		panic("audiotest: ChunkedReader needs at least one chunk size")
	}
	for _, s := range sizes {
		if s <= 0 {
			panic("audiotest: chunk sizes must be positive")
		}
	}
	return &ChunkedReader{r: r, sizes: sizes}
}

func (c *ChunkedReader) Read(p []byte) (int, error) {
	limit := c.sizes[c.next%len(c.sizes)]
	c.next++
	if limit > len(p) {
		limit = len(p)
	}
	return c.r.Read(p[:limit])
}
