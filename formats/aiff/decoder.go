// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audparse/format"
)

// aiffReader is an interface for goaiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Stream yields the raw big-endian PCM bytes of an AIFF file together
// with the capability they negotiate.  AIFF stores samples signed and
// big endian, so the capability carries the S8/S16BE/S24BE/S32BE
// formats.
type Stream struct {
	dec        aiffReader
	capability format.Capability
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

// Capability describes the raw bytes this stream yields.
func (s *Stream) Capability() format.Capability { return s.capability }

// Read fills p with interleaved big-endian PCM bytes at the source bit
// depth. len(p) must hold at least one sample.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	sampleBytes := s.bitDepth / 8
	samples := len(p) / sampleBytes
	if samples == 0 {
		return 0, io.ErrShortBuffer
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < samples {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, samples),
			SourceBitDepth: s.bitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:samples]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		v := s.intBuf.Data[i]
		switch s.bitDepth {
		case 8:
			p[i] = byte(int8(v))
		case 16:
			binary.BigEndian.PutUint16(p[i*2:], uint16(int16(v)))
		case 24:
			p[i*3] = byte(v >> 16)
			p[i*3+1] = byte(v >> 8)
			p[i*3+2] = byte(v)
		case 32:
			binary.BigEndian.PutUint32(p[i*4:], uint32(int32(v)))
		}
	}

	if err != nil && err != io.EOF {
		return n * sampleBytes, fmt.Errorf("%w", err)
	}
	return n * sampleBytes, nil
}

func sampleFormatFor(bitDepth int) format.SampleFormat {
	switch bitDepth {
	case 8:
		return format.S8
	case 16:
		return format.S16BE
	case 24:
		return format.S24BE
	case 32:
		return format.S32BE
	default:
		return format.Unknown
	}
}

// Open reads the AIFF headers of r and returns a Stream of its PCM data.
// When r is not an io.ReadSeeker the whole input is buffered in memory
// first, a requirement of go-audio.
func Open(r io.Reader) (*Stream, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	sf := sampleFormatFor(int(dec.BitDepth))
	if sf == format.Unknown {
		return nil, ErrUnsupportedBitDepth
	}

	if dec.SampleRate <= 0 || dec.NumChans == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &Stream{
		dec:      dec,
		bitDepth: int(dec.BitDepth),
		capability: format.RawCapability(
			sf, int(dec.SampleRate), int(dec.NumChans), nil),
	}, nil
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
