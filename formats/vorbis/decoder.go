package vorbis

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audparse/format"
	"github.com/ik5/audparse/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Stream yields the decoded PCM bytes of an Ogg Vorbis file together
// with the capability they negotiate.  Vorbis decodes to float values,
// which the stream converts to S16LE on the way out.
type Stream struct {
	dec        oggReader
	capability format.Capability
	floatBuf   []float32
}

// Capability describes the raw bytes this stream yields.
func (s *Stream) Capability() format.Capability { return s.capability }

// Read fills p with interleaved S16LE bytes converted from the decoded
// float samples. len(p) must hold at least one sample.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	values := len(p) / 2
	if values == 0 {
		return 0, io.ErrShortBuffer
	}

	if cap(s.floatBuf) < values {
		s.floatBuf = make([]float32, values)
	}
	s.floatBuf = s.floatBuf[:values]

	// oggvorbis.Reader.Read returns the number of float32 values read,
	// interleaved across channels
	n, err := s.dec.Read(s.floatBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		v := utils.Float32ToInt16(s.floatBuf[i])
		binary.LittleEndian.PutUint16(p[i*2:], uint16(v))
	}

	if err != nil && err != io.EOF {
		return n * 2, fmt.Errorf("%w", err)
	}
	return n * 2, nil
}

// Open reads the Ogg Vorbis headers of r and returns a Stream of its
// decoded PCM data.
func Open(r io.Reader) (*Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Stream{
		dec: dec,
		capability: format.RawCapability(
			format.S16LE, dec.SampleRate(), dec.Channels(), nil),
	}, nil
}
