// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audparse/format"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Stream yields the decoded PCM bytes of an MP3 file together with the
// capability they negotiate.  go-mp3 always emits 16-bit little-endian
// stereo, so the capability is fixed to S16LE with two channels.
type Stream struct {
	dec        mp3Reader
	capability format.Capability
}

// Capability describes the raw bytes this stream yields.
func (s *Stream) Capability() format.Capability { return s.capability }

// Read fills p with interleaved S16LE stereo bytes.
func (s *Stream) Read(p []byte) (int, error) {
	return s.dec.Read(p)
}

// Open reads the MP3 headers of r and returns a Stream of its decoded
// PCM data.
func Open(r io.Reader) (*Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-mp3 outputs stereo (2 channels) for most MP3 files
	return &Stream{
		dec: dec,
		capability: format.RawCapability(
			format.S16LE, dec.SampleRate(), 2, nil),
	}, nil
}
