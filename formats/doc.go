// SPDX-License-Identifier: EPL-2.0

// Package formats ties container and codec readers to the parser as
// upstream producers.
//
// Each sub-package opens one input kind and returns a Stream: raw audio
// bytes plus the format.Capability describing them, ready to feed a
// parse.Parser through its negotiation path:
//   - formats/wav: RIFF/WAVE PCM via github.com/go-audio/wav
//   - formats/aiff: AIFF PCM (big-endian) via github.com/go-audio/aiff
//   - formats/mp3: MPEG audio via github.com/hajimehoshi/go-mp3
//   - formats/vorbis: Ogg Vorbis via github.com/jfreymuth/oggvorbis
//
// The Registry in this package allows key-based dispatch:
//
//	reg := formats.NewRegistry()
//	reg.Register("wav", func(r io.Reader) (formats.Stream, error) {
//	    return wav.Open(r)
//	})
//	stream, ok, err := reg.Open("wav", file)
package formats
