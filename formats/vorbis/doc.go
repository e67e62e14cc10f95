// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files into a raw PCM byte stream together with a format.Capability
// describing it.  Vorbis is a free, open-source lossy audio compression
// format.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg files)
//   - Variable bitrates
//   - Mono and stereo
//   - Various sample rates
//
// # Decoding Vorbis Files
//
// Use Open to read Ogg Vorbis files:
//
//	file, _ := os.Open("audio.ogg")
//	stream, err := vorbis.Open(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	cap := stream.Capability()
//	buf := make([]byte, 4096)
//	n, err := stream.Read(buf)
//
// # Output Format
//
// Vorbis decodes to float values.  The stream converts them to 16-bit
// little-endian PCM on the way out, so the capability always carries
// the S16LE sample format with the file's channel count and sample
// rate.
//
// # Channel Layout
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
package vorbis
