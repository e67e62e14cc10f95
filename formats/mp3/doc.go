// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files
// into a raw PCM byte stream together with a format.Capability
// describing it.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Stereo output (most MP3 files)
//
// # Decoding MP3 Files
//
// Use Open to read MP3 files:
//
//	file, _ := os.Open("audio.mp3")
//	stream, err := mp3.Open(file)
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
// MP3 decoder output:
//   - Sample format: S16LE (16-bit little-endian PCM)
//   - Channels: 2 (stereo)
//   - Sample rate: Depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// The capability can be handed straight to a parse.Parser so the stream
// is framed without any manual configuration.
package mp3
