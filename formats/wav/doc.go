// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package reads WAV files through github.com/go-audio/wav and exposes
// their PCM payload as a raw byte stream, together with a format.Capability
// describing it.  The capability can be handed straight to a parse.Parser
// so the stream is framed and reordered without any manual configuration.
//
// # Supported Formats
//
// Decoding supports uncompressed PCM at the common bit depths:
//   - 8-bit (unsigned), 16-bit, 24-bit and 32-bit
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
// Use Open to read WAV files:
//
//	file, _ := os.Open("audio.wav")
//	stream, err := wav.Open(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	cap := stream.Capability()
//	buf := make([]byte, 4096)
//	n, err := stream.Read(buf)
//
// Read yields interleaved little-endian PCM bytes at the source bit depth.
// When the input is not an io.ReadSeeker the stream buffers it in memory,
// a requirement of go-audio.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 1, samples)
//
// The function writes a complete WAV file with proper headers.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrNotPCM: The file holds compressed audio
//   - ErrUnsupportedBitDepth: The bit depth has no raw sample format
package wav
