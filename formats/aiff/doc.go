// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files and
// exposes their PCM payload as a raw big-endian byte stream together
// with a format.Capability describing it.  The capability can be handed
// straight to a parse.Parser.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF (Audio Interchange File Format)
//   - PCM at 8, 16, 24 and 32 bits
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use Open to read AIFF files:
//
//	file, _ := os.Open("audio.aif")
//	stream, err := aiff.Open(file)
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
// AIFF stores samples signed and big endian, so the capability carries
// one of S8, S16BE, S24BE or S32BE depending on the file's bit depth.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The bit depth has no raw sample format
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Originated on Apple platforms (WAV on Windows)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// # File Extensions
//
// AIFF files typically use:
//   - .aif or .aiff for standard AIFF
//   - .aifc for AIFF-C (compressed, not supported)
package aiff
