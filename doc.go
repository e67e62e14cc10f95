// SPDX-License-Identifier: EPL-2.0

// Package audparse turns unbounded raw audio byte streams into aligned
// frames.
//
// Raw audio arrives as arbitrary chunks of bytes: PCM at various sample
// formats, or A-law / mu-law companded telephony audio. This package and
// its subpackages describe such streams, negotiate their properties, and
// cut them into whole frames where one frame holds exactly one sample per
// channel.
//
// # Package Layout
//
//   - parse: the core parser. Dual configuration (caller properties or a
//     negotiated capability), frame arithmetic, channel reordering, and a
//     byte-accumulating engine with offsets and timestamps.
//   - format: value types shared by everything else. Sample formats,
//     encodings, channel positions and masks, and the Capability
//     descriptor used for negotiation.
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: file and
//     codec front ends. Each opens its container via its library and
//     yields raw bytes plus the Capability describing them.
//   - utils: small arithmetic helpers.
//
// # Quick Start
//
// The simplest way to frame a file is AlignStream:
//
//	// Open an audio file
//	file, _ := os.Open("audio.wav")
//	stream, _ := wav.Open(file)
//
//	// Cut its PCM payload into aligned frames
//	frames, _ := audparse.AlignStream(stream.Capability(), stream, 4096)
//
//	// Each frame holds whole samples for every channel
//	for _, f := range frames {
//	    fmt.Println(f.NumFrames, f.Timestamp)
//	}
//
// # Driving the Parser Directly
//
// For chunked or live input, use a parse.Parser:
//
//	parser := parse.NewParser()
//	parser.SetSampleRate(8000)
//	parser.SetNumChannels(1)
//
//	for chunk := range input {
//	    frame, ok, err := parser.Push(chunk)
//	    if err != nil {
//	        // Handle error
//	    }
//	    if ok {
//	        // frame.Data holds whole frames, frame.Timestamp is set
//	    }
//	}
//
// Leftover bytes that do not fill a whole frame are retained and joined
// with the next chunk, so no data is lost across chunk boundaries.
//
// # Capabilities
//
// A format.Capability describes a raw stream the way a peer would
// advertise it: media type, sample format, rate, channel count and
// channel mask. parse.ConfigFromCapability and
// parse.CapabilityFromConfig convert between capabilities and parser
// configurations, including fallback channel masks and channel
// reordering into canonical order.
//
// See the individual subpackages for more detailed documentation.
package audparse
