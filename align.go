package audparse

import (
	"fmt"
	"io"

	"github.com/ik5/audparse/format"
	"github.com/ik5/audparse/parse"
)

// AlignStream is a high-level convenience function that frames a raw audio
// byte stream according to a capability description.
//
// This function creates a processing pipeline:
//  1. Builds a parse.Parser and negotiates cap on it
//  2. Reads r in bufferSize chunks
//  3. Pushes each chunk through the parser, collecting aligned frames
//  4. Stops at io.EOF, leaving any trailing partial frame unconsumed
//
// Parameters:
//   - cap: The capability describing the raw bytes (for file formats this
//     comes from a formats Stream, e.g. wav.Open)
//   - r: The raw byte stream to frame
//   - bufferSize: Size of the read buffer in bytes (e.g., 4096)
//
// Returns:
//   - []parse.Frame: The aligned frames in stream order, with byte offsets
//     and timestamps filled in
//   - error: Any error encountered during negotiation or reading
//
// Note: This is a convenience function for common use cases. For chunked
// or live input, drive a parse.Parser directly with Push.
//
// Example:
//
//	stream, _ := wav.Open(file)
//	frames, err := audparse.AlignStream(stream.Capability(), stream, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	// frames now hold whole output frames of the file's PCM data
func AlignStream(cap format.Capability, r io.Reader, bufferSize int) ([]parse.Frame, error) {
	parser := parse.NewParser()
	if err := parser.SetCapability(cap); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var frames []parse.Frame
	buf := make([]byte, bufferSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			frame, ok, pushErr := parser.Push(buf[:n])
			if pushErr != nil {
				return nil, fmt.Errorf("%w", pushErr)
			}
			if ok {
				frames = append(frames, frame)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return frames, nil
}
