// SPDX-License-Identifier: EPL-2.0

package format

// Encoding identifies how sample values are coded in a raw audio stream.
type Encoding int

const (
	// PCM is linear pulse-code modulation; the sample layout is described
	// by a SampleFormat.
	PCM Encoding = iota
	// ALaw is ITU-T G.711 A-law companded audio, one byte per sample.
	ALaw
	// MuLaw is ITU-T G.711 µ-law companded audio, one byte per sample.
	MuLaw
)

func (e Encoding) String() string {
	switch e {
	case PCM:
		return "pcm"
	case ALaw:
		return "alaw"
	case MuLaw:
		return "mulaw"
	default:
		return "unknown"
	}
}
