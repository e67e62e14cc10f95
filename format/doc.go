// SPDX-License-Identifier: EPL-2.0

// Package format describes raw audio stream formats.
//
// It provides the value types the rest of the module is built on:
//   - Encoding for the supported sample codings (PCM, A-law, µ-law)
//   - SampleFormat for linear PCM sample layouts (width, signedness,
//     byte order)
//   - ChannelPosition and the channel mask helpers for speaker layouts
//   - Capability, the negotiation descriptor exchanged with peers
//
// # Sample Formats
//
// A SampleFormat encodes everything needed to compute frame geometry:
//
//	format.S16LE.Bytes()  // 2
//	format.S24BE.Width()  // 24
//	format.ParseSampleFormat("f32le") // format.F32LE
//
// # Channel Layouts
//
// Speaker positions follow a canonical order, the order of their channel
// mask bits. Downstream consumers expect layouts in canonical order, so
// the parse package reorders samples when a configured layout is not
// canonical:
//
//	positions := []format.ChannelPosition{format.FrontRight, format.FrontLeft}
//	format.InCanonicalOrder(positions)  // false
//	ordered, _ := format.CanonicalOrder(positions)
//	// ordered = [front-left front-right]
//
// Streams that carry only a channel count use a documented fallback mask:
//
//	format.FallbackMask(2) // front-left | front-right
//
// Mono layouts and fully unpositioned layouts have no mask bits and map to
// mask 0.
//
// # Capabilities
//
// A Capability describes a stream format during negotiation. Four media
// types are understood: audio/x-raw, audio/x-unaligned-raw (parsed like
// audio/x-raw), audio/x-alaw and audio/x-mulaw.
//
//	cap := format.RawCapability(format.S16LE, 48000, 2, nil)
//
// All types in this package are plain values with no I/O and no internal
// locking.
package format
