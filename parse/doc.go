// SPDX-License-Identifier: EPL-2.0

// Package parse converts arbitrarily chunked raw audio byte streams into
// sample-aligned frames.
//
// A Parser holds two alternative stream descriptions:
//   - the explicit configuration, filled through the setter surface
//     (SetEncoding, SetSampleRate, SetChannelPositions, ...); it is valid
//     from construction and acts as the fallback
//   - the negotiated configuration, filled by converting an upstream
//     capability with SetCapability; while ready it is authoritative
//
// ActiveConfig reports which of the two currently governs framing. A
// stream restart (Reset) un-readies the negotiated configuration, handing
// control back to the explicit one.
//
// # Framing
//
// Push accumulates bytes and returns the largest run of whole frames,
// where one frame is one sample per channel (PCM) or one coded byte per
// channel (A-law, µ-law). With S16LE stereo, pushing 411 bytes yields 102
// frames (408 bytes) and keeps 3 bytes for the next call:
//
//	p := parse.NewParser()
//	p.SetSampleRate(48000)
//	frame, ok, err := p.Push(chunk)
//
// Frames carry a frame offset, a timestamp and a duration derived from the
// active sample rate.
//
// # Negotiation
//
// SetCapability accepts audio/x-raw, audio/x-unaligned-raw (treated like
// audio/x-raw), audio/x-alaw and audio/x-mulaw descriptors.
// OutputCapability publishes the active format; the advertised layout is
// always in canonical channel order, and PCM output is always the aligned
// raw media type.
//
// # Channel Reordering
//
// When a configured layout is not in canonical order, the parser reorders
// the interleaved samples of every frame before they leave, and advertises
// the canonical layout downstream. Swapping left and right in a stereo
// stream is the simplest use:
//
//	p.SetChannelPositions([]format.ChannelPosition{
//	    format.FrontRight, format.FrontLeft,
//	})
//
// # Concurrency
//
// All Parser methods serialize on one internal mutex; distinct Parser
// instances are independent. No method blocks or performs I/O.
package parse
