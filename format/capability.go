// SPDX-License-Identifier: EPL-2.0

package format

// Media types understood by the negotiation bridge.
const (
	// MediaRaw is linear PCM whose buffers are already sample aligned.
	MediaRaw = "audio/x-raw"
	// MediaUnalignedRaw is linear PCM from sources that cannot guarantee
	// buffers hold a whole number of samples. It is parsed exactly like
	// MediaRaw; produced capabilities always use MediaRaw since the parser
	// aligns the data.
	MediaUnalignedRaw = "audio/x-unaligned-raw"
	MediaALaw         = "audio/x-alaw"
	MediaMuLaw        = "audio/x-mulaw"
)

// Capability describes a stream format as exchanged with an upstream or
// downstream peer. For MediaRaw / MediaUnalignedRaw the SampleFormat,
// Interleaved flag and layout are meaningful; MediaALaw / MediaMuLaw use
// only Rate, Channels and ChannelMask.
//
// The layout may be given either as an explicit Positions list or as a
// ChannelMask. A nil Positions list with a zero ChannelMask means the peer
// did not provide a layout and a fallback applies.
type Capability struct {
	MediaType    string
	SampleFormat SampleFormat
	Rate         int
	Channels     int
	Interleaved  bool
	ChannelMask  uint64
	Positions    []ChannelPosition
}

// RawCapability builds an aligned linear PCM capability. positions may be
// nil to request the fallback layout for the channel count.
func RawCapability(sf SampleFormat, rate, channels int, positions []ChannelPosition) Capability {
	return Capability{
		MediaType:    MediaRaw,
		SampleFormat: sf,
		Rate:         rate,
		Channels:     channels,
		Interleaved:  true,
		Positions:    positions,
	}
}

// ALawCapability builds an A-law capability. mask may be 0 to request the
// fallback layout for the channel count.
func ALawCapability(rate, channels int, mask uint64) Capability {
	return Capability{
		MediaType:   MediaALaw,
		Rate:        rate,
		Channels:    channels,
		Interleaved: true,
		ChannelMask: mask,
	}
}

// MuLawCapability builds a µ-law capability. mask may be 0 to request the
// fallback layout for the channel count.
func MuLawCapability(rate, channels int, mask uint64) Capability {
	return Capability{
		MediaType:   MediaMuLaw,
		Rate:        rate,
		Channels:    channels,
		Interleaved: true,
		ChannelMask: mask,
	}
}
