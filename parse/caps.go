// SPDX-License-Identifier: EPL-2.0

package parse

import (
	"fmt"

	"github.com/ik5/audparse/format"
)

// ConfigFromCapability converts a negotiated capability description into a
// ready configuration. The audio/x-unaligned-raw media type is parsed
// exactly like audio/x-raw; the difference only matters on the consuming
// side of the negotiation. On failure no partially filled configuration
// escapes: callers install the result only when err is nil.
func ConfigFromCapability(capability format.Capability) (Config, error) {
	cfg := newDefaultConfig()

	switch capability.MediaType {
	case format.MediaRaw, format.MediaUnalignedRaw:
		if !capability.SampleFormat.Valid() {
			return Config{}, fmt.Errorf("raw capability sample format: %w", ErrMissingAttribute)
		}
		if capability.Rate <= 0 {
			return Config{}, fmt.Errorf("raw capability rate: %w", ErrMissingAttribute)
		}

		cfg.Encoding = format.PCM
		cfg.SampleFormat = capability.SampleFormat
		cfg.SampleRate = capability.Rate
		cfg.Interleaved = capability.Interleaved

		if capability.Positions != nil {
			if len(capability.Positions) != capability.Channels {
				return Config{}, fmt.Errorf("capability lists %d positions for %d channels: %w",
					len(capability.Positions), capability.Channels, format.ErrInvalidChannelCount)
			}
			if err := cfg.SetChannels(capability.Channels, 0, false); err != nil {
				return Config{}, err
			}
			copy(cfg.Positions, capability.Positions)
		} else {
			if err := cfg.SetChannels(capability.Channels, capability.ChannelMask, true); err != nil {
				return Config{}, err
			}
		}
		if err := cfg.UpdateReorderFlag(); err != nil {
			return Config{}, err
		}

		cfg.UpdateBPF()

	case format.MediaALaw, format.MediaMuLaw:
		if capability.MediaType == format.MediaALaw {
			cfg.Encoding = format.ALaw
		} else {
			cfg.Encoding = format.MuLaw
		}

		if capability.Rate <= 0 {
			return Config{}, fmt.Errorf("%s capability rate: %w", capability.MediaType, ErrMissingAttribute)
		}
		if capability.Channels <= 0 {
			return Config{}, fmt.Errorf("%s capability channels: %w", capability.MediaType, ErrMissingAttribute)
		}
		cfg.SampleRate = capability.Rate

		// An absent channel mask selects the fallback layout for the count.
		if err := cfg.SetChannels(capability.Channels, capability.ChannelMask, true); err != nil {
			return Config{}, err
		}

		cfg.UpdateBPF()

	default:
		return Config{}, fmt.Errorf("media type %q: %w", capability.MediaType, ErrUnsupportedFormat)
	}

	cfg.Ready = true
	return cfg, nil
}

// CapabilityFromConfig produces the capability this configuration would
// advertise downstream. The published layout is always in canonical order;
// when the configuration reorders channels it is the reordered layout that
// goes out. PCM configurations always advertise audio/x-raw, never the
// unaligned variant, since emitted frames are sample aligned.
func CapabilityFromConfig(cfg Config) (format.Capability, error) {
	if cfg.BPF == 0 {
		return format.Capability{}, ErrConfigNotReady
	}

	positions := cfg.Positions
	if cfg.NeedsReorder {
		positions = cfg.Reordered
	}

	switch cfg.Encoding {
	case format.PCM:
		published := make([]format.ChannelPosition, len(positions))
		copy(published, positions)
		return format.Capability{
			MediaType:    format.MediaRaw,
			SampleFormat: cfg.SampleFormat,
			Rate:         cfg.SampleRate,
			Channels:     cfg.NumChannels,
			Interleaved:  cfg.Interleaved,
			Positions:    published,
		}, nil

	case format.ALaw, format.MuLaw:
		mask, err := format.PositionsToMask(positions)
		if err != nil {
			return format.Capability{}, fmt.Errorf("publishing %s layout: %w", cfg.Encoding, err)
		}
		mediaType := format.MediaALaw
		if cfg.Encoding == format.MuLaw {
			mediaType = format.MediaMuLaw
		}
		return format.Capability{
			MediaType:   mediaType,
			Rate:        cfg.SampleRate,
			Channels:    cfg.NumChannels,
			Interleaved: true,
			ChannelMask: mask,
		}, nil

	default:
		return format.Capability{}, fmt.Errorf("encoding %v: %w", cfg.Encoding, ErrUnsupportedFormat)
	}
}
