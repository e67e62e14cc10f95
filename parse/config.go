// SPDX-License-Identifier: EPL-2.0

package parse

import (
	"fmt"

	"github.com/ik5/audparse/format"
	"github.com/ik5/audparse/utils"
)

// Defaults for a freshly created configuration. They match the most common
// raw stream found in the wild: interleaved stereo CD-rate PCM.
const (
	DefaultSampleRate   = 44100
	DefaultNumChannels  = 2
	DefaultSampleFormat = format.S16LE
)

// Config holds one complete stream description: the sample coding, the
// frame geometry derived from it, and the channel layout. A Parser owns two
// of these, one filled from the property surface and one from capability
// negotiation.
//
// BPF is the derived bytes-per-frame value. BPF == 0 marks a configuration
// whose geometry is incomplete; no capability or frame may be produced from
// it. Ready tracks whether the configuration as a whole may be selected as
// the active one.
type Config struct {
	Ready        bool
	Encoding     format.Encoding
	SampleFormat format.SampleFormat
	SampleRate   int
	NumChannels  int
	Interleaved  bool
	Positions    []format.ChannelPosition
	Reordered    []format.ChannelPosition
	NeedsReorder bool
	BPF          int

	// reorderMap[i] is the output channel slot for input channel slot i.
	// Valid only while NeedsReorder is set.
	reorderMap []int
}

func newDefaultConfig() Config {
	cfg := Config{
		Encoding:     format.PCM,
		SampleFormat: DefaultSampleFormat,
		SampleRate:   DefaultSampleRate,
		Interleaved:  true,
	}
	// Defaults are within bounds, this cannot fail.
	if err := cfg.SetChannels(DefaultNumChannels, 0, true); err != nil {
		panic(err)
	}
	return cfg
}

// SetChannels sets the channel count and, when fillPositions is set,
// derives the channel layout from mask (a zero mask selects the documented
// fallback for the count). Without fillPositions the layout slice is sized
// but left for the caller to populate. The reorder flag is reset either
// way; callers that fill positions themselves must recompute it with
// UpdateReorderFlag.
func (c *Config) SetChannels(count int, mask uint64, fillPositions bool) error {
	if count < 1 || count > format.MaxChannels {
		return format.ErrInvalidChannelCount
	}

	c.NumChannels = count
	c.NeedsReorder = false
	c.Reordered = nil
	c.reorderMap = nil

	if !fillPositions {
		c.Positions = make([]format.ChannelPosition, count)
		return nil
	}

	if mask == 0 {
		mask = format.FallbackMask(count)
	}
	positions, err := format.PositionsFromMask(count, mask)
	if err != nil {
		return fmt.Errorf("channel mask %#x for %d channels: %w", mask, count, err)
	}
	c.Positions = positions
	return nil
}

// UpdateReorderFlag recomputes NeedsReorder from the current layout. When
// the layout is valid but not canonical, Reordered receives the canonical
// permutation and the per-frame channel mapping is prepared. An invalid
// layout fails and leaves the reorder state cleared.
func (c *Config) UpdateReorderFlag() error {
	if format.InCanonicalOrder(c.Positions) {
		c.NeedsReorder = false
		c.Reordered = nil
		c.reorderMap = nil
		return nil
	}

	ordered, err := format.CanonicalOrder(c.Positions)
	if err != nil {
		c.NeedsReorder = false
		c.Reordered = nil
		c.reorderMap = nil
		return fmt.Errorf("channel positions %v: %w", c.Positions, err)
	}

	c.Reordered = ordered
	c.NeedsReorder = true
	c.reorderMap = make([]int, len(c.Positions))
	for i, p := range c.Positions {
		for j, q := range ordered {
			if p == q {
				c.reorderMap[i] = j
				break
			}
		}
	}
	return nil
}

// UpdateBPF recomputes the bytes-per-frame value. Must be called after any
// change to the encoding, sample format or channel count. A PCM
// configuration with an unknown sample format gets BPF 0, the
// incomplete-geometry sentinel.
func (c *Config) UpdateBPF() {
	switch c.Encoding {
	case format.ALaw, format.MuLaw:
		// One coded byte per sample, regardless of any sample format.
		c.BPF = 1 * c.NumChannels
	default:
		c.BPF = c.SampleFormat.Bytes() * c.NumChannels
	}
}

// Alignment returns the byte granularity frame starts must respect: 1 for
// the byte-oriented codings, and for PCM the smallest power of two that
// holds one sample (the sample width rounded up to whole bytes first).
func (c *Config) Alignment() int {
	if c.Encoding != format.PCM {
		return 1
	}
	width := c.SampleFormat.Width()
	if width == 0 {
		return 1
	}
	return utils.RoundUpPow2((width + 7) / 8)
}
